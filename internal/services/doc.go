// Package services contains the application services that sit between the
// HTTP transport and the domain packages. DatasetService owns the imported
// weekly snapshots; KPIService runs cumulative and week-over-week KPI
// computations over them and derives radar scores and action items.
//
// Services hold no transport concerns: they return domain values and
// sentinel errors, and the HTTP layer maps those onto API responses.
package services

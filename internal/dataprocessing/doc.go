// Package dataprocessing reads weekly detail workbooks (.xlsx) and
// projects them onto the same raw-row shape the CSV validator consumes, so
// both input formats flow through one validation and normalization path.
package dataprocessing

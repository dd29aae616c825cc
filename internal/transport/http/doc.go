// Package http contains the HTTP transport layer: Chi handlers for dataset
// import and lifecycle, KPI computation, and health checks. Handlers decode
// requests, call the application services and map service errors onto API
// error responses; they hold no business logic of their own.
package http

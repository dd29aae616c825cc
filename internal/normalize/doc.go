// Package normalize converts raw external field values into the canonical
// typed values the domain entity expects.
//
// Upstream CSV and Excel exports arrive with stray zero-width characters,
// full-width spaces, numeric strings with whitespace, boolean literals in
// two languages and dates with inconsistent separators. Each normalizer in
// this package returns a Result carrying the normalized value, a success
// flag, the original input and an optional error message, so callers can
// decide per field whether a failure blocks the whole record or falls back
// to a default.
//
// NormalizeRecord assembles a validated domain.InsuranceRecord from a raw
// row; NormalizeBatch applies it across many rows, collecting per-row
// errors instead of aborting the batch.
package normalize

// Package kpi reduces collections of insurance records into summary totals
// and derives the ratio, average and target-progress metrics that drive the
// weekly reporting dashboard.
//
// Every computation is pure and deterministic: the record set is summed
// first ("sum first, then safe-divide") and every ratio or average whose
// denominator is zero or non-finite comes back nil, never NaN or Inf and
// never a panic. The engine supports two modes: cumulative metrics over one
// year-to-date snapshot, and week-over-week increments between two
// cumulative snapshots, where absolute figures come from the delta but
// rate metrics stay on the cumulative totals so they reflect year-to-date
// quality rather than single-week noise.
//
// Year progress is derived from the business calendar of 50 working weeks;
// when the current week number is unknown it falls back to an injected
// clock so the core stays deterministic under test.
package kpi

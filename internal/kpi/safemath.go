package kpi

import (
	"math"
)

// safeDivide returns num/den, or nil when the denominator is zero or
// either operand is non-finite. Rule applied to every ratio and average in
// this package: a missing metric is nil, never NaN or Inf.
func safeDivide(num, den float64) *float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) ||
		math.IsNaN(num) || math.IsInf(num, 0) {
		return nil
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// safePercent is safeDivide expressed as a percentage.
func safePercent(num, den float64) *float64 {
	r := safeDivide(num, den)
	if r == nil {
		return nil
	}
	v := *r * 100
	return &v
}

// toTenThousand converts yuan to the ten-thousand-yuan display unit,
// rounded to the nearest integer. Round, not truncate.
func toTenThousand(yuan float64) float64 {
	return math.Round(yuan / TenThousand)
}

// addPtr sums two optional metrics; nil when either is missing.
func addPtr(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := *a + *b
	return &v
}

package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberResult carries the outcome of a numeric normalization.
type NumberResult struct {
	Value    float64
	OK       bool
	Original string
	Err      string
}

// NumberOptions configures numeric normalization.
type NumberOptions struct {
	Default  float64
	Min      *float64
	Max      *float64
	Decimals *int // fixed decimal rounding, nil leaves the value untouched
}

// Number parses a raw string into a float64. Blank or non-numeric input
// yields the configured default with OK=false; finite values are range
// checked and optionally rounded to a fixed number of decimals.
func Number(raw string, opts NumberOptions) NumberResult {
	res := NumberResult{Original: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		res.Value = opts.Default
		res.Err = "empty value, default applied"
		return res
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		res.Value = opts.Default
		res.Err = fmt.Sprintf("not a finite number: %q", trimmed)
		return res
	}

	if opts.Min != nil && v < *opts.Min {
		res.Value = opts.Default
		res.Err = fmt.Sprintf("value %v below minimum %v", v, *opts.Min)
		return res
	}
	if opts.Max != nil && v > *opts.Max {
		res.Value = opts.Default
		res.Err = fmt.Sprintf("value %v above maximum %v", v, *opts.Max)
		return res
	}

	if opts.Decimals != nil {
		scale := math.Pow10(*opts.Decimals)
		v = math.Round(v*scale) / scale
	}

	res.Value = v
	res.OK = true
	return res
}

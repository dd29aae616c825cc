package kpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name string
		num  float64
		den  float64
		want *float64
	}{
		{"normal", 10, 4, ptr(2.5)},
		{"zero numerator", 0, 4, ptr(0.0)},
		{"zero denominator", 10, 0, nil},
		{"nan numerator", math.NaN(), 4, nil},
		{"nan denominator", 10, math.NaN(), nil},
		{"inf numerator", math.Inf(1), 4, nil},
		{"inf denominator", 10, math.Inf(-1), nil},
		{"negative", -900, 300, ptr(-3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := safeDivide(tt.num, tt.den)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSafePercent(t *testing.T) {
	got := safePercent(1200, 4000)
	require.NotNil(t, got)
	assert.InDelta(t, 30.0, *got, 1e-9)

	assert.Nil(t, safePercent(1200, 0))
}

func TestToTenThousand(t *testing.T) {
	tests := []struct {
		yuan float64
		want float64
	}{
		{0, 0},
		{4999, 0},
		{5000, 1}, // rounds half away from zero
		{15000, 2},
		{123456, 12},
		{-15000, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toTenThousand(tt.yuan), "toTenThousand(%v)", tt.yuan)
	}
}

func TestAddPtr(t *testing.T) {
	got := addPtr(ptr(30.0), ptr(12.0))
	require.NotNil(t, got)
	assert.InDelta(t, 42.0, *got, 1e-9)

	assert.Nil(t, addPtr(nil, ptr(12.0)))
	assert.Nil(t, addPtr(ptr(30.0), nil))
}

func ptr[T any](v T) *T { return &v }

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "家用车", want: "家用车"},
		{name: "surrounding whitespace", in: "  家用车  ", want: "家用车"},
		{name: "zero width space stripped", in: "家\u200B用车", want: "家用车"},
		{name: "bom stripped", in: "\uFEFF家用车", want: "家用车"},
		{name: "full width space to regular", in: "家用　车", want: "家用 车"},
		{name: "internal runs collapse", in: "a   b\t\tc", want: "a b c"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Text(tt.in)
			assert.True(t, res.OK)
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.in, res.Original)
		})
	}
}

func TestNumber(t *testing.T) {
	min, max := 0.0, 100.0
	two := 2

	tests := []struct {
		name   string
		in     string
		opts   NumberOptions
		want   float64
		wantOK bool
	}{
		{name: "integer", in: "42", want: 42, wantOK: true},
		{name: "decimal", in: "3.14", want: 3.14, wantOK: true},
		{name: "negative", in: "-12.5", want: -12.5, wantOK: true},
		{name: "surrounding whitespace", in: " 7 ", want: 7, wantOK: true},
		{name: "empty uses default", in: "", opts: NumberOptions{Default: 9}, want: 9, wantOK: false},
		{name: "garbage uses default", in: "abc", opts: NumberOptions{Default: -1}, want: -1, wantOK: false},
		{name: "nan rejected", in: "NaN", opts: NumberOptions{Default: 0}, want: 0, wantOK: false},
		{name: "inf rejected", in: "+Inf", opts: NumberOptions{Default: 0}, want: 0, wantOK: false},
		{name: "below min uses default", in: "-5", opts: NumberOptions{Min: &min, Default: 1}, want: 1, wantOK: false},
		{name: "above max uses default", in: "500", opts: NumberOptions{Max: &max, Default: 1}, want: 1, wantOK: false},
		{name: "decimal rounding", in: "3.14159", opts: NumberOptions{Decimals: &two}, want: 3.14, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Number(tt.in, tt.opts)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.want, res.Value)
			if !tt.wantOK {
				assert.NotEmpty(t, res.Err)
			}
		})
	}
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		in     string
		def    bool
		want   bool
		wantOK bool
	}{
		{in: "是", want: true, wantOK: true},
		{in: "否", want: false, wantOK: true},
		{in: "true", want: true, wantOK: true},
		{in: "FALSE", want: false, wantOK: true},
		{in: "1", want: true, wantOK: true},
		{in: "0", want: false, wantOK: true},
		{in: "on", want: true, wantOK: true},
		{in: "disabled", want: false, wantOK: true},
		{in: " YES ", want: true, wantOK: true},
		{in: "maybe", def: true, want: true, wantOK: false},
		{in: "", def: false, want: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := Boolean(tt.in, tt.def)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		want          string
		wantOK        bool
		wantCorrected bool
	}{
		{name: "iso passes through", in: "2025-07-14", want: "2025-07-14", wantOK: true},
		{name: "slashes corrected", in: "2025/07/14", want: "2025-07-14", wantOK: true, wantCorrected: true},
		{name: "dots corrected", in: "2025.07.14", want: "2025-07-14", wantOK: true, wantCorrected: true},
		{name: "empty", in: "", wantOK: false},
		{name: "garbage", in: "next tuesday", wantOK: false},
		{name: "impossible date", in: "2025-13-45", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Date(tt.in)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantCorrected, res.Corrected)
			if tt.wantOK {
				assert.Equal(t, tt.want, res.Value)
			}
		})
	}
}

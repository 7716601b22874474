//nolint:revive,nolintlint // package name matches the package being tested
package utils

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "gates daily return", input: 100000000 * 0.08 / 365, want: "21917.8"},
		{name: "page daily return", input: 10000000 * 0.08 / 365, want: "2191.78"},
		{name: "gates raised daily return", input: 100000000 * 0.10 / 365, want: "27397.3"},
		{name: "page raised daily return", input: 10000000 * 0.10 / 365, want: "2739.73"},
		{name: "initial rate", input: 0.08, want: "0.08"},
		{name: "raised rate", input: 0.08 + 0.02, want: "0.1"},
		{name: "zero", input: 0, want: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), want: "-0"},
		{name: "negative", input: -2191.7808219178, want: "-2191.78"},
		{name: "integer", input: 100, want: "100"},
		{name: "rounds up", input: 999999.5, want: "1e+06"},
		{name: "large", input: 100000000, want: "1e+08"},
		{name: "large with digits", input: 123456789, want: "1.23457e+08"},
		{name: "small", input: 0.0001, want: "0.0001"},
		{name: "tiny", input: 0.00001234, want: "1.234e-05"},
		{name: "nan", input: math.NaN(), want: "nan"},
		{name: "positive infinity", input: math.Inf(1), want: "inf"},
		{name: "negative infinity", input: math.Inf(-1), want: "-inf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatFloat(tt.input); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

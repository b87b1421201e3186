package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue_RoundTrip(t *testing.T) {
	targets := []string{
		"124,5 M FCFA",
		"2 K",
		"3 Mds XOF",
		"1,5 B",
		"750 F CFA",
		"1 250 000 FCFA",
		"1\u202f250 FCFA",
		"42",
		"+8.6%",
		"-2.3%",
		"8.6%",
		"12.0%",
		"+8.6",
		"-2.3",
		"3.14159",
		"-7",
		"-0.0",
		"-0.0%",
		"0.0%",
		"not-a-number",
		"",
	}

	for _, s := range targets {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, FormatValue(ParseTarget(s).Value, s))
		})
	}
}

func TestFormatValue_Intermediate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		original string
		want     string
	}{
		{"percentage keeps explicit plus", 4.3, "+8.6%", "+4.3%"},
		{"percentage without sign", 4.3, "8.6%", "4.3%"},
		{"negative percentage", -0.5, "+8.6%", "-0.5%"},
		{"number keeps decimals", 2, "3.14159", "2.00000"},
		{"negative number", -1.2, "-2.3", "-1.2"},
		{"positive zero drops minus", 0, "-2.3", "0.0"},
		{"shorthand rounds half away from zero", 62_250_000, "124,5 M FCFA", "62,3 M FCFA"},
		{"shorthand without decimals", 1_400, "2 K", "1 K"},
		{"currency amount drops decimals", 41.6, "42", "42"},
		{"fallback ignores value", 17, "not-a-number", "not-a-number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.current, tt.original))
		})
	}
}

func TestFormatValue_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN%", FormatValue(math.NaN(), "+8.6%"))
	assert.Equal(t, "+Inf", FormatValue(math.Inf(1), "42"))
	assert.Equal(t, "-Inf M FCFA", FormatValue(math.Inf(-1), "124,5 M FCFA"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1 234 567 FCFA", FormatAmount(1_234_567.4))
	assert.Equal(t, "0 FCFA", FormatAmount(0))
	assert.Equal(t, "NaN FCFA", FormatAmount(math.NaN()))
}

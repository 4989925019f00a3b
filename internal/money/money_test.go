package money

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:         "$0.00",
		5:         "$0.05",
		1234:      "$12.34",
		4999:      "$49.99",
		100000:    "$1,000.00",
		123456789: "$1,234,567.89",
		-250:      "-$2.50",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatCurrency(cents), "cents=%d", cents)
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := map[string]int64{
		"49.99":  4999,
		"0.1":    10,
		"0.29":   29,
		"1":      100,
		"1.005":  101,
		" 12.5 ": 1250,
	}
	for in, want := range cases {
		d, err := ParseMajor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, ToMinorUnits(d), in)
	}
}

func TestFitsMinorUnits(t *testing.T) {
	cases := map[string]bool{
		"0.01":                  true,
		"21474836.47":           true,
		"21474836.474":          true,
		"21474836.475":          false,
		"21474836.48":           false,
		"184467440737095516.17": false,
		"-21474836.48":          false,
	}
	for in, want := range cases {
		assert.Equal(t, want, FitsMinorUnits(decimal.RequireFromString(in)), in)
	}
	assert.Equal(t, int64(MaxMinorUnits), ToMinorUnits(decimal.RequireFromString("21474836.47")))
}

func TestParseMajorRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "abc", "12,50", "$3"} {
		_, err := ParseMajor(in)
		assert.ErrorIs(t, err, ErrNotANumber, in)
	}
}

func TestMinorMajorRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 10, 29, 99, 4999, 100001, 987654321} {
		major := ToMajorUnits(cents)
		d, err := ParseMajor(formatFloat(major))
		require.NoError(t, err)
		assert.Equal(t, cents, ToMinorUnits(d))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

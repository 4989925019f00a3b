// Package money converts between the dollar amounts users type and the cent
// amounts the database stores, and renders cents for display.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxMinorUnits is the largest amount in cents the invoices amount column holds.
const MaxMinorUnits = math.MaxInt32

var (
	ErrNotANumber = errors.New("amount is not a number")

	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(MaxMinorUnits)
	printer = message.NewPrinter(language.AmericanEnglish)
)

// ParseMajor reads a decimal dollar amount such as "49.99".
func ParseMajor(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}

// FitsMinorUnits reports whether major, once rounded to cents, is within
// MaxMinorUnits. ToMinorUnits is only exact for amounts that fit.
func FitsMinorUnits(major decimal.Decimal) bool {
	return major.Mul(hundred).Round(0).Abs().LessThanOrEqual(maxMinor)
}

// ToMinorUnits converts dollars to cents, rounding half away from zero at the
// cent. This is the only place a user amount becomes an integer.
func ToMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).Round(0).IntPart()
}

// ToMajorUnits converts stored cents back to dollars for form pre-population.
func ToMajorUnits(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

// FormatCurrency renders cents as US dollars: 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + printer.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}

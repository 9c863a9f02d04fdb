package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmountInCents converts a decimal amount string such as "148.50" to integer
// minor units (14850), rounding half away from zero.
func AmountInCents(amount string) (int64, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return dec.Mul(hundred).Round(0).IntPart(), nil
}

// FormatCents renders minor units back as a two-decimal amount string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a provider decimal string. Absent or malformed values
// are treated as zero.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// ParseQuantity parses an asset quantity. Absent or malformed values are
// reported as invalid rather than zero.
func ParseQuantity(quantityStr string) decimal.NullDecimal {
	quantity := strings.TrimSpace(quantityStr)
	if quantity == "" {
		return decimal.NullDecimal{}
	}
	dec, err := decimal.NewFromString(quantity)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(dec)
}

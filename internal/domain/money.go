package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency.String())
}

// SameCurrency reports whether both values are expressed in the same ISO currency.
func (m Money) SameCurrency(other Money) bool {
	return m.Currency.String() == other.Currency.String()
}

package kernel

import (
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes prices in bills and menu listings.
const DefaultCurrencySymbol = "€"

// Money is an exact decimal amount backed by github.com/shopspring/decimal.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps an existing decimal.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromCents builds an amount from minor units, so 1250 becomes 12.50.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -2)}
}

// MoneyFromString parses a decimal literal such as "12.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d}, nil
}

// SumMoney adds all values exactly.
func SumMoney(values ...Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.amount)
	}
	return Money{amount: total}
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares by numeric value, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Between reports whether minAmount <= m <= maxAmount.
func (m Money) Between(minAmount, maxAmount Money) bool {
	return m.amount.GreaterThanOrEqual(minAmount.amount) && m.amount.LessThanOrEqual(maxAmount.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Format renders the amount with two decimal places behind symbol, e.g. "€12.50".
func (m Money) Format(symbol string) string {
	return symbol + m.String()
}

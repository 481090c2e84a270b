package kernel

import (
	"fmt"
	"math"

	"studel/internal/pkg/errs"
)

// minorPerMajor is the number of paise in a rupee.
const minorPerMajor = 100

// Money is a non-negative amount kept in minor currency units.
//
// Order totals are sums of integer products, so totalPrice + deliveryFee == finalAmount
// holds exactly.
//
// Example:
//
//	line := kernel.Rupees(120).Times(2) // ₹240.00
//	total := line.Add(kernel.Rupees(80)) // ₹320.00
type Money struct {
	minor int64
}

// NewMoney builds an amount from minor units. Negative amounts are rejected.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", minor, 0, int64(math.MaxInt64))
	}
	return Money{minor: minor}, nil
}

// Rupees builds an amount from whole rupees. It panics on negative input and is
// meant for literals and fixtures.
func Rupees(major int64) Money {
	m, err := NewMoney(major * minorPerMajor)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal converts a decimal major-unit amount (as sent over the API) to Money,
// rounding to the nearest paisa.
func MoneyFromDecimal(major float64) (Money, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return NewMoney(int64(math.Round(major * minorPerMajor)))
}

// Minor returns the amount in paise.
func (m Money) Minor() int64 {
	return m.minor
}

// Decimal returns the amount in rupees for presentation.
func (m Money) Decimal() float64 {
	return float64(m.minor) / minorPerMajor
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{minor: m.minor * int64(quantity)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) String() string {
	return fmt.Sprintf("₹%d.%02d", m.minor/minorPerMajor, m.minor%minorPerMajor)
}

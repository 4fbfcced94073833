package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency-tagged decimal amount
// =============================================================================

// Money pairs a full-precision decimal amount with the currency it is
// denominated in. Construction never rounds; rounding happens only when a
// figure is reported, via RoundBank.
type Money struct {
	Amount   decimal.Decimal
	Currency CurrencyCode
}

// Sentinel errors. Use with errors.Is().
var (
	// ErrUnknownCurrency is returned when input text does not name a
	// supported currency code. This is a fatal input error, not retryable.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyMismatch is returned when arithmetic combines Money values
	// of different currencies. This is an invariant violation by the caller,
	// not a user input error.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// New creates a Money value. The amount is stored at full precision.
func New(amount decimal.Decimal, currency CurrencyCode) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns the zero amount in the given currency.
func Zero(currency CurrencyCode) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns the sum of two Money values. Both operands must carry the same
// currency; combining across currencies fails with a CurrencyMismatchError.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, &CurrencyMismatchError{Left: m.Currency, Right: other.Currency}
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// RoundBank returns the amount rounded half-to-even to 2 decimal places.
// This is the single rounding policy for every reported figure in the
// engine; display formatting (String) is cosmetic and separate.
func (m Money) RoundBank() Money {
	return Money{Amount: m.Amount.RoundBank(2), Currency: m.Currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// GreaterThanOrEqual compares amounts. Only meaningful between values in the
// same currency, e.g. the two daily amounts derived from one loan.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Amount.GreaterThanOrEqual(other.Amount)
}

// String renders the symbol followed by the amount at exactly two decimal
// places, regardless of the stored precision. This rounding is display-only
// and must not be confused with RoundBank, which produces reported totals.
func (m Money) String() string {
	return m.Currency.Symbol() + m.Amount.StringFixed(2)
}

// CurrencyMismatchError reports an attempt to combine two denominations.
type CurrencyMismatchError struct {
	Left  CurrencyCode
	Right CurrencyCode
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error { return ErrCurrencyMismatch }

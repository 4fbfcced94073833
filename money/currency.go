/*
Package money provides the monetary value objects for the interest engine.

PURPOSE:
  This package contains the currency-tagged decimal type and the closed
  currency enumeration. Every amount the engine computes or reports flows
  through these types, which makes silently mixing denominations impossible
  and keeps rounding behavior in exactly one place.

KEY CONCEPTS:
  - CurrencyCode: A closed enumeration of supported currencies
  - Money: An immutable (decimal amount, currency) pair
  - RoundBank: The single shared round-half-to-even policy

DESIGN PRINCIPLES:
  1. Immutability: Every operation returns a new value
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Type Safety: Arithmetic is only defined between same-currency values
  4. One rounding policy: Reported figures always go through RoundBank

SEE ALSO:
  - money.go: The Money value type
  - interest/: The accrual engine built on these types
*/
package money

import (
	"fmt"
	"strings"
)

// =============================================================================
// CURRENCY CODE - Closed enumeration of supported currencies
// =============================================================================

// CurrencyCode identifies one of the supported currencies. Values are only
// constructible through the package constants or ParseCurrency, so a
// CurrencyCode in hand is always a recognized code in canonical uppercase.
type CurrencyCode string

const (
	GBP CurrencyCode = "GBP"
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
)

// symbols maps every recognized code to its display symbol. Membership in
// this map is the definition of "recognized".
var symbols = map[CurrencyCode]string{
	GBP: "£",
	EUR: "€",
	USD: "$",
}

// ParseCurrency converts free text to a CurrencyCode. Matching is
// case-insensitive; the canonical form is uppercase. Unrecognized text is
// rejected with an UnknownCurrencyError naming the offending input, never
// silently defaulted.
func ParseCurrency(text string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(text))
	if _, ok := symbols[code]; !ok {
		return "", &UnknownCurrencyError{Text: text}
	}
	return code, nil
}

// Symbol returns the display symbol for the code. Total over the closed set;
// a zero-value or otherwise forged code renders as "?" rather than panicking.
func (c CurrencyCode) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return "?"
}

// String renders the three-letter code, not the symbol. The symbol appears
// only inside Money's display.
func (c CurrencyCode) String() string { return string(c) }

// UnknownCurrencyError reports input text that does not name a supported
// currency.
type UnknownCurrencyError struct {
	Text string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Text)
}

func (e *UnknownCurrencyError) Unwrap() error { return ErrUnknownCurrency }

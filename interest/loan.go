/*
Package interest computes day-by-day simple-interest accrual schedules.

PURPOSE:
  This package contains the core engine: the Loan value object, the pure
  per-day rate calculators, and the Schedule that spans a loan's term and
  aggregates daily amounts into correctly-rounded totals.

KEY CONCEPTS:
  - Loan: Immutable contract terms (dates, amount, rates, currency)
  - Entry: One day's accrual, with and without the margin spread
  - Schedule: The ordered, restartable sequence of entries
  - TotalInterest: Banker's-rounded per-entry sums over the whole term

DESIGN PRINCIPLES:
  1. Purity: No logging, no I/O, no clock reads; callers own side effects
  2. Immutability: Loans and entries never change after construction
  3. Full precision until reporting: Rounding happens once, per entry,
     inside Total() - never inside the rate calculators

DAY-COUNT CONVENTION:
  Fixed Actual/365. The annual rate divides by 365 regardless of leap years,
  currency, or date range.

SEE ALSO:
  - schedule.go: Schedule construction and totals
  - money/: The currency-tagged decimal type and rounding policy
*/
package interest

import (
	"github.com/shopspring/decimal"
	"github.com/warp/interest-engine/money"
)

// Actual/365 divisor: rates are annual percentages, so the daily multiplier
// is rate / 365 / 100. A single division keeps exact results exact.
var rateDivisor = decimal.NewFromInt(365 * 100)

// =============================================================================
// LOAN - Immutable contract terms
// =============================================================================

// Loan describes a fixed-term simple-interest contract. Construct with
// NewLoan; the zero value is not a valid loan.
type Loan struct {
	StartDate Date
	EndDate   Date
	Amount    decimal.Decimal
	BaseRate  decimal.Decimal // annual percentage, 5.25 means 5.25%
	Margin    decimal.Decimal // annual percentage spread on top of BaseRate
	Currency  money.CurrencyCode
}

// NewLoan validates the domain invariants and returns the immutable loan.
// Date and numeric FORMAT validation belongs to the caller; this checks only
// that start <= end and that the principal is positive.
func NewLoan(start, end Date, amount, baseRate, margin decimal.Decimal, currency money.CurrencyCode) (Loan, error) {
	if start.After(end) {
		return Loan{}, &DateRangeError{Start: start, End: end}
	}
	if !amount.IsPositive() {
		return Loan{}, ErrInvalidAmount
	}
	return Loan{
		StartDate: start,
		EndDate:   end,
		Amount:    amount,
		BaseRate:  baseRate,
		Margin:    margin,
		Currency:  currency,
	}, nil
}

// TermDays returns the number of accrual days in the term, both endpoints
// included. A same-day loan has a one-day term.
func (l Loan) TermDays() int {
	return l.StartDate.DaysBetween(l.EndDate) + 1
}

// =============================================================================
// RATE CALCULATORS - Pure functions of the loan
// =============================================================================

// DailyInterestWithoutMargin returns the base-rate interest accrued on the
// given day: amount x baseRate/365/100. Days outside [StartDate, EndDate]
// accrue zero; the schedule builder never generates such days, but arbitrary
// callers may ask.
func (l Loan) DailyInterestWithoutMargin(d Date) money.Money {
	return l.dailyInterest(d, l.BaseRate)
}

// DailyInterestWithMargin returns the interest accrued on the given day at
// the base rate plus the margin spread.
func (l Loan) DailyInterestWithMargin(d Date) money.Money {
	return l.dailyInterest(d, l.BaseRate.Add(l.Margin))
}

func (l Loan) dailyInterest(d Date, annualRate decimal.Decimal) money.Money {
	if d.Before(l.StartDate) || d.After(l.EndDate) {
		return money.Zero(l.Currency)
	}
	// Full precision, no rounding at this layer.
	return money.New(l.Amount.Mul(annualRate).Div(rateDivisor), l.Currency)
}

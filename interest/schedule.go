package interest

import "github.com/warp/interest-engine/money"

// =============================================================================
// ENTRY - One day of accrual
// =============================================================================

// Entry is one row of the schedule. Entries are value objects owned by the
// Schedule that created them and never mutated afterward.
type Entry struct {
	AccrualDate                Date
	DaysElapsed                int // 0-based offset from the loan's start date
	DailyInterestWithoutMargin money.Money
	DailyInterestWithMargin    money.Money
}

// =============================================================================
// SCHEDULE - Ordered daily accruals over the loan term
// =============================================================================

// Schedule holds one Entry per calendar day from the loan's start date to
// its end date inclusive, in strictly ascending date order with no gaps or
// duplicates. It is an ordinary read-only slice: renderers and aggregators
// traverse it as often as they like.
type Schedule struct {
	Entries []Entry
}

// TotalInterest is the aggregate over a schedule, both amounts carrying the
// loan's currency. Derived on demand, never stored.
type TotalInterest struct {
	WithoutMargin money.Money
	WithMargin    money.Money
}

// BuildSchedule generates the accrual schedule for a loan. An N-day term
// produces N entries; a same-day loan produces exactly one, with
// DaysElapsed 0.
func BuildSchedule(loan Loan) Schedule {
	termDays := loan.TermDays()
	entries := make([]Entry, 0, termDays)

	for daysElapsed := 0; daysElapsed < termDays; daysElapsed++ {
		accrualDate := loan.StartDate.AddDays(daysElapsed)
		entries = append(entries, Entry{
			AccrualDate:                accrualDate,
			DaysElapsed:                daysElapsed,
			DailyInterestWithoutMargin: loan.DailyInterestWithoutMargin(accrualDate),
			DailyInterestWithMargin:    loan.DailyInterestWithMargin(accrualDate),
		})
	}

	return Schedule{Entries: entries}
}

// Total folds the schedule into reported totals. Each entry's two amounts
// are banker's-rounded to 2 places BEFORE summing; rounding once over the
// raw sum gives a different cent total whenever fractional cents accumulate
// asymmetrically, and per-entry-then-sum is the contract.
//
// An empty schedule yields ErrEmptySchedule, not a zero total: callers must
// distinguish "no result" from a legitimate zero-interest loan.
func (s Schedule) Total() (TotalInterest, error) {
	if len(s.Entries) == 0 {
		return TotalInterest{}, ErrEmptySchedule
	}

	withoutMargin := money.Zero(s.Entries[0].DailyInterestWithoutMargin.Currency)
	withMargin := money.Zero(s.Entries[0].DailyInterestWithMargin.Currency)

	for _, e := range s.Entries {
		var err error
		withoutMargin, err = withoutMargin.Add(e.DailyInterestWithoutMargin.RoundBank())
		if err != nil {
			return TotalInterest{}, err
		}
		withMargin, err = withMargin.Add(e.DailyInterestWithMargin.RoundBank())
		if err != nil {
			return TotalInterest{}, err
		}
	}

	return TotalInterest{WithoutMargin: withoutMargin, WithMargin: withMargin}, nil
}

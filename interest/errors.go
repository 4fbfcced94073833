/*
errors.go - Centralized error types for the interest engine

PURPOSE:
  All engine-level error types in one place for consistency and
  discoverability. Currency errors live in the money package; these cover
  loan construction and schedule aggregation.

ERROR CATEGORIES:
  1. Loan errors - Domain precondition violations at construction
  2. Schedule errors - Degenerate aggregation cases

USAGE:
  Callers classify with errors.Is / errors.As:

    if errors.Is(err, interest.ErrInvalidDateRange) {
        // reject the input, do not retry
    }

The computation is deterministic and pure, so no error here is retryable:
retrying without changing input is meaningless.
*/
package interest

import (
	"errors"
	"fmt"

	"github.com/warp/interest-engine/money"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDateRange is returned when a loan's start date falls after
	// its end date. Rejected at construction, before any schedule exists.
	ErrInvalidDateRange = errors.New("invalid date range: start after end")

	// ErrInvalidAmount is returned when a loan amount is zero or negative.
	ErrInvalidAmount = errors.New("loan amount must be positive")

	// ErrEmptySchedule is returned when a total is requested over zero
	// entries. An absent result is distinct from a legitimate zero-interest
	// total and callers must handle it explicitly.
	ErrEmptySchedule = errors.New("schedule has no entries")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateRangeError names the offending dates of an inverted range.
type DateRangeError struct {
	Start Date
	End   Date
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s after end %s", e.Start, e.End)
}

func (e *DateRangeError) Unwrap() error { return ErrInvalidDateRange }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input,
// as opposed to an internal invariant violation.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, money.ErrUnknownCurrency)
}

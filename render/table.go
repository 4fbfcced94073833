/*
Package render is the presentation boundary of the interest engine.

PURPOSE:
  Turns a Schedule into a text table: one row per accrual day in schedule
  order, then a trailing total row. Every Money is formatted through its
  String contract (symbol-prefixed, exactly two decimals), so the renderer
  has no formatting rules of its own.

The core never prints; all console output funnels through here.

SEE ALSO:
  - interest/schedule.go: The data being rendered
  - cmd/loansched: Wires this to stdout
*/
package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/warp/interest-engine/interest"
)

// Table writes the schedule and its total to w. Fails with the schedule's
// Total error (ErrEmptySchedule) rather than printing a fabricated zero row.
func Table(w io.Writer, loan interest.Loan, schedule interest.Schedule) error {
	total, err := schedule.Total()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Accrual Date",
		"Days Elapsed",
		"Interest Without Margin",
		"Interest With Margin",
		"Currency",
	})

	for _, entry := range schedule.Entries {
		table.Append([]string{
			entry.AccrualDate.String(),
			strconv.Itoa(entry.DaysElapsed),
			entry.DailyInterestWithoutMargin.String(),
			entry.DailyInterestWithMargin.String(),
			loan.Currency.String(),
		})
	}

	table.SetFooter([]string{
		"Total",
		"",
		total.WithoutMargin.String(),
		total.WithMargin.String(),
		loan.Currency.String(),
	})

	table.Render()
	return nil
}

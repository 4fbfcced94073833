/*
main.go - Application entry point

PURPOSE:
  Parses and validates command-line input, builds the loan, and renders the
  daily accrual schedule with totals to stdout. All format validation (date
  layout, currency shape, numeric parseability) happens here; the core
  packages only ever see typed, validated values.

COMMAND-LINE FLAGS:
  -start-date   Accrual start date, YYYY-MM-DD (required)
  -end-date     Accrual end date, YYYY-MM-DD (required)
  -loan-amount  Principal, positive decimal (required)
  -currency     Currency code, e.g. USD (required; GBP, EUR, USD supported)
  -base-rate    Annual base interest rate as a percentage, e.g. 5.25
  -margin       Annual margin spread as a percentage, e.g. 1

EXIT CODES:
  0  Schedule rendered
  1  Invalid input (message names the offending value)

EXAMPLES:
  loansched -start-date=2024-01-01 -end-date=2024-03-31 \
      -loan-amount=100000 -currency=USD -base-rate=5 -margin=1

SEE ALSO:
  - render/table.go: Output formatting
  - interest/: The accrual engine
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/interest-engine/interest"
	"github.com/warp/interest-engine/money"
	"github.com/warp/interest-engine/render"
)

// Currency flags must look like a code before we even consult the supported
// set, mirroring the input contract (3-5 uppercase letters).
var currencyShape = regexp.MustCompile(`^[A-Z]{3,5}$`)

func main() {
	startArg := flag.String("start-date", "", "start date (YYYY-MM-DD)")
	endArg := flag.String("end-date", "", "end date (YYYY-MM-DD)")
	amountArg := flag.String("loan-amount", "", "loan amount (positive decimal)")
	currencyArg := flag.String("currency", "", "loan currency (e.g. USD)")
	baseRateArg := flag.String("base-rate", "0", "annual base interest rate (percent)")
	marginArg := flag.String("margin", "0", "annual margin spread (percent)")
	flag.Parse()

	start, err := parseDateFlag("start-date", *startArg)
	if err != nil {
		log.Fatal(err)
	}
	end, err := parseDateFlag("end-date", *endArg)
	if err != nil {
		log.Fatal(err)
	}
	amount, err := parseDecimalFlag("loan-amount", *amountArg)
	if err != nil {
		log.Fatal(err)
	}
	baseRate, err := parseDecimalFlag("base-rate", *baseRateArg)
	if err != nil {
		log.Fatal(err)
	}
	margin, err := parseDecimalFlag("margin", *marginArg)
	if err != nil {
		log.Fatal(err)
	}
	currency, err := parseCurrencyFlag(*currencyArg)
	if err != nil {
		log.Fatal(err)
	}

	loan, err := interest.NewLoan(start, end, amount, baseRate, margin, currency)
	if err != nil {
		log.Fatalf("invalid loan: %v", err)
	}

	// Diagnostics live here, outside the computation.
	log.Printf("loan: amount=%s currency=%s base-rate=%s%% margin=%s%% term=%s..%s (%d days)",
		loan.Amount, loan.Currency, loan.BaseRate, loan.Margin,
		loan.StartDate, loan.EndDate, loan.TermDays())

	schedule := interest.BuildSchedule(loan)

	if err := render.Table(os.Stdout, loan, schedule); err != nil {
		log.Fatalf("failed to render schedule: %v", err)
	}
}

func parseDateFlag(name, value string) (interest.Date, error) {
	if value == "" {
		return interest.Date{}, fmt.Errorf("-%s is required (format YYYY-MM-DD)", name)
	}
	d, err := interest.ParseDate(value)
	if err != nil {
		return interest.Date{}, fmt.Errorf("invalid -%s %q: use the format YYYY-MM-DD", name, value)
	}
	return d, nil
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("-%s is required", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid -%s %q: not a decimal number", name, value)
	}
	return d, nil
}

func parseCurrencyFlag(value string) (money.CurrencyCode, error) {
	if value == "" {
		return "", fmt.Errorf("-currency is required (e.g. USD)")
	}
	if !currencyShape.MatchString(strings.ToUpper(value)) {
		return "", fmt.Errorf("invalid -currency %q: use uppercase letters (e.g. USD, EUR)", value)
	}
	currency, err := money.ParseCurrency(value)
	if err != nil {
		return "", fmt.Errorf("invalid -currency: %v", err)
	}
	return currency, nil
}

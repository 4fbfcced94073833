package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/interest-engine/money"
)

// =============================================================================
// CURRENCY PARSING
// =============================================================================

func TestParseCurrency_KnownCodes_CaseInsensitive(t *testing.T) {
	// GIVEN: A recognized code in any casing
	// THEN: Parsing succeeds and yields the canonical uppercase code

	for _, input := range []string{"USD", "usd", "Usd"} {
		code, err := money.ParseCurrency(input)
		require.NoError(t, err, "input %q should parse", input)
		assert.Equal(t, money.USD, code)
	}

	gbp, err := money.ParseCurrency("gbp")
	require.NoError(t, err)
	assert.Equal(t, money.GBP, gbp)

	eur, err := money.ParseCurrency("EUR")
	require.NoError(t, err)
	assert.Equal(t, money.EUR, eur)
}

func TestParseCurrency_UnknownText_Rejected(t *testing.T) {
	// GIVEN: Text that does not name a supported currency
	// THEN: Parsing fails with UnknownCurrencyError naming the text,
	//       never silently defaulting

	for _, input := range []string{"XYZ12", "usd!", "", "JPY"} {
		_, err := money.ParseCurrency(input)
		require.Error(t, err, "input %q should be rejected", input)
		assert.ErrorIs(t, err, money.ErrUnknownCurrency)

		var unknown *money.UnknownCurrencyError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, input, unknown.Text, "error should carry the offending text")
	}
}

func TestCurrencyCode_SymbolAndString(t *testing.T) {
	assert.Equal(t, "£", money.GBP.Symbol())
	assert.Equal(t, "€", money.EUR.Symbol())
	assert.Equal(t, "$", money.USD.Symbol())

	// String renders the code, not the symbol.
	assert.Equal(t, "USD", money.USD.String())
}

// =============================================================================
// MONEY ARITHMETIC
// =============================================================================

func TestMoney_Add_SameCurrency(t *testing.T) {
	a := money.New(decimal.RequireFromString("1.25"), money.USD)
	b := money.New(decimal.RequireFromString("2.50"), money.USD)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("3.75")))
	assert.Equal(t, money.USD, sum.Currency)
}

func TestMoney_Add_CurrencyMismatch_Rejected(t *testing.T) {
	// GIVEN: Two amounts in different denominations
	// WHEN: Adding them
	// THEN: The operation fails with CurrencyMismatchError

	usd := money.New(decimal.NewFromInt(1), money.USD)
	eur := money.New(decimal.NewFromInt(1), money.EUR)

	_, err := usd.Add(eur)
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

	var mismatch *money.CurrencyMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, money.USD, mismatch.Left)
	assert.Equal(t, money.EUR, mismatch.Right)
}

// =============================================================================
// ROUNDING POLICY
// =============================================================================

func TestMoney_RoundBank_HalfToEven(t *testing.T) {
	// Round-half-to-even: midpoints go to the even neighbor.
	cases := []struct {
		in   string
		want string
	}{
		{"0.125", "0.12"}, // not 0.13
		{"0.135", "0.14"},
		{"0.145", "0.14"}, // not 0.15
		{"13.698630136986", "13.70"},
		{"16.438356164383", "16.44"},
	}

	for _, tc := range cases {
		m := money.New(decimal.RequireFromString(tc.in), money.GBP)
		rounded := m.RoundBank()
		assert.True(t, rounded.Amount.Equal(decimal.RequireFromString(tc.want)),
			"RoundBank(%s) = %s, want %s", tc.in, rounded.Amount, tc.want)
		assert.Equal(t, money.GBP, rounded.Currency)
	}
}

func TestMoney_RoundBank_Idempotent(t *testing.T) {
	// Rounding an already-rounded amount must not change it.
	m := money.New(decimal.RequireFromString("0.125"), money.USD)

	once := m.RoundBank()
	twice := once.RoundBank()
	assert.True(t, once.Amount.Equal(twice.Amount))
}

// =============================================================================
// DISPLAY
// =============================================================================

func TestMoney_String_TwoDecimalsSymbolPrefixed(t *testing.T) {
	// Display always renders exactly two fractional digits with the symbol,
	// independent of the stored precision.
	cases := []struct {
		amount   string
		currency money.CurrencyCode
		want     string
	}{
		{"13.698630136986", money.USD, "$13.70"},
		{"5", money.GBP, "£5.00"},
		{"0.1", money.EUR, "€0.10"},
	}

	for _, tc := range cases {
		m := money.New(decimal.RequireFromString(tc.amount), tc.currency)
		assert.Equal(t, tc.want, m.String())
	}
}

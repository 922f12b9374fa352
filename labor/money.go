package labor

import "github.com/shopspring/decimal"

// =============================================================================
// MONEY HELPERS
// =============================================================================
// All currency amounts are decimal.Decimal in plain currency units. Rounding
// happens once, at presentation/persistence boundaries, not inside formulas.

// Round2 rounds a currency amount to cents.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// MustDecimal parses a decimal literal, returning zero on malformed input.
// Intended for constants and trusted stored values.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var (
	Twelve   = decimal.NewFromInt(12)
	Thirty   = decimal.NewFromInt(30)
	YearDays = decimal.NewFromFloat(365.25)
)

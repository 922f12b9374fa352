/*
Package labor provides the core primitives for the labor-law computation engine.

PURPOSE:
  This package contains the date arithmetic and error taxonomy shared by every
  calculator (vacation accrual, aguinaldo proration, withholding, settlement).
  Statutory formulas are built from two things: inclusive day counts between
  calendar dates, and month-equivalent conversion through a fixed average-month
  divisor. Both live here so every calculator derives periods the same way.

KEY CONCEPTS IN THIS FILE (calendar.go):
  - Date: a calendar date with day granularity (no time zone surprises)
  - InclusiveDays: day count with both endpoints counted (a one-day vacation
    from March 10 to March 10 is 1 day, not 0)
  - MonthsElapsed: day count divided by the 30.417-day average month

AVERAGE-MONTH DIVISORS:
  The statutory formulas do not use true calendar months. Vacation accrual
  divides by 30.417; aguinaldo proration divides by 30.44; settlement uses a
  plain /30 for the daily wage and /365.25 for seniority years. The divisors
  are intentionally NOT unified: each calculator carries its own constant and
  changing any of them silently changes payout amounts.

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal for every derived quantity, never float math
  2. Day granularity: all dates normalize to midnight UTC before arithmetic
  3. Explicit failure: an inverted range is an error, not a zero

SEE ALSO:
  - errors.go: InvalidRangeError and the rest of the error taxonomy
  - vacation/accrual.go, bonus/bonus.go, settlement/settlement.go: consumers
*/
package labor

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Calendar date with day granularity
// =============================================================================

// Date is a calendar date. The zero value is "no date" (see IsZero).
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }

func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date  { return Date{Time: d.normalize().AddDate(0, 0, n)} }
func (d Date) AddYears(n int) Date { return Date{Time: d.normalize().AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string { return d.normalize().Format(dateLayout) }

// Max returns the later of two dates.
func (d Date) Max(other Date) Date {
	if other.After(d) {
		return other
	}
	return d
}

func StartOfYear(year int) Date { return NewDate(year, time.January, 1) }

func EndOfMonth(year int, month time.Month) Date {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return Date{Time: t}
}

// =============================================================================
// DAY COUNTS
// =============================================================================

// DaysBetween returns the whole days from one date to another.
// Negative when to precedes from.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// InclusiveDays returns the day count of [start, end] with both endpoints
// counted. A single-day range yields 1. Returns InvalidRangeError when end
// precedes start.
func InclusiveDays(start, end Date) (int, error) {
	if end.Before(start) {
		return 0, &InvalidRangeError{Start: start, End: end}
	}
	return DaysBetween(start, end) + 1, nil
}

// =============================================================================
// MONTH EQUIVALENCE
// =============================================================================

// AverageMonthDays is the 30.417-day average month used for vacation accrual.
var AverageMonthDays = decimal.NewFromFloat(30.417)

// MonthsElapsed converts the span between two dates into month-equivalents
// using the 30.417-day average month. The sign of the span is discarded.
func MonthsElapsed(start, end Date) decimal.Decimal {
	days := DaysBetween(start, end)
	if days < 0 {
		days = -days
	}
	return decimal.NewFromInt(int64(days)).Div(AverageMonthDays)
}

// NextAnniversary returns the smallest hire-date anniversary (hire + k years,
// k >= 1) on or after ref.
func NextAnniversary(hire, ref Date) Date {
	anniversary := hire.AddYears(1)
	for anniversary.Before(ref) {
		anniversary = anniversary.AddYears(1)
	}
	return anniversary
}

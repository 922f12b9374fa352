package labor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) labor.Date {
	return labor.NewDate(year, month, day)
}

// =============================================================================
// INCLUSIVE DAY COUNTS
// =============================================================================

func TestInclusiveDays_SingleDay(t *testing.T) {
	// GIVEN: A vacation from March 10 to March 10
	// WHEN: Counting inclusive days
	// THEN: The count is 1, not 0

	days, err := labor.InclusiveDays(date(2025, time.March, 10), date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("InclusiveDays failed: %v", err)
	}
	if days != 1 {
		t.Errorf("Expected 1 day, got %d", days)
	}
}

func TestInclusiveDays_CountsBothEndpoints(t *testing.T) {
	days, err := labor.InclusiveDays(date(2025, time.March, 10), date(2025, time.March, 14))
	if err != nil {
		t.Fatalf("InclusiveDays failed: %v", err)
	}
	if days != 5 {
		t.Errorf("Expected 5 days, got %d", days)
	}
}

func TestInclusiveDays_AcrossMonthBoundary(t *testing.T) {
	days, err := labor.InclusiveDays(date(2025, time.January, 30), date(2025, time.February, 2))
	if err != nil {
		t.Fatalf("InclusiveDays failed: %v", err)
	}
	if days != 4 {
		t.Errorf("Expected 4 days, got %d", days)
	}
}

func TestInclusiveDays_InvertedRangeFails(t *testing.T) {
	// GIVEN: An end date before the start date
	// WHEN: Counting inclusive days
	// THEN: InvalidRangeError, never a zero count

	_, err := labor.InclusiveDays(date(2025, time.March, 14), date(2025, time.March, 10))
	if err == nil {
		t.Fatal("Expected error for inverted range")
	}
	if !errors.Is(err, labor.ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}

	var rangeErr *labor.InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expected *InvalidRangeError, got %T", err)
	}
	if !labor.IsClientError(err) {
		t.Error("Inverted range should classify as a client error")
	}
}

func TestDaysBetween_NegativeWhenInverted(t *testing.T) {
	got := labor.DaysBetween(date(2025, time.March, 14), date(2025, time.March, 10))
	if got != -4 {
		t.Errorf("Expected -4, got %d", got)
	}
}

// =============================================================================
// MONTH EQUIVALENCE
// =============================================================================

func TestMonthsElapsed_OneAverageYear(t *testing.T) {
	// 365 days / 30.417 should be right at 12 month-equivalents.
	months := labor.MonthsElapsed(date(2024, time.March, 1), date(2025, time.March, 1))

	got, _ := months.Float64()
	if got < 11.99 || got > 12.01 {
		t.Errorf("Expected ~12 months for one 365-day year, got %s", months)
	}
}

func TestMonthsElapsed_SignDiscarded(t *testing.T) {
	forward := labor.MonthsElapsed(date(2025, time.January, 1), date(2025, time.July, 1))
	backward := labor.MonthsElapsed(date(2025, time.July, 1), date(2025, time.January, 1))
	if !forward.Equal(backward) {
		t.Errorf("Expected symmetric month count, got %s vs %s", forward, backward)
	}
}

// =============================================================================
// CALENDAR EDGES
// =============================================================================

func TestEndOfMonth_LeapFebruary(t *testing.T) {
	if got := labor.EndOfMonth(2024, time.February); got.Day() != 29 {
		t.Errorf("Expected Feb 29 in a leap year, got %s", got)
	}
	if got := labor.EndOfMonth(2025, time.February); got.Day() != 28 {
		t.Errorf("Expected Feb 28, got %s", got)
	}
}

func TestNextAnniversary_AfterReference(t *testing.T) {
	// GIVEN: Hired 2020-06-15
	// WHEN: Asking for the next anniversary as of 2025-03-01
	// THEN: 2025-06-15 (never a past date, never the hire date itself)

	next := labor.NextAnniversary(date(2020, time.June, 15), date(2025, time.March, 1))
	if !next.Equal(date(2025, time.June, 15)) {
		t.Errorf("Expected 2025-06-15, got %s", next)
	}

	// Reference exactly on an anniversary keeps that date.
	onDay := labor.NextAnniversary(date(2020, time.June, 15), date(2025, time.June, 15))
	if !onDay.Equal(date(2025, time.June, 15)) {
		t.Errorf("Expected 2025-06-15, got %s", onDay)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := labor.ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2025-03-10" {
		t.Errorf("Expected 2025-03-10, got %s", d)
	}

	if _, err := labor.ParseDate("10/03/2025"); err == nil {
		t.Error("Expected error for non-ISO format")
	}
}

func TestDateMax(t *testing.T) {
	a := date(2025, time.January, 1)
	b := date(2025, time.June, 1)
	if !a.Max(b).Equal(b) || !b.Max(a).Equal(b) {
		t.Error("Max should return the later date regardless of receiver")
	}
}

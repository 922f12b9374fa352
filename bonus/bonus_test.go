package bonus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/bonus"
	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/store/memory"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) labor.Date {
	return labor.NewDate(year, month, day)
}

func testEmployee(hire labor.Date, salary int64) *employee.Employee {
	return &employee.Employee{
		ID:            "emp-1",
		Name:          "Carlos Mejía",
		HireDate:      hire,
		MonthlySalary: decimal.NewFromInt(salary),
		SalaryBasis:   employee.BasisMonthly,
		ContractType:  employee.ContractIndefinite,
		Status:        employee.StatusActive,
	}
}

// =============================================================================
// PRORATION TESTS
// =============================================================================

func TestProrate_FullCycle(t *testing.T) {
	// GIVEN: Employee hired years ago, salary 24,000
	// WHEN: Prorating at the end of a full calendar year
	// THEN: The cycle restarted January 1 and 11 full 30.44-day months fit
	//       in Jan 1 -> Dec 20 (353 days), paying 11/12 of a salary

	e := testEmployee(date(2020, time.March, 1), 24000)

	p, err := bonus.Prorate(e, date(2025, time.December, 20))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}

	if !p.CycleStart.Equal(date(2025, time.January, 1)) {
		t.Errorf("Expected cycle start Jan 1, got %s", p.CycleStart)
	}
	if p.MonthsWorked != 11 {
		t.Errorf("Expected 11 months, got %d", p.MonthsWorked)
	}
	if !p.Amount.Equal(decimal.NewFromInt(22000)) {
		t.Errorf("Expected 22000, got %s", p.Amount)
	}
}

func TestProrate_MidYearHire(t *testing.T) {
	// GIVEN: Employee hired July 1 of the reference year
	// WHEN: Prorating on December 1 (153 days -> 5 cycle months)
	// THEN: cycleStart is the hire date, amount is 5/12 of salary

	e := testEmployee(date(2025, time.July, 1), 24000)

	p, err := bonus.Prorate(e, date(2025, time.December, 1))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}

	if !p.CycleStart.Equal(date(2025, time.July, 1)) {
		t.Errorf("Expected cycle start at hire date, got %s", p.CycleStart)
	}
	if p.MonthsWorked != 5 {
		t.Errorf("Expected 5 months, got %d", p.MonthsWorked)
	}
	if !p.Amount.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("Expected 10000, got %s", p.Amount)
	}
	if !p.DaysEquivalent.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("Expected 12.5 day-equivalents, got %s", p.DaysEquivalent)
	}
}

func TestProrate_CycleStartDay(t *testing.T) {
	e := testEmployee(date(2025, time.July, 1), 24000)

	p, err := bonus.Prorate(e, date(2025, time.July, 1))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}
	if p.MonthsWorked != 0 || !p.Amount.IsZero() {
		t.Errorf("Expected zero proration on cycle start, got %d months / %s", p.MonthsWorked, p.Amount)
	}
}

func TestProrate_ClampedAtTwelve(t *testing.T) {
	// A December 31 reference is 364 days into the cycle, 11 full 30.44-day
	// months; the clamp only matters for degenerate long cycles, so feed one
	// directly through a hire date far in the past and a full leap year.
	e := testEmployee(date(2020, time.January, 1), 24000)

	p, err := bonus.Prorate(e, date(2024, time.December, 31))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}
	if p.MonthsWorked > 12 {
		t.Errorf("Months must clamp at 12, got %d", p.MonthsWorked)
	}
}

// =============================================================================
// PAYMENT RECORDING
// =============================================================================

func TestMarkPaid_RecordsOnce(t *testing.T) {
	// GIVEN: An unpaid bonus
	// WHEN: Marking it paid twice for the same year
	// THEN: First call records a payment, second fails with ErrAlreadyPaid

	store := memory.New()
	svc := bonus.NewService(store)
	ctx := context.Background()
	e := testEmployee(date(2025, time.January, 1), 24000)

	payment, err := svc.MarkPaid(ctx, e, date(2025, time.December, 1), "annual run")
	if err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	if payment.Year != 2025 {
		t.Errorf("Expected year 2025, got %d", payment.Year)
	}

	_, err = svc.MarkPaid(ctx, e, date(2025, time.December, 15), "")
	if !errors.Is(err, labor.ErrAlreadyPaid) {
		t.Fatalf("Expected ErrAlreadyPaid, got %v", err)
	}
	if !labor.IsClientError(err) {
		t.Error("Duplicate payment should classify as a client error")
	}

	payments, err := svc.Payments(ctx, e.ID)
	if err != nil {
		t.Fatalf("Payments failed: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("Expected exactly 1 payment, got %d", len(payments))
	}
}

func TestProrate_OverlaysPaidStatus(t *testing.T) {
	store := memory.New()
	svc := bonus.NewService(store)
	ctx := context.Background()
	e := testEmployee(date(2025, time.January, 1), 24000)

	p, err := svc.Prorate(ctx, e, date(2025, time.December, 1))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}
	if p.Paid {
		t.Error("Expected unpaid before MarkPaid")
	}

	if _, err := svc.MarkPaid(ctx, e, date(2025, time.December, 1), ""); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}

	p, err = svc.Prorate(ctx, e, date(2025, time.December, 15))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}
	if !p.Paid {
		t.Error("Expected paid status after MarkPaid")
	}
}

func TestProrate_HonorsLegacyFlag(t *testing.T) {
	store := memory.New()
	svc := bonus.NewService(store)
	e := testEmployee(date(2025, time.January, 1), 24000)
	e.BonusPaid = true

	p, err := svc.Prorate(context.Background(), e, date(2025, time.December, 1))
	if err != nil {
		t.Fatalf("Prorate failed: %v", err)
	}
	if !p.Paid {
		t.Error("Legacy BonusPaid flag should surface as paid")
	}

	if _, err := svc.MarkPaid(context.Background(), e, date(2025, time.December, 1), ""); !errors.Is(err, labor.ErrAlreadyPaid) {
		t.Errorf("Expected ErrAlreadyPaid via legacy flag, got %v", err)
	}
}

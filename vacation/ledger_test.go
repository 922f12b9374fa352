package vacation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/store/memory"
	"github.com/alltechcamoapa/Softsupport-sub000/vacation"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestLedger(t *testing.T) (*vacation.Ledger, *memory.Store) {
	t.Helper()
	store := memory.New()
	if err := store.Create(context.Background(), testEmployee(date(2024, time.January, 1), 0)); err != nil {
		t.Fatalf("Failed to seed employee: %v", err)
	}
	return vacation.NewLedger(store), store
}

func takenDays(t *testing.T, store *memory.Store, id string) decimal.Decimal {
	t.Helper()
	e, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get employee: %v", err)
	}
	return e.VacationDaysTaken
}

// =============================================================================
// VACATION REGISTRATION
// =============================================================================

func TestRegisterVacation_IncrementsBalance(t *testing.T) {
	// GIVEN: Employee with zero taken days
	// WHEN: Registering a 5-day vacation (March 10-14 inclusive)
	// THEN: The record holds 5 days and the counter moved by exactly 5

	ledger, store := newTestLedger(t)
	ctx := context.Background()

	rec, err := ledger.RegisterVacation(ctx, "emp-1",
		date(2025, time.March, 10), date(2025, time.March, 14), 0, "spring break")
	if err != nil {
		t.Fatalf("RegisterVacation failed: %v", err)
	}

	if !rec.Days.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected 5 days, got %s", rec.Days)
	}
	if rec.AccrualYear != 2025 {
		t.Errorf("Expected accrual year defaulted to 2025, got %d", rec.AccrualYear)
	}
	if got := takenDays(t, store, "emp-1"); !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected counter 5, got %s", got)
	}
}

func TestRegisterVacation_InvertedRangeLeavesBalance(t *testing.T) {
	ledger, store := newTestLedger(t)

	_, err := ledger.RegisterVacation(context.Background(), "emp-1",
		date(2025, time.March, 14), date(2025, time.March, 10), 0, "")
	if err == nil {
		t.Fatal("Expected error for inverted range")
	}
	if !labor.IsClientError(err) {
		t.Errorf("Expected client error, got %v", err)
	}
	if got := takenDays(t, store, "emp-1"); !got.IsZero() {
		t.Errorf("Counter must not move on a failed registration, got %s", got)
	}
}

func TestRegisterVacation_UnknownEmployee(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.RegisterVacation(context.Background(), "ghost",
		date(2025, time.March, 10), date(2025, time.March, 14), 0, "")
	if !labor.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestDeleteVacation_RestoresBalance(t *testing.T) {
	// GIVEN: A registered 5-day vacation
	// WHEN: Deleting the record
	// THEN: The counter returns to its prior value

	ledger, store := newTestLedger(t)
	ctx := context.Background()

	rec, err := ledger.RegisterVacation(ctx, "emp-1",
		date(2025, time.March, 10), date(2025, time.March, 14), 0, "")
	if err != nil {
		t.Fatalf("RegisterVacation failed: %v", err)
	}

	deleted, err := ledger.DeleteVacation(ctx, rec.ID)
	if err != nil {
		t.Fatalf("DeleteVacation failed: %v", err)
	}
	if deleted.ID != rec.ID {
		t.Errorf("Expected deleted record %s, got %s", rec.ID, deleted.ID)
	}
	if got := takenDays(t, store, "emp-1"); !got.IsZero() {
		t.Errorf("Expected counter restored to 0, got %s", got)
	}
}

func TestDeleteVacation_UnknownRecord(t *testing.T) {
	ledger, _ := newTestLedger(t)

	if _, err := ledger.DeleteVacation(context.Background(), "nope"); !labor.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

// =============================================================================
// ABSENCES
// =============================================================================

func TestRegisterAbsence_VacationTargetConsumesBalance(t *testing.T) {
	ledger, store := newTestLedger(t)

	rec, err := ledger.RegisterAbsence(context.Background(), "emp-1",
		date(2025, time.April, 7), date(2025, time.April, 8),
		vacation.DeductVacation, "personal", "")
	if err != nil {
		t.Fatalf("RegisterAbsence failed: %v", err)
	}
	if !rec.Days.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Expected 2 days, got %s", rec.Days)
	}
	if got := takenDays(t, store, "emp-1"); !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Expected counter 2, got %s", got)
	}
}

func TestRegisterAbsence_WorkingDayLeavesBalance(t *testing.T) {
	// GIVEN: An absence targeting working days, not the vacation balance
	// WHEN: Registering it
	// THEN: The record exists but the vacation counter does not move

	ledger, store := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.RegisterAbsence(ctx, "emp-1",
		date(2025, time.April, 7), date(2025, time.April, 9),
		vacation.DeductWorkingDay, "sick", "")
	if err != nil {
		t.Fatalf("RegisterAbsence failed: %v", err)
	}

	if got := takenDays(t, store, "emp-1"); !got.IsZero() {
		t.Errorf("Working-day absence must not touch the balance, got %s", got)
	}

	absences, err := ledger.Absences(ctx, "emp-1")
	if err != nil {
		t.Fatalf("Absences failed: %v", err)
	}
	if len(absences) != 1 {
		t.Fatalf("Expected 1 absence, got %d", len(absences))
	}
}

func TestRegisterAbsence_InvalidTarget(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.RegisterAbsence(context.Background(), "emp-1",
		date(2025, time.April, 7), date(2025, time.April, 8),
		vacation.DeductionTarget("payroll"), "", "")
	if err == nil {
		t.Fatal("Expected error for invalid deduction target")
	}
	if !labor.IsClientError(err) {
		t.Errorf("Expected client error, got %v", err)
	}
}

func TestDeleteAbsence_ConditionalRestore(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	vac, _ := ledger.RegisterAbsence(ctx, "emp-1",
		date(2025, time.April, 7), date(2025, time.April, 8),
		vacation.DeductVacation, "", "")
	work, _ := ledger.RegisterAbsence(ctx, "emp-1",
		date(2025, time.May, 5), date(2025, time.May, 6),
		vacation.DeductWorkingDay, "", "")

	if _, err := ledger.DeleteAbsence(ctx, work.ID); err != nil {
		t.Fatalf("DeleteAbsence failed: %v", err)
	}
	if got := takenDays(t, store, "emp-1"); !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Deleting a working-day absence must not move the balance, got %s", got)
	}

	if _, err := ledger.DeleteAbsence(ctx, vac.ID); err != nil {
		t.Fatalf("DeleteAbsence failed: %v", err)
	}
	if got := takenDays(t, store, "emp-1"); !got.IsZero() {
		t.Errorf("Expected counter restored to 0, got %s", got)
	}
}

// =============================================================================
// DERIVED BALANCE AUDIT
// =============================================================================

func TestTakenDays_FoldMatchesCounter(t *testing.T) {
	// GIVEN: A mix of vacations and absences, with one deletion
	// WHEN: Folding the surviving records
	// THEN: The fold equals the denormalized counter

	ledger, store := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.RegisterVacation(ctx, "emp-1",
		date(2025, time.March, 10), date(2025, time.March, 14), 0, ""); err != nil {
		t.Fatalf("RegisterVacation failed: %v", err)
	}
	vac, err := ledger.RegisterAbsence(ctx, "emp-1",
		date(2025, time.April, 7), date(2025, time.April, 8),
		vacation.DeductVacation, "", "")
	if err != nil {
		t.Fatalf("RegisterAbsence failed: %v", err)
	}
	if _, err := ledger.RegisterAbsence(ctx, "emp-1",
		date(2025, time.May, 5), date(2025, time.May, 7),
		vacation.DeductWorkingDay, "sick", ""); err != nil {
		t.Fatalf("RegisterAbsence failed: %v", err)
	}
	if _, err := ledger.DeleteAbsence(ctx, vac.ID); err != nil {
		t.Fatalf("DeleteAbsence failed: %v", err)
	}

	fold, err := ledger.TakenDays(ctx, "emp-1")
	if err != nil {
		t.Fatalf("TakenDays failed: %v", err)
	}
	counter := takenDays(t, store, "emp-1")
	if !fold.Equal(counter) {
		t.Errorf("Fold %s disagrees with counter %s", fold, counter)
	}
	if !fold.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected 5 taken days, got %s", fold)
	}
}

/*
ledger.go - Vacation and absence record registration with atomic balance moves

PURPOSE:
  The vacation balance counter (employee.VacationDaysTaken) is the only shared
  mutable state in the engine. Every mutation of it travels with a record
  write in a single store transaction:

    RegisterVacation: insert VacationRecord  + increment counter
    DeleteVacation:   delete VacationRecord  + decrement counter
    RegisterAbsence:  insert AbsenceRecord   + increment counter (vacation
                      target only; working-day absences never touch it)
    DeleteAbsence:    delete AbsenceRecord   + conditional decrement

  The Store contract owns the atomicity: if the record write fails the counter
  must not move, and vice versa. The ledger computes day counts, validates
  ranges and builds records; it holds no locks itself. Callers serialize
  mutations per employee; operations on different employees are independent.

DERIVED BALANCE:
  TakenDays folds the surviving records into the balance the counter should
  hold. The counter stays the snapshot the pure calculators read; the fold is
  the audit. Store implementations keep the two equal by construction
  (counter moves only inside record transactions), and tests assert it.
*/
package vacation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// =============================================================================
// RECORDS
// =============================================================================

// DeductionTarget routes an absence to the vacation balance or to the
// non-balance working-day bucket.
type DeductionTarget string

const (
	DeductVacation   DeductionTarget = "vacation"
	DeductWorkingDay DeductionTarget = "working_day"
)

func (t DeductionTarget) Valid() bool {
	return t == DeductVacation || t == DeductWorkingDay
}

// Record is a registered vacation period. Days is derived (inclusive count)
// and is the exact amount added to the balance, so deletion can reverse it.
type Record struct {
	ID          string
	EmployeeID  string
	StartDate   labor.Date
	EndDate     labor.Date
	Days        decimal.Decimal
	AccrualYear int
	Notes       string
	CreatedAt   time.Time
}

// AbsenceRecord is a registered absence period.
type AbsenceRecord struct {
	ID         string
	EmployeeID string
	StartDate  labor.Date
	EndDate    labor.Date
	Days       decimal.Decimal
	Target     DeductionTarget
	Reason     string
	Notes      string
	CreatedAt  time.Time
}

// =============================================================================
// STORE - Persistence contract (atomic record + balance writes)
// =============================================================================

// Store persists vacation and absence records. Every method that moves the
// balance counter must apply the record write and the counter mutation as one
// transaction; a failure leaves both untouched and surfaces as
// labor.PersistenceError (or NotFoundError for missing ids).
type Store interface {
	// CreateVacation inserts the record and increments the employee's
	// VacationDaysTaken by record.Days atomically.
	CreateVacation(ctx context.Context, rec *Record) error

	// DeleteVacation removes the record and decrements VacationDaysTaken by
	// the record's Days atomically. Returns the deleted record.
	DeleteVacation(ctx context.Context, id string) (*Record, error)

	// ListVacations returns an employee's vacation records, oldest first.
	ListVacations(ctx context.Context, employeeID string) ([]*Record, error)

	// CreateAbsence inserts the record; when rec.Target is DeductVacation the
	// balance increment is part of the same transaction.
	CreateAbsence(ctx context.Context, rec *AbsenceRecord) error

	// DeleteAbsence removes the record, reversing the balance increment only
	// when the record's target was DeductVacation. Returns the deleted record.
	DeleteAbsence(ctx context.Context, id string) (*AbsenceRecord, error)

	// ListAbsences returns an employee's absence records, oldest first.
	ListAbsences(ctx context.Context, employeeID string) ([]*AbsenceRecord, error)
}

// =============================================================================
// LEDGER
// =============================================================================

// Ledger validates and registers vacation/absence movements through a Store.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// RegisterVacation records a taken vacation period. The inclusive day count
// becomes both the record's Days and the balance increment.
func (l *Ledger) RegisterVacation(ctx context.Context, employeeID string, start, end labor.Date, accrualYear int, notes string) (*Record, error) {
	days, err := labor.InclusiveDays(start, end)
	if err != nil {
		return nil, err
	}
	if accrualYear == 0 {
		accrualYear = start.Year()
	}

	rec := &Record{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		StartDate:   start,
		EndDate:     end,
		Days:        decimal.NewFromInt(int64(days)),
		AccrualYear: accrualYear,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := l.store.CreateVacation(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteVacation removes a vacation record, restoring its days to the balance.
func (l *Ledger) DeleteVacation(ctx context.Context, id string) (*Record, error) {
	return l.store.DeleteVacation(ctx, id)
}

// RegisterAbsence records an absence period. Vacation-target absences consume
// the vacation balance; working-day absences are logged without touching it.
func (l *Ledger) RegisterAbsence(ctx context.Context, employeeID string, start, end labor.Date, target DeductionTarget, reason, notes string) (*AbsenceRecord, error) {
	if !target.Valid() {
		return nil, &labor.MissingFieldError{EmployeeID: employeeID, Field: "deductionTarget"}
	}
	days, err := labor.InclusiveDays(start, end)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, &labor.InvalidRangeError{Start: start, End: end}
	}

	rec := &AbsenceRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Days:       decimal.NewFromInt(int64(days)),
		Target:     target,
		Reason:     reason,
		Notes:      notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := l.store.CreateAbsence(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteAbsence removes an absence record, reversing the balance increment
// when the record targeted the vacation balance.
func (l *Ledger) DeleteAbsence(ctx context.Context, id string) (*AbsenceRecord, error) {
	return l.store.DeleteAbsence(ctx, id)
}

// Vacations lists an employee's vacation records.
func (l *Ledger) Vacations(ctx context.Context, employeeID string) ([]*Record, error) {
	return l.store.ListVacations(ctx, employeeID)
}

// Absences lists an employee's absence records.
func (l *Ledger) Absences(ctx context.Context, employeeID string) ([]*AbsenceRecord, error) {
	return l.store.ListAbsences(ctx, employeeID)
}

// TakenDays folds the surviving records into the derived taken-days balance:
// vacation records plus vacation-target absences. The result must equal the
// employee's VacationDaysTaken counter.
func (l *Ledger) TakenDays(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	taken := decimal.Zero

	vacations, err := l.store.ListVacations(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, rec := range vacations {
		taken = taken.Add(rec.Days)
	}

	absences, err := l.store.ListAbsences(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, rec := range absences {
		if rec.Target == DeductVacation {
			taken = taken.Add(rec.Days)
		}
	}
	return taken, nil
}

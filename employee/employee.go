/*
Package employee defines the employee snapshot the calculators operate on.

PURPOSE:
  The engine never owns employee master data; an external directory supplies
  snapshots and persists updates. This package defines the snapshot fields the
  calculators read, the enums that gate calculator behavior, and the Directory
  interface the record store must satisfy.

FIELDS THE ENGINE READS:
  HireDate          every calculation (accrual, bonus, severance)
  MonthlySalary     bonus, withholding, settlement, receipts
  ContractType      settlement gating (temporary contract end)
  VacationDaysTaken vacation accrual; mutated ONLY through the vacation ledger
  BonusPaid         legacy flag, superseded by bonus-payment records

INVARIANTS:
  - HireDate must not be in the future
  - MonthlySalary >= 0
  Validate() enforces both; calculators additionally fail with
  MissingFieldError when a required field is absent.
*/
package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// =============================================================================
// ENUMS
// =============================================================================

type SalaryBasis string

const (
	BasisMonthly     SalaryBasis = "monthly"
	BasisSemimonthly SalaryBasis = "semimonthly"
	BasisHourly      SalaryBasis = "hourly"
	BasisByProject   SalaryBasis = "by_project"
)

type ContractType string

const (
	ContractIndefinite ContractType = "indefinite"
	ContractTemporary  ContractType = "temporary"
	ContractByProject  ContractType = "by_project"
	ContractProbation  ContractType = "probation"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// =============================================================================
// EMPLOYEE SNAPSHOT
// =============================================================================

type Employee struct {
	ID            string
	Name          string
	HireDate      labor.Date
	MonthlySalary decimal.Decimal
	SalaryBasis   SalaryBasis
	ContractType  ContractType

	// ContractDurationMonths is only meaningful for temporary contracts.
	ContractDurationMonths int

	Status Status

	// VacationDaysTaken is the cumulative vacation balance consumed. It is
	// mutated only by the vacation/absence ledger, atomically with the
	// corresponding record write.
	VacationDaysTaken decimal.Decimal

	// BonusPaid is the legacy per-year flag. Bonus-payment records are the
	// source of truth; the flag is still honored when reading old data.
	BonusPaid bool
}

// Validate checks the snapshot invariants against a reference date.
func (e *Employee) Validate(ref labor.Date) error {
	if e.HireDate.IsZero() {
		return &labor.MissingFieldError{EmployeeID: e.ID, Field: "hireDate"}
	}
	if e.HireDate.After(ref) {
		return &labor.InvalidRangeError{Start: e.HireDate, End: ref}
	}
	if e.MonthlySalary.IsNegative() {
		return &labor.MissingFieldError{EmployeeID: e.ID, Field: "monthlySalary"}
	}
	return nil
}

// RequireSalary fails when the snapshot has no usable salary for a
// salary-based calculation.
func (e *Employee) RequireSalary() error {
	if e.MonthlySalary.IsNegative() {
		return &labor.MissingFieldError{EmployeeID: e.ID, Field: "monthlySalary"}
	}
	return nil
}

// IsActive reports whether the employee participates in payroll runs.
func (e *Employee) IsActive() bool { return e.Status == StatusActive }

// =============================================================================
// DIRECTORY - External employee store
// =============================================================================

// Directory is the engine's view of the employee master store. Balance
// mutations go through the vacation ledger's store contract, never through
// Directory directly.
type Directory interface {
	// Get returns the employee snapshot or NotFoundError.
	Get(ctx context.Context, id string) (*Employee, error)

	// List returns all employees.
	List(ctx context.Context) ([]*Employee, error)

	// ListActive returns employees with active status, the payroll
	// generation population.
	ListActive(ctx context.Context) ([]*Employee, error)

	// Create persists a new employee snapshot.
	Create(ctx context.Context, e *Employee) error
}

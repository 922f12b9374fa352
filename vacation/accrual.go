/*
Package vacation implements vacation-balance accrual and the vacation/absence
ledger.

PURPOSE:
  Two concerns live here:

  1. Accrual (this file): a pure read deriving the accrued/available balance
     for an employee snapshot as of a reference date. Statutory rate is 15
     days after year one, expressed as 2.5 days per 30.417-day average month,
     uncapped.

  2. Ledger (ledger.go): registration and deletion of vacation and absence
     records, with the balance counter mutated atomically alongside each
     record write.

NEGATIVE BALANCES:
  AvailableDays may be negative. A deficit is surfaced, not clamped to zero:
  hiding an over-taken balance is how payroll disputes are born.

SEE ALSO:
  - labor/calendar.go: MonthsElapsed and the 30.417-day average month
  - ledger.go: the mutation side of the balance
*/
package vacation

import (
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// MonthlyAccrualDays is the statutory accrual rate: 15 days per service year,
// 2.5 day-equivalents per average month.
var MonthlyAccrualDays = decimal.NewFromFloat(2.5)

// Summary is the accrual state of one employee at a reference date.
type Summary struct {
	AsOf            labor.Date
	SeniorityYears  decimal.Decimal
	AccruedDays     decimal.Decimal
	TakenDays       decimal.Decimal
	AvailableDays   decimal.Decimal // may be negative
	NextAnniversary labor.Date
}

// Accrue derives the vacation balance for an employee snapshot as of ref.
// Pure read: no side effects. A zero ref defaults to today.
func Accrue(e *employee.Employee, ref labor.Date) (*Summary, error) {
	if ref.IsZero() {
		ref = labor.Today()
	}
	if err := e.Validate(ref); err != nil {
		return nil, err
	}

	serviceDays := decimal.NewFromInt(int64(labor.DaysBetween(e.HireDate, ref)))
	accrued := labor.MonthsElapsed(e.HireDate, ref).Mul(MonthlyAccrualDays)

	return &Summary{
		AsOf:            ref,
		SeniorityYears:  serviceDays.Div(labor.YearDays),
		AccruedDays:     accrued,
		TakenDays:       e.VacationDaysTaken,
		AvailableDays:   accrued.Sub(e.VacationDaysTaken),
		NextAnniversary: labor.NextAnniversary(e.HireDate, ref),
	}, nil
}

/*
Package bonus implements the annual bonus (aguinaldo) proration and payment
recording.

PURPOSE:
  The aguinaldo is one month's salary per full accrual year, prorated by
  months worked in the current calendar-year cycle. The cycle restarts every
  January 1, or at the hire date for employees hired mid-year.

PRORATION:
  cycleStart   = max(hireDate, Jan 1 of the reference year)
  monthsWorked = clamp(floor(days(cycleStart -> ref) / 30.44), 0, 12)
  amount       = monthlySalary / 12 * monthsWorked

  The 30.44-day divisor is this calculator's own constant. It is close to,
  but not the same as, the 30.417 used by vacation accrual; the two are kept
  separate on purpose (unifying them changes payout amounts).

PAYMENT RECORDING:
  MarkPaid creates exactly one BonusPayment per employee per accrual year.
  The store enforces (employeeID, year) uniqueness inside the insert
  transaction; a second attempt fails with labor.ErrAlreadyPaid.
*/
package bonus

import (
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// CycleMonthDays is the average-month divisor for aguinaldo proration.
var CycleMonthDays = decimal.NewFromFloat(30.44)

// Proration is the bonus accrual state of one employee at a reference date.
type Proration struct {
	AsOf           labor.Date
	CycleStart     labor.Date
	MonthsWorked   int // 0..12
	Amount         decimal.Decimal
	DaysEquivalent decimal.Decimal
	Paid           bool
}

// Prorate computes the aguinaldo earned in the current accrual cycle.
// Pure: paid status is left false, callers overlay it from payment records
// (see Service.Prorate).
func Prorate(e *employee.Employee, ref labor.Date) (*Proration, error) {
	if ref.IsZero() {
		ref = labor.Today()
	}
	if err := e.Validate(ref); err != nil {
		return nil, err
	}

	cycleStart := e.HireDate.Max(labor.StartOfYear(ref.Year()))

	months := 0
	if days := labor.DaysBetween(cycleStart, ref); days > 0 {
		months = int(decimal.NewFromInt(int64(days)).Div(CycleMonthDays).IntPart())
	}
	if months > 12 {
		months = 12
	}

	amount := e.MonthlySalary.Div(labor.Twelve).Mul(decimal.NewFromInt(int64(months)))

	return &Proration{
		AsOf:         ref,
		CycleStart:   cycleStart,
		MonthsWorked: months,
		Amount:       amount,
		// One month of salary is 30 wage-days; the prorated share scales the
		// same way: 2.5 day-equivalents per month worked.
		DaysEquivalent: decimal.NewFromFloat(2.5).Mul(decimal.NewFromInt(int64(months))),
	}, nil
}

/*
Package settlement computes the termination payout (liquidación): unused
vacation, prorated aguinaldo, and the tiered severance indemnity.

PURPOSE:
  The settlement is a composition of the other calculators evaluated at the
  termination date, plus the seniority indemnity. It is produced on demand
  from an employee snapshot; the caller decides whether and how to record it.

SEVERANCE FORMULA:
  Y = days(hireDate -> terminationDate) / 365.25 exact seniority years

    Y <= 3:  monthsOwed = Y
    Y  > 3:  monthsOwed = 3 + (Y - 3) * 20/30, capped at 5

  severance = monthsOwed * monthlySalary

ELIGIBILITY:
  Severance is computed only for reasons in the configured eligible set. The
  default set includes voluntary resignation, reproducing the behavior of the
  system this replaces even though the quoted labor-law text reserves the
  indemnity for unjustified dismissal. The set is configuration precisely so
  the business owner can correct it without a code change.

COMPONENT DIVISORS:
  The vacation payout converts days to wages at monthlySalary/30. That /30 is
  this calculator's own constant, distinct from the 30.417 and 30.44 average
  months used upstream. Do not unify them.
*/
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/bonus"
	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/vacation"
)

// =============================================================================
// TERMINATION REASONS
// =============================================================================

type Reason string

const (
	ReasonResignation          Reason = "resignation"
	ReasonWithCause            Reason = "termination_with_cause"
	ReasonWithoutCause         Reason = "termination_without_cause"
	ReasonMutualAgreement      Reason = "mutual_agreement"
	ReasonTemporaryContractEnd Reason = "temporary_contract_end"
)

func (r Reason) Valid() bool {
	switch r {
	case ReasonResignation, ReasonWithCause, ReasonWithoutCause,
		ReasonMutualAgreement, ReasonTemporaryContractEnd:
		return true
	}
	return false
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config controls severance eligibility and tier shape.
type Config struct {
	// EligibleReasons is the set of termination reasons that earn severance.
	EligibleReasons map[Reason]bool

	// TierThresholdYears is the seniority where the accrual rate drops
	// (default 3), TierRate the post-threshold months-per-year (default
	// 20/30), CapMonths the ceiling on months owed (default 5).
	TierThresholdYears decimal.Decimal
	TierRate           decimal.Decimal
	CapMonths          decimal.Decimal
}

// Eligible reports whether a reason earns severance under this config.
func (c Config) Eligible(r Reason) bool { return c.EligibleReasons[r] }

// =============================================================================
// RESULT
// =============================================================================

// Result is the settlement breakdown. Derived, never persisted here.
type Result struct {
	TerminationDate    labor.Date
	Reason             Reason
	SeniorityYears     decimal.Decimal
	VacationDays       decimal.Decimal // available days at termination, may be negative
	VacationPayout     decimal.Decimal
	BonusMonths        int
	BonusPayout        decimal.Decimal
	SeveranceMonths    decimal.Decimal
	SeveranceIndemnity decimal.Decimal
	Total              decimal.Decimal
}

// =============================================================================
// CALCULATOR
// =============================================================================

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Compute produces the settlement for an employee terminated on the given
// date for the given reason.
func (c *Calculator) Compute(e *employee.Employee, termination labor.Date, reason Reason) (*Result, error) {
	if !reason.Valid() {
		return nil, &labor.MissingFieldError{EmployeeID: e.ID, Field: "terminationReason"}
	}
	if termination.IsZero() {
		termination = labor.Today()
	}
	if err := e.Validate(termination); err != nil {
		return nil, err
	}
	if err := e.RequireSalary(); err != nil {
		return nil, err
	}

	accrual, err := vacation.Accrue(e, termination)
	if err != nil {
		return nil, err
	}
	// Unused vacation pays out at the 30-day wage rate.
	dailyWage := e.MonthlySalary.Div(labor.Thirty)
	vacationPayout := accrual.AvailableDays.Mul(dailyWage)

	proration, err := bonus.Prorate(e, termination)
	if err != nil {
		return nil, err
	}

	seniority := decimal.NewFromInt(int64(labor.DaysBetween(e.HireDate, termination))).Div(labor.YearDays)

	severanceMonths := decimal.Zero
	if c.cfg.Eligible(reason) {
		severanceMonths = c.monthsOwed(seniority)
	}
	severance := severanceMonths.Mul(e.MonthlySalary)

	return &Result{
		TerminationDate:    termination,
		Reason:             reason,
		SeniorityYears:     seniority,
		VacationDays:       accrual.AvailableDays,
		VacationPayout:     vacationPayout,
		BonusMonths:        proration.MonthsWorked,
		BonusPayout:        proration.Amount,
		SeveranceMonths:    severanceMonths,
		SeveranceIndemnity: severance,
		Total:              vacationPayout.Add(proration.Amount).Add(severance),
	}, nil
}

// monthsOwed applies the tiered seniority formula: one month per year up to
// the threshold, then TierRate months per additional year, capped.
func (c *Calculator) monthsOwed(seniorityYears decimal.Decimal) decimal.Decimal {
	if seniorityYears.LessThanOrEqual(c.cfg.TierThresholdYears) {
		return seniorityYears
	}
	owed := c.cfg.TierThresholdYears.Add(
		seniorityYears.Sub(c.cfg.TierThresholdYears).Mul(c.cfg.TierRate))
	if owed.GreaterThan(c.cfg.CapMonths) {
		return c.cfg.CapMonths
	}
	return owed
}

/*
Package withholding computes mandatory payroll deductions from a monthly
gross salary: the social-security contribution (INSS, employee and employer
portions) and the progressive income-tax withholding (IR).

PURPOSE:
  Both deductions are pure functions of the salary and a Config. Nothing in
  this package hard-codes a rate: the statutory numbers live in configuration
  (factory.DefaultRules carries the defaults) because the source material
  itself disagrees on them — the employee INSS rate appears as both 7% and
  6.25% depending on where you look.

INCOME TAX ALGORITHM:
  The monthly withholding is derived from the ANNUALIZED salary (salary * 12)
  run through ordered marginal brackets {Floor, Ceiling, Rate}:

    for each bracket, ascending:
      if annualized <= ceiling:  tax += (annualized - floor) * rate; stop
      else:                      tax += (ceiling - floor) * rate; continue

  and the accumulated annual tax is divided by 12. Because each bracket taxes
  only the income above its floor, the withholding is continuous at bracket
  boundaries and monotonically non-decreasing in salary.

WORKED EXAMPLE (default brackets):
  salary 50,000 -> annualized 600,000
  100,000*0 + 100,000*0.15 + 150,000*0.20 + 150,000*0.25 + 100,000*0.30
    = 112,500 annual -> 9,375 monthly
*/
package withholding

import (
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Bracket is one marginal income-tax band over ANNUAL income. The band taxes
// income in (Floor, Ceiling] at Rate. The last band has no ceiling.
type Bracket struct {
	Floor   decimal.Decimal
	Ceiling decimal.Decimal // zero on the open-ended top band
	Rate    decimal.Decimal
	Open    bool // true for the top band
}

// Config carries the statutory parameters. Rates are fractions (0.07 = 7%).
type Config struct {
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
	Brackets     []Bracket
}

// =============================================================================
// RESULT
// =============================================================================

// Deductions is the withholding breakdown for one monthly salary.
type Deductions struct {
	EmployeeSocialSecurity decimal.Decimal
	EmployerSocialSecurity decimal.Decimal
	IncomeTax              decimal.Decimal // monthly withholding
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator applies a Config. Pure; no persistence.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Compute returns the full deduction breakdown for a monthly gross salary.
func (c *Calculator) Compute(monthlySalary decimal.Decimal) (*Deductions, error) {
	if monthlySalary.IsNegative() {
		return nil, &labor.MissingFieldError{Field: "monthlySalary"}
	}
	return &Deductions{
		EmployeeSocialSecurity: monthlySalary.Mul(c.cfg.EmployeeRate),
		EmployerSocialSecurity: monthlySalary.Mul(c.cfg.EmployerRate),
		IncomeTax:              c.IncomeTax(monthlySalary),
	}, nil
}

// SocialSecurity returns the employee and employer INSS portions.
func (c *Calculator) SocialSecurity(monthlySalary decimal.Decimal) (employeePortion, employerPortion decimal.Decimal) {
	return monthlySalary.Mul(c.cfg.EmployeeRate), monthlySalary.Mul(c.cfg.EmployerRate)
}

// IncomeTax returns the monthly IR withholding for a monthly gross salary,
// computed from the annualized salary through the marginal brackets.
func (c *Calculator) IncomeTax(monthlySalary decimal.Decimal) decimal.Decimal {
	annualized := monthlySalary.Mul(labor.Twelve)

	tax := decimal.Zero
	for _, b := range c.cfg.Brackets {
		if b.Open || annualized.LessThanOrEqual(b.Ceiling) {
			tax = tax.Add(annualized.Sub(b.Floor).Mul(b.Rate))
			break
		}
		tax = tax.Add(b.Ceiling.Sub(b.Floor).Mul(b.Rate))
	}
	if tax.IsNegative() {
		tax = decimal.Zero
	}
	return tax.Div(labor.Twelve)
}

/*
Package payroll generates payroll receipts by applying the withholding
calculator over a stated pay period.

PURPOSE:
  A generation run takes a set of active employees, a period (a calendar
  month, whole or halved) and produces one immutable receipt per employee.

APPORTIONMENT RULE:
  Income tax is ALWAYS computed from the full monthly salary and then halved
  for semimonthly periods. Halving the salary first would push it into lower
  brackets and understate the withholding; the progressive table is defined
  over annual income, so the tax must be derived before apportioning.

BATCH SEMANTICS:
  Each employee's computation and write are independent. One employee failing
  (bad snapshot, store error) must not abort the run: outcomes are collected
  per employee and reported as a BatchResult. Generation fans out over a
  bounded worker pool since receipts for distinct employees share no state.
*/
package payroll

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/withholding"
)

// =============================================================================
// PERIODS
// =============================================================================

type PeriodType string

const (
	PeriodMonthly     PeriodType = "monthly"
	PeriodSemimonthly PeriodType = "semimonthly"
)

type Half string

const (
	FirstHalf  Half = "first"
	SecondHalf Half = "second"
)

// Period is a concrete pay period within one calendar month.
type Period struct {
	Type  PeriodType
	Start labor.Date
	End   labor.Date
}

// NewPeriod resolves (year, month, type, half) to concrete bounds:
// monthly 1..end-of-month, semimonthly first 1..15, second 16..end-of-month.
func NewPeriod(year int, month time.Month, pt PeriodType, half Half) (Period, error) {
	switch pt {
	case PeriodMonthly:
		return Period{
			Type:  pt,
			Start: labor.NewDate(year, month, 1),
			End:   labor.EndOfMonth(year, month),
		}, nil
	case PeriodSemimonthly:
		switch half {
		case FirstHalf:
			return Period{
				Type:  pt,
				Start: labor.NewDate(year, month, 1),
				End:   labor.NewDate(year, month, 15),
			}, nil
		case SecondHalf:
			return Period{
				Type:  pt,
				Start: labor.NewDate(year, month, 16),
				End:   labor.EndOfMonth(year, month),
			}, nil
		}
		return Period{}, &labor.MissingFieldError{Field: "half"}
	}
	return Period{}, &labor.MissingFieldError{Field: "periodType"}
}

// =============================================================================
// RECEIPTS
// =============================================================================

// Receipt is one employee's payroll receipt for a period. Immutable once
// created; the store offers no update path.
type Receipt struct {
	ID                     string
	EmployeeID             string
	PeriodStart            labor.Date
	PeriodEnd              labor.Date
	PeriodType             PeriodType
	BaseSalary             decimal.Decimal
	SocialSecurityWithheld decimal.Decimal
	IncomeTaxWithheld      decimal.Decimal
	OtherDeductions        decimal.Decimal
	NetTotal               decimal.Decimal
	Status                 string
	Notes                  string
	CreatedAt              time.Time
}

const StatusIssued = "issued"

// ReceiptStore persists receipts. Create-and-list only.
type ReceiptStore interface {
	CreateReceipt(ctx context.Context, r *Receipt) error
	ListReceipts(ctx context.Context, employeeID string) ([]*Receipt, error)
}

// =============================================================================
// GENERATOR
// =============================================================================

// Outcome is the per-employee result of a generation run.
type Outcome struct {
	EmployeeID string
	Receipt    *Receipt
	Err        error
}

// BatchResult aggregates a generation run. Partial failure is expected and
// reported, never fatal to the batch.
type BatchResult struct {
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// Generator builds receipts through a withholding calculator and a store.
type Generator struct {
	calc    *withholding.Calculator
	store   ReceiptStore
	workers int
}

func NewGenerator(calc *withholding.Calculator, store ReceiptStore) *Generator {
	return &Generator{calc: calc, store: store, workers: 4}
}

// Build computes one employee's receipt without persisting it.
func (g *Generator) Build(e *employee.Employee, period Period, otherDeductions decimal.Decimal) (*Receipt, error) {
	if e.HireDate.IsZero() {
		return nil, &labor.MissingFieldError{EmployeeID: e.ID, Field: "hireDate"}
	}
	if err := e.RequireSalary(); err != nil {
		return nil, err
	}

	base := e.MonthlySalary
	// Tax from the FULL monthly salary, apportioned after.
	tax := g.calc.IncomeTax(e.MonthlySalary)
	if period.Type == PeriodSemimonthly {
		two := decimal.NewFromInt(2)
		base = base.Div(two)
		tax = tax.Div(two)
	}
	ss, _ := g.calc.SocialSecurity(base)

	return &Receipt{
		ID:                     uuid.NewString(),
		EmployeeID:             e.ID,
		PeriodStart:            period.Start,
		PeriodEnd:              period.End,
		PeriodType:             period.Type,
		BaseSalary:             base,
		SocialSecurityWithheld: ss,
		IncomeTaxWithheld:      tax,
		OtherDeductions:        otherDeductions,
		NetTotal:               base.Sub(ss).Sub(tax).Sub(otherDeductions),
		Status:                 StatusIssued,
		CreatedAt:              time.Now().UTC(),
	}, nil
}

// Generate builds and persists one receipt per employee, collecting
// per-employee outcomes. Employees are processed concurrently; receipts for
// distinct employees share no state.
func (g *Generator) Generate(ctx context.Context, employees []*employee.Employee, period Period) *BatchResult {
	outcomes := make([]Outcome, len(employees))

	sem := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, e := range employees {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, e *employee.Employee) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = g.generateOne(ctx, e, period)
		}(i, e)
	}
	wg.Wait()

	result := &BatchResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	return result
}

func (g *Generator) generateOne(ctx context.Context, e *employee.Employee, period Period) Outcome {
	receipt, err := g.Build(e, period, decimal.Zero)
	if err != nil {
		return Outcome{EmployeeID: e.ID, Err: err}
	}
	if err := g.store.CreateReceipt(ctx, receipt); err != nil {
		return Outcome{EmployeeID: e.ID, Err: err}
	}
	return Outcome{EmployeeID: e.ID, Receipt: receipt}
}

package bonus

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
)

// =============================================================================
// PAYMENT RECORDS
// =============================================================================

// Payment records a paid aguinaldo for one accrual year. At most one exists
// per (EmployeeID, Year).
type Payment struct {
	ID             string
	EmployeeID     string
	Year           int
	Amount         decimal.Decimal
	DaysEquivalent decimal.Decimal
	PaymentDate    labor.Date
	Notes          string
	CreatedAt      time.Time
}

// Store persists bonus payments. CreatePayment must enforce the
// (employeeID, year) uniqueness inside the insert transaction and return
// labor.ErrAlreadyPaid on a duplicate.
type Store interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, employeeID string, year int) (*Payment, error)
	ListPayments(ctx context.Context, employeeID string) ([]*Payment, error)
}

// =============================================================================
// SERVICE
// =============================================================================

// Service combines the pure proration with payment-record state.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Prorate computes the proration and overlays paid status from payment
// records, falling back to the legacy per-employee flag for old data.
func (s *Service) Prorate(ctx context.Context, e *employee.Employee, ref labor.Date) (*Proration, error) {
	p, err := Prorate(e, ref)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetPayment(ctx, e.ID, p.AsOf.Year())
	if err != nil && !labor.IsNotFound(err) {
		return nil, err
	}
	p.Paid = existing != nil || e.BonusPaid
	return p, nil
}

// MarkPaid records the bonus payment for the reference year. Exactly one
// payment per employee per year: a second call fails with ErrAlreadyPaid.
func (s *Service) MarkPaid(ctx context.Context, e *employee.Employee, ref labor.Date, notes string) (*Payment, error) {
	p, err := s.Prorate(ctx, e, ref)
	if err != nil {
		return nil, err
	}
	if p.Paid {
		return nil, labor.ErrAlreadyPaid
	}

	payment := &Payment{
		ID:             uuid.NewString(),
		EmployeeID:     e.ID,
		Year:           p.AsOf.Year(),
		Amount:         p.Amount,
		DaysEquivalent: p.DaysEquivalent,
		PaymentDate:    p.AsOf,
		Notes:          notes,
		CreatedAt:      time.Now().UTC(),
	}
	// The paid check above races with concurrent callers; the store's unique
	// index is the real gate.
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Payments lists an employee's bonus payment history.
func (s *Service) Payments(ctx context.Context, employeeID string) ([]*Payment, error) {
	return s.store.ListPayments(ctx, employeeID)
}

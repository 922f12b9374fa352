// Package memory provides an in-memory record store for tests and dev runs.
// It implements the same interfaces as the sqlite store; the atomic
// record+balance contract is upheld under one mutex.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/alltechcamoapa/Softsupport-sub000/bonus"
	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/payroll"
	"github.com/alltechcamoapa/Softsupport-sub000/vacation"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Store struct {
	mu        sync.RWMutex
	employees map[string]*employee.Employee
	vacations map[string]*vacation.Record
	absences  map[string]*vacation.AbsenceRecord
	payments  map[string]*bonus.Payment // key: employeeID|year
	receipts  []*payroll.Receipt
}

func New() *Store {
	return &Store{
		employees: make(map[string]*employee.Employee),
		vacations: make(map[string]*vacation.Record),
		absences:  make(map[string]*vacation.AbsenceRecord),
		payments:  make(map[string]*bonus.Payment),
	}
}

// =============================================================================
// EMPLOYEE DIRECTORY (employee.Directory)
// =============================================================================

func (s *Store) Get(_ context.Context, id string) (*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "employee", ID: id}
	}
	clone := *e
	return &clone, nil
}

func (s *Store) List(_ context.Context) ([]*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(func(*employee.Employee) bool { return true }), nil
}

func (s *Store) ListActive(_ context.Context) ([]*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(func(e *employee.Employee) bool { return e.IsActive() }), nil
}

func (s *Store) listLocked(keep func(*employee.Employee) bool) []*employee.Employee {
	out := make([]*employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if keep(e) {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Create(_ context.Context, e *employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *e
	s.employees[e.ID] = &clone
	return nil
}

// =============================================================================
// VACATION / ABSENCE (vacation.Store)
// =============================================================================

func (s *Store) CreateVacation(_ context.Context, rec *vacation.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[rec.EmployeeID]
	if !ok {
		return &labor.NotFoundError{Kind: "employee", ID: rec.EmployeeID}
	}
	clone := *rec
	s.vacations[rec.ID] = &clone
	e.VacationDaysTaken = e.VacationDaysTaken.Add(rec.Days)
	return nil
}

func (s *Store) DeleteVacation(_ context.Context, id string) (*vacation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.vacations[id]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "vacation", ID: id}
	}
	e, ok := s.employees[rec.EmployeeID]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "employee", ID: rec.EmployeeID}
	}
	delete(s.vacations, id)
	e.VacationDaysTaken = e.VacationDaysTaken.Sub(rec.Days)
	return rec, nil
}

func (s *Store) ListVacations(_ context.Context, employeeID string) ([]*vacation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*vacation.Record
	for _, rec := range s.vacations {
		if rec.EmployeeID == employeeID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *Store) CreateAbsence(_ context.Context, rec *vacation.AbsenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[rec.EmployeeID]
	if !ok {
		return &labor.NotFoundError{Kind: "employee", ID: rec.EmployeeID}
	}
	clone := *rec
	s.absences[rec.ID] = &clone
	if rec.Target == vacation.DeductVacation {
		e.VacationDaysTaken = e.VacationDaysTaken.Add(rec.Days)
	}
	return nil
}

func (s *Store) DeleteAbsence(_ context.Context, id string) (*vacation.AbsenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.absences[id]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "absence", ID: id}
	}
	e, ok := s.employees[rec.EmployeeID]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "employee", ID: rec.EmployeeID}
	}
	delete(s.absences, id)
	if rec.Target == vacation.DeductVacation {
		e.VacationDaysTaken = e.VacationDaysTaken.Sub(rec.Days)
	}
	return rec, nil
}

func (s *Store) ListAbsences(_ context.Context, employeeID string) ([]*vacation.AbsenceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*vacation.AbsenceRecord
	for _, rec := range s.absences {
		if rec.EmployeeID == employeeID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

// =============================================================================
// BONUS PAYMENTS (bonus.Store)
// =============================================================================

func paymentKey(employeeID string, year int) string {
	return employeeID + "|" + strconv.Itoa(year)
}

func (s *Store) CreatePayment(_ context.Context, p *bonus.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := paymentKey(p.EmployeeID, p.Year)
	if _, exists := s.payments[key]; exists {
		return labor.ErrAlreadyPaid
	}
	clone := *p
	s.payments[key] = &clone
	return nil
}

func (s *Store) GetPayment(_ context.Context, employeeID string, year int) (*bonus.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[paymentKey(employeeID, year)]
	if !ok {
		return nil, &labor.NotFoundError{Kind: "bonus_payment", ID: paymentKey(employeeID, year)}
	}
	clone := *p
	return &clone, nil
}

func (s *Store) ListPayments(_ context.Context, employeeID string) ([]*bonus.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*bonus.Payment
	for _, p := range s.payments {
		if p.EmployeeID == employeeID {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// =============================================================================
// RECEIPTS (payroll.ReceiptStore)
// =============================================================================

func (s *Store) CreateReceipt(_ context.Context, r *payroll.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *r
	s.receipts = append(s.receipts, &clone)
	return nil
}

func (s *Store) ListReceipts(_ context.Context, employeeID string) ([]*payroll.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*payroll.Receipt
	for _, r := range s.receipts {
		if r.EmployeeID == employeeID {
			clone := *r
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.Before(out[j].PeriodStart) })
	return out, nil
}

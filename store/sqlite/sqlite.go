/*
Package sqlite provides the SQLite-backed record store.

PURPOSE:
  Implements every store interface the engine defines (employee.Directory,
  vacation.Store, bonus.Store, payroll.ReceiptStore) on a single SQLite file.
  The same patterns apply to PostgreSQL - only minor dialect differences.

ATOMIC RECORD + BALANCE WRITES:
  The engine's one piece of shared mutable state is the employee's
  vacation-days-taken counter. Every write that moves it runs inside a SQL
  transaction together with the record insert/delete:

    CreateVacation: INSERT vacation_records + UPDATE employees counter
    DeleteVacation: DELETE vacation_records + UPDATE employees counter
    CreateAbsence:  INSERT absence_records (+ UPDATE when vacation-target)
    DeleteAbsence:  DELETE absence_records (+ UPDATE when vacation-target)

  A failure in either statement rolls back both; the counter can never drift
  from the records it summarizes.

DUPLICATE BONUS PAYMENTS:
  bonus_payments carries a UNIQUE(employee_id, year) index. The check lives
  in the database, not the application: two concurrent "mark as paid" calls
  race through the service check, and exactly one insert wins. The loser gets
  labor.ErrAlreadyPaid.

KEY TABLES:
  employees:        snapshot fields the calculators read
  vacation_records: taken vacation periods
  absence_records:  absences (vacation- or working-day-target)
  bonus_payments:   one per employee per accrual year
  payroll_receipts: immutable once written (no UPDATE path exists)

DECIMALS AND DATES:
  Money and day amounts are stored as TEXT in decimal form; calendar dates as
  ISO YYYY-MM-DD TEXT. SQLite REAL would round exactly where it must not.

WAL MODE:
  Opened with WAL for better concurrency: readers don't block, one writer at
  a time, better crash recovery. A sync.RWMutex serializes writers the way
  the production PostgreSQL deployment would rely on row locks.

USAGE:
  store, err := sqlite.New("./data/payroll.db")  // ":memory:" for tests
  ledger := vacation.NewLedger(store)

SEE ALSO:
  - vacation/ledger.go: the atomicity contract this store fulfills
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/bonus"
	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/payroll"
	"github.com/alltechcamoapa/Softsupport-sub000/vacation"
)

// Store implements all record-store interfaces on SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hire_date TEXT NOT NULL,
		monthly_salary TEXT NOT NULL,
		salary_basis TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		contract_duration_months INTEGER DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		vacation_days_taken TEXT NOT NULL DEFAULT '0',
		bonus_paid INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_status ON employees(status);

	CREATE TABLE IF NOT EXISTS vacation_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		days TEXT NOT NULL,
		accrual_year INTEGER NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_vacation_records_employee
		ON vacation_records(employee_id, start_date);

	CREATE TABLE IF NOT EXISTS absence_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		days TEXT NOT NULL,
		deduction_target TEXT NOT NULL,
		reason TEXT,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_absence_records_employee
		ON absence_records(employee_id, start_date);

	CREATE TABLE IF NOT EXISTS bonus_payments (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		year INTEGER NOT NULL,
		amount TEXT NOT NULL,
		days_equivalent TEXT NOT NULL,
		payment_date TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	-- CRITICAL: exactly one bonus payment per employee per accrual year.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bonus_payments_employee_year
		ON bonus_payments(employee_id, year);

	CREATE TABLE IF NOT EXISTS payroll_receipts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		period_type TEXT NOT NULL,
		base_salary TEXT NOT NULL,
		social_security_withheld TEXT NOT NULL,
		income_tax_withheld TEXT NOT NULL,
		other_deductions TEXT NOT NULL,
		net_total TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payroll_receipts_employee
		ON payroll_receipts(employee_id, period_start);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE DIRECTORY (employee.Directory)
// =============================================================================

const employeeColumns = `id, name, hire_date, monthly_salary, salary_basis,
	contract_type, contract_duration_months, status, vacation_days_taken, bonus_paid`

func (s *Store) Get(ctx context.Context, id string) (*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, &labor.NotFoundError{Kind: "employee", ID: id}
	}
	return e, err
}

func (s *Store) List(ctx context.Context) ([]*employee.Employee, error) {
	return s.listEmployees(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
}

func (s *Store) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	return s.listEmployees(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE status = ? ORDER BY id`,
		string(employee.StatusActive))
}

func (s *Store) listEmployees(ctx context.Context, query string, args ...any) ([]*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &labor.PersistenceError{Op: "list employees", Err: err}
	}
	defer rows.Close()

	var out []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, e *employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees
		(id, name, hire_date, monthly_salary, salary_basis, contract_type,
		 contract_duration_months, status, vacation_days_taken, bonus_paid, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.HireDate.String(), e.MonthlySalary.String(),
		string(e.SalaryBasis), string(e.ContractType), e.ContractDurationMonths,
		string(e.Status), e.VacationDaysTaken.String(), boolToInt(e.BonusPaid),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return &labor.PersistenceError{Op: "create employee", Err: err}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*employee.Employee, error) {
	var (
		e         employee.Employee
		hireDate  string
		salary    string
		basis     string
		contract  string
		status    string
		taken     string
		bonusPaid int
	)
	err := row.Scan(&e.ID, &e.Name, &hireDate, &salary, &basis, &contract,
		&e.ContractDurationMonths, &status, &taken, &bonusPaid)
	if err != nil {
		return nil, err
	}
	if e.HireDate, err = labor.ParseDate(hireDate); err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	e.MonthlySalary = labor.MustDecimal(salary)
	e.SalaryBasis = employee.SalaryBasis(basis)
	e.ContractType = employee.ContractType(contract)
	e.Status = employee.Status(status)
	e.VacationDaysTaken = labor.MustDecimal(taken)
	e.BonusPaid = bonusPaid != 0
	return &e, nil
}

// =============================================================================
// VACATION RECORDS (vacation.Store) - atomic record + counter
// =============================================================================

func (s *Store) CreateVacation(ctx context.Context, rec *vacation.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inTx(ctx, "create vacation", func(tx *sql.Tx) error {
		if err := s.bumpBalance(ctx, tx, rec.EmployeeID, rec.Days); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vacation_records
			(id, employee_id, start_date, end_date, days, accrual_year, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.EmployeeID, rec.StartDate.String(), rec.EndDate.String(),
			rec.Days.String(), rec.AccrualYear, nullString(rec.Notes),
			rec.CreatedAt.Format(time.RFC3339))
		return err
	})
}

func (s *Store) DeleteVacation(ctx context.Context, id string) (*vacation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec *vacation.Record
	err := s.inTx(ctx, "delete vacation", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT id, employee_id, start_date, end_date, days, accrual_year, notes
			FROM vacation_records WHERE id = ?`, id)

		var err error
		if rec, err = scanVacation(row); err != nil {
			if err == sql.ErrNoRows {
				return &labor.NotFoundError{Kind: "vacation", ID: id}
			}
			return err
		}
		if err := s.bumpBalance(ctx, tx, rec.EmployeeID, rec.Days.Neg()); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM vacation_records WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) ListVacations(ctx context.Context, employeeID string) ([]*vacation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, start_date, end_date, days, accrual_year, notes
		FROM vacation_records WHERE employee_id = ?
		ORDER BY start_date ASC, created_at ASC`, employeeID)
	if err != nil {
		return nil, &labor.PersistenceError{Op: "list vacations", Err: err}
	}
	defer rows.Close()

	var out []*vacation.Record
	for rows.Next() {
		rec, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanVacation(row rowScanner) (*vacation.Record, error) {
	var (
		rec        vacation.Record
		start, end string
		days       string
		notes      sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.EmployeeID, &start, &end, &days, &rec.AccrualYear, &notes)
	if err != nil {
		return nil, err
	}
	if rec.StartDate, err = labor.ParseDate(start); err != nil {
		return nil, fmt.Errorf("failed to scan vacation record: %w", err)
	}
	if rec.EndDate, err = labor.ParseDate(end); err != nil {
		return nil, fmt.Errorf("failed to scan vacation record: %w", err)
	}
	rec.Days = labor.MustDecimal(days)
	rec.Notes = notes.String
	return &rec, nil
}

// =============================================================================
// ABSENCE RECORDS (vacation.Store) - conditional counter move
// =============================================================================

func (s *Store) CreateAbsence(ctx context.Context, rec *vacation.AbsenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inTx(ctx, "create absence", func(tx *sql.Tx) error {
		if rec.Target == vacation.DeductVacation {
			if err := s.bumpBalance(ctx, tx, rec.EmployeeID, rec.Days); err != nil {
				return err
			}
		} else if err := s.requireEmployee(ctx, tx, rec.EmployeeID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO absence_records
			(id, employee_id, start_date, end_date, days, deduction_target, reason, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.EmployeeID, rec.StartDate.String(), rec.EndDate.String(),
			rec.Days.String(), string(rec.Target), nullString(rec.Reason),
			nullString(rec.Notes), rec.CreatedAt.Format(time.RFC3339))
		return err
	})
}

func (s *Store) DeleteAbsence(ctx context.Context, id string) (*vacation.AbsenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec *vacation.AbsenceRecord
	err := s.inTx(ctx, "delete absence", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT id, employee_id, start_date, end_date, days, deduction_target, reason, notes
			FROM absence_records WHERE id = ?`, id)

		var err error
		if rec, err = scanAbsence(row); err != nil {
			if err == sql.ErrNoRows {
				return &labor.NotFoundError{Kind: "absence", ID: id}
			}
			return err
		}
		// Reverse the balance increment only for vacation-target absences.
		if rec.Target == vacation.DeductVacation {
			if err := s.bumpBalance(ctx, tx, rec.EmployeeID, rec.Days.Neg()); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM absence_records WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) ListAbsences(ctx context.Context, employeeID string) ([]*vacation.AbsenceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, start_date, end_date, days, deduction_target, reason, notes
		FROM absence_records WHERE employee_id = ?
		ORDER BY start_date ASC, created_at ASC`, employeeID)
	if err != nil {
		return nil, &labor.PersistenceError{Op: "list absences", Err: err}
	}
	defer rows.Close()

	var out []*vacation.AbsenceRecord
	for rows.Next() {
		rec, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanAbsence(row rowScanner) (*vacation.AbsenceRecord, error) {
	var (
		rec           vacation.AbsenceRecord
		start, end    string
		days, target  string
		reason, notes sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.EmployeeID, &start, &end, &days, &target, &reason, &notes)
	if err != nil {
		return nil, err
	}
	if rec.StartDate, err = labor.ParseDate(start); err != nil {
		return nil, fmt.Errorf("failed to scan absence record: %w", err)
	}
	if rec.EndDate, err = labor.ParseDate(end); err != nil {
		return nil, fmt.Errorf("failed to scan absence record: %w", err)
	}
	rec.Days = labor.MustDecimal(days)
	rec.Target = vacation.DeductionTarget(target)
	rec.Reason = reason.String
	rec.Notes = notes.String
	return &rec, nil
}

// =============================================================================
// BONUS PAYMENTS (bonus.Store)
// =============================================================================

func (s *Store) CreatePayment(ctx context.Context, p *bonus.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bonus_payments
		(id, employee_id, year, amount, days_equivalent, payment_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.EmployeeID, p.Year, p.Amount.String(), p.DaysEquivalent.String(),
		p.PaymentDate.String(), nullString(p.Notes), p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueConstraintError(err) {
			return labor.ErrAlreadyPaid
		}
		return &labor.PersistenceError{Op: "create bonus payment", Err: err}
	}
	return nil
}

func (s *Store) GetPayment(ctx context.Context, employeeID string, year int) (*bonus.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_id, year, amount, days_equivalent, payment_date, notes
		FROM bonus_payments WHERE employee_id = ? AND year = ?`, employeeID, year)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, &labor.NotFoundError{Kind: "bonus_payment", ID: fmt.Sprintf("%s/%d", employeeID, year)}
	}
	return p, err
}

func (s *Store) ListPayments(ctx context.Context, employeeID string) ([]*bonus.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, year, amount, days_equivalent, payment_date, notes
		FROM bonus_payments WHERE employee_id = ? ORDER BY year ASC`, employeeID)
	if err != nil {
		return nil, &labor.PersistenceError{Op: "list bonus payments", Err: err}
	}
	defer rows.Close()

	var out []*bonus.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row rowScanner) (*bonus.Payment, error) {
	var (
		p           bonus.Payment
		amount      string
		daysEq      string
		paymentDate string
		notes       sql.NullString
	)
	err := row.Scan(&p.ID, &p.EmployeeID, &p.Year, &amount, &daysEq, &paymentDate, &notes)
	if err != nil {
		return nil, err
	}
	p.Amount = labor.MustDecimal(amount)
	p.DaysEquivalent = labor.MustDecimal(daysEq)
	if p.PaymentDate, err = labor.ParseDate(paymentDate); err != nil {
		return nil, fmt.Errorf("failed to scan bonus payment: %w", err)
	}
	p.Notes = notes.String
	return &p, nil
}

// =============================================================================
// PAYROLL RECEIPTS (payroll.ReceiptStore) - insert and list only
// =============================================================================

func (s *Store) CreateReceipt(ctx context.Context, r *payroll.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payroll_receipts
		(id, employee_id, period_start, period_end, period_type, base_salary,
		 social_security_withheld, income_tax_withheld, other_deductions,
		 net_total, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.EmployeeID, r.PeriodStart.String(), r.PeriodEnd.String(),
		string(r.PeriodType), r.BaseSalary.String(),
		r.SocialSecurityWithheld.String(), r.IncomeTaxWithheld.String(),
		r.OtherDeductions.String(), r.NetTotal.String(), r.Status,
		nullString(r.Notes), r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return &labor.PersistenceError{Op: "create receipt", Err: err}
	}
	return nil
}

func (s *Store) ListReceipts(ctx context.Context, employeeID string) ([]*payroll.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, period_start, period_end, period_type, base_salary,
		       social_security_withheld, income_tax_withheld, other_deductions,
		       net_total, status, notes
		FROM payroll_receipts WHERE employee_id = ?
		ORDER BY period_start ASC, created_at ASC`, employeeID)
	if err != nil {
		return nil, &labor.PersistenceError{Op: "list receipts", Err: err}
	}
	defer rows.Close()

	var out []*payroll.Receipt
	for rows.Next() {
		var (
			r             payroll.Receipt
			start, end    string
			periodType    string
			base, ss, tax string
			other, net    string
			notes         sql.NullString
		)
		err := rows.Scan(&r.ID, &r.EmployeeID, &start, &end, &periodType,
			&base, &ss, &tax, &other, &net, &r.Status, &notes)
		if err != nil {
			return nil, err
		}
		if r.PeriodStart, err = labor.ParseDate(start); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		if r.PeriodEnd, err = labor.ParseDate(end); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		r.PeriodType = payroll.PeriodType(periodType)
		r.BaseSalary = labor.MustDecimal(base)
		r.SocialSecurityWithheld = labor.MustDecimal(ss)
		r.IncomeTaxWithheld = labor.MustDecimal(tax)
		r.OtherDeductions = labor.MustDecimal(other)
		r.NetTotal = labor.MustDecimal(net)
		r.Notes = notes.String
		out = append(out, &r)
	}
	return out, rows.Err()
}

// =============================================================================
// TRANSACTION HELPERS
// =============================================================================

func (s *Store) inTx(ctx context.Context, op string, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &labor.PersistenceError{Op: op, Err: err}
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		if labor.IsNotFound(err) || labor.IsClientError(err) {
			return err
		}
		return &labor.PersistenceError{Op: op, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &labor.PersistenceError{Op: op, Err: err}
	}
	return nil
}

// bumpBalance moves the vacation counter inside the caller's transaction.
// Decimal arithmetic happens in Go: read, add, write back as text.
func (s *Store) bumpBalance(ctx context.Context, tx *sql.Tx, employeeID string, delta decimal.Decimal) error {
	var taken string
	err := tx.QueryRowContext(ctx,
		`SELECT vacation_days_taken FROM employees WHERE id = ?`, employeeID).Scan(&taken)
	if err == sql.ErrNoRows {
		return &labor.NotFoundError{Kind: "employee", ID: employeeID}
	}
	if err != nil {
		return err
	}

	updated := labor.MustDecimal(taken).Add(delta)
	_, err = tx.ExecContext(ctx,
		`UPDATE employees SET vacation_days_taken = ? WHERE id = ?`,
		updated.String(), employeeID)
	return err
}

func (s *Store) requireEmployee(ctx context.Context, tx *sql.Tx, employeeID string) error {
	var one int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM employees WHERE id = ?`, employeeID).Scan(&one)
	if err == sql.ErrNoRows {
		return &labor.NotFoundError{Kind: "employee", ID: employeeID}
	}
	return err
}

// =============================================================================
// UTILITY
// =============================================================================

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key"))
}

/*
handlers.go - HTTP API handlers for the labor-law computation engine

PURPOSE:
  Exposes the calculators and the vacation/absence ledger via REST. Handles
  HTTP request/response and JSON mapping, delegates every decision to the
  domain packages.

ENDPOINTS:
  Employees:
    GET    /api/employees                     List employees
    POST   /api/employees                     Create employee
    GET    /api/employees/{id}                Employee snapshot
    GET    /api/employees/{id}/vacation       Accrual summary

  Vacation / absence ledger:
    GET    /api/employees/{id}/vacations      Vacation records
    POST   /api/employees/{id}/vacations      Register vacation
    DELETE /api/vacations/{id}                Delete + restore balance
    GET    /api/employees/{id}/absences       Absence records
    POST   /api/employees/{id}/absences       Register absence
    DELETE /api/absences/{id}                 Delete + conditional restore

  Bonus:
    GET    /api/employees/{id}/bonus          Aguinaldo proration
    POST   /api/employees/{id}/bonus/pay      Mark paid (409 on duplicate)

  Settlement:
    POST   /api/employees/{id}/settlement     Compute liquidación (no write)

  Payroll:
    POST   /api/payroll/generate              Batch receipt generation
    GET    /api/employees/{id}/receipts       Receipt history

  Rules:
    GET    /api/rules                         Effective statutory config

ERROR HANDLING:
  labor.IsClientError -> 400 (409 for duplicate bonus payment)
  labor.IsNotFound    -> 404
  anything else       -> 500
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/bonus"
	"github.com/alltechcamoapa/Softsupport-sub000/employee"
	"github.com/alltechcamoapa/Softsupport-sub000/factory"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/payroll"
	"github.com/alltechcamoapa/Softsupport-sub000/settlement"
	"github.com/alltechcamoapa/Softsupport-sub000/vacation"
	"github.com/alltechcamoapa/Softsupport-sub000/withholding"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Directory   employee.Directory
	Ledger      *vacation.Ledger
	Bonus       *bonus.Service
	Withholding *withholding.Calculator
	Settlement  *settlement.Calculator
	Generator   *payroll.Generator
	Receipts    payroll.ReceiptStore
	Rules       factory.Rules

	// now is injectable for tests; defaults to labor.Today.
	now func() labor.Date
}

// Stores is the persistence surface the handler needs. The sqlite and memory
// stores implement all of it.
type Stores interface {
	employee.Directory
	vacation.Store
	bonus.Store
	payroll.ReceiptStore
}

// NewHandler wires the engine against one combined store and a rule set.
func NewHandler(stores Stores, rules factory.Rules) *Handler {
	calc := withholding.NewCalculator(rules.Withholding)
	return &Handler{
		Directory:   stores,
		Ledger:      vacation.NewLedger(stores),
		Bonus:       bonus.NewService(stores),
		Withholding: calc,
		Settlement:  settlement.NewCalculator(rules.Settlement),
		Generator:   payroll.NewGenerator(calc, stores),
		Receipts:    stores,
		Rules:       rules,
		now:         labor.Today,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.List(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = employeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, employeeDTO(e))
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	hireDate, err := labor.ParseDate(req.HireDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hire_date", err)
		return
	}
	salary, err := decimal.NewFromString(req.MonthlySalary)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid monthly_salary", err)
		return
	}

	e := &employee.Employee{
		ID:                     req.ID,
		Name:                   req.Name,
		HireDate:               hireDate,
		MonthlySalary:          salary,
		SalaryBasis:            employee.SalaryBasis(orDefault(req.SalaryBasis, string(employee.BasisMonthly))),
		ContractType:           employee.ContractType(orDefault(req.ContractType, string(employee.ContractIndefinite))),
		ContractDurationMonths: req.ContractMonths,
		Status:                 employee.StatusActive,
		VacationDaysTaken:      decimal.Zero,
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if err := e.Validate(h.now()); err != nil {
		writeDomainError(w, "Invalid employee", err)
		return
	}
	if err := h.Directory.Create(r.Context(), e); err != nil {
		writeDomainError(w, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, employeeDTO(e))
}

// =============================================================================
// VACATION HANDLERS
// =============================================================================

// GetVacationSummary returns the accrual state as of "now" (or ?as_of=).
func (h *Handler) GetVacationSummary(w http.ResponseWriter, r *http.Request) {
	e, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	asOf := h.now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		if asOf, err = labor.ParseDate(raw); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
			return
		}
	}

	summary, err := vacation.Accrue(e, asOf)
	if err != nil {
		writeDomainError(w, "Failed to compute accrual", err)
		return
	}
	writeJSON(w, http.StatusOK, VacationSummaryDTO{
		AsOf:            summary.AsOf.String(),
		SeniorityYears:  summary.SeniorityYears.StringFixed(2),
		AccruedDays:     summary.AccruedDays.StringFixed(2),
		TakenDays:       summary.TakenDays.String(),
		AvailableDays:   summary.AvailableDays.StringFixed(2),
		NextAnniversary: summary.NextAnniversary.String(),
	})
}

func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	records, err := h.Ledger.Vacations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to list vacations", err)
		return
	}
	dtos := make([]VacationRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = vacationDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) RegisterVacation(w http.ResponseWriter, r *http.Request) {
	var req RegisterVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	rec, err := h.Ledger.RegisterVacation(r.Context(), chi.URLParam(r, "id"),
		start, end, req.AccrualYear, req.Notes)
	if err != nil {
		writeDomainError(w, "Failed to register vacation", err)
		return
	}
	writeJSON(w, http.StatusCreated, vacationDTO(rec))
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Ledger.DeleteVacation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to delete vacation", err)
		return
	}
	writeJSON(w, http.StatusOK, vacationDTO(rec))
}

// =============================================================================
// ABSENCE HANDLERS
// =============================================================================

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	records, err := h.Ledger.Absences(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to list absences", err)
		return
	}
	dtos := make([]AbsenceRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = absenceDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) RegisterAbsence(w http.ResponseWriter, r *http.Request) {
	var req RegisterAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	rec, err := h.Ledger.RegisterAbsence(r.Context(), chi.URLParam(r, "id"),
		start, end, vacation.DeductionTarget(req.DeductionTarget), req.Reason, req.Notes)
	if err != nil {
		writeDomainError(w, "Failed to register absence", err)
		return
	}
	writeJSON(w, http.StatusCreated, absenceDTO(rec))
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Ledger.DeleteAbsence(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to delete absence", err)
		return
	}
	writeJSON(w, http.StatusOK, absenceDTO(rec))
}

// =============================================================================
// BONUS HANDLERS
// =============================================================================

func (h *Handler) GetBonus(w http.ResponseWriter, r *http.Request) {
	e, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	p, err := h.Bonus.Prorate(r.Context(), e, h.now())
	if err != nil {
		writeDomainError(w, "Failed to compute bonus", err)
		return
	}
	writeJSON(w, http.StatusOK, bonusDTO(p))
}

func (h *Handler) MarkBonusPaid(w http.ResponseWriter, r *http.Request) {
	var req MarkBonusPaidRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	e, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	payment, err := h.Bonus.MarkPaid(r.Context(), e, h.now(), req.Notes)
	if err != nil {
		if errors.Is(err, labor.ErrAlreadyPaid) {
			writeError(w, http.StatusConflict, "Bonus already paid for this year", err)
			return
		}
		writeDomainError(w, "Failed to mark bonus paid", err)
		return
	}
	writeJSON(w, http.StatusCreated, BonusPaymentDTO{
		ID:             payment.ID,
		EmployeeID:     payment.EmployeeID,
		Year:           payment.Year,
		Amount:         payment.Amount.StringFixed(2),
		DaysEquivalent: payment.DaysEquivalent.StringFixed(2),
		PaymentDate:    payment.PaymentDate.String(),
		Notes:          payment.Notes,
	})
}

// =============================================================================
// SETTLEMENT HANDLER
// =============================================================================

func (h *Handler) ComputeSettlement(w http.ResponseWriter, r *http.Request) {
	var req SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	termination := h.now()
	if req.TerminationDate != "" {
		var err error
		if termination, err = labor.ParseDate(req.TerminationDate); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid termination_date", err)
			return
		}
	}

	e, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	result, err := h.Settlement.Compute(e, termination, settlement.Reason(req.Reason))
	if err != nil {
		writeDomainError(w, "Failed to compute settlement", err)
		return
	}
	writeJSON(w, http.StatusOK, SettlementDTO{
		TerminationDate:    result.TerminationDate.String(),
		Reason:             string(result.Reason),
		SeniorityYears:     result.SeniorityYears.StringFixed(2),
		VacationDays:       result.VacationDays.StringFixed(2),
		VacationPayout:     result.VacationPayout.StringFixed(2),
		BonusMonths:        result.BonusMonths,
		BonusPayout:        result.BonusPayout.StringFixed(2),
		SeveranceMonths:    result.SeveranceMonths.StringFixed(2),
		SeveranceIndemnity: result.SeveranceIndemnity.StringFixed(2),
		Total:              result.Total.StringFixed(2),
	})
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

func (h *Handler) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "month must be 1-12", nil)
		return
	}

	period, err := payroll.NewPeriod(req.Year, time.Month(req.Month),
		payroll.PeriodType(req.PeriodType), payroll.Half(req.Half))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period", err)
		return
	}

	var employees []*employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			e, err := h.Directory.Get(r.Context(), id)
			if err != nil {
				writeDomainError(w, "Failed to get employee", err)
				return
			}
			employees = append(employees, e)
		}
	} else if employees, err = h.Directory.ListActive(r.Context()); err != nil {
		writeDomainError(w, "Failed to list employees", err)
		return
	}

	result := h.Generator.Generate(r.Context(), employees, period)

	dto := PayrollResultDTO{
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Outcomes:  make([]PayrollOutcomeDTO, len(result.Outcomes)),
	}
	for i, o := range result.Outcomes {
		out := PayrollOutcomeDTO{EmployeeID: o.EmployeeID}
		if o.Err != nil {
			out.Error = o.Err.Error()
		} else {
			receipt := receiptDTO(o.Receipt)
			out.Receipt = &receipt
		}
		dto.Outcomes[i] = out
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.Receipts.ListReceipts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to list receipts", err)
		return
	}
	dtos := make([]ReceiptDTO, len(receipts))
	for i, rec := range receipts {
		dtos[i] = receiptDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// RULES HANDLER
// =============================================================================

func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	dto := RulesDTO{
		EmployeeRate: h.Rules.Withholding.EmployeeRate.String(),
		EmployerRate: h.Rules.Withholding.EmployerRate.String(),
	}
	for _, b := range h.Rules.Withholding.Brackets {
		bd := BracketDTO{Floor: b.Floor.String(), Rate: b.Rate.String()}
		if !b.Open {
			bd.Ceiling = b.Ceiling.String()
		}
		dto.Brackets = append(dto.Brackets, bd)
	}
	for reason := range h.Rules.Settlement.EligibleReasons {
		dto.EligibleReasons = append(dto.EligibleReasons, string(reason))
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// MAPPING HELPERS
// =============================================================================

func employeeDTO(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                e.ID,
		Name:              e.Name,
		HireDate:          e.HireDate.String(),
		MonthlySalary:     e.MonthlySalary.String(),
		SalaryBasis:       string(e.SalaryBasis),
		ContractType:      string(e.ContractType),
		ContractMonths:    e.ContractDurationMonths,
		Status:            string(e.Status),
		VacationDaysTaken: e.VacationDaysTaken.String(),
	}
}

func vacationDTO(rec *vacation.Record) VacationRecordDTO {
	return VacationRecordDTO{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		StartDate:   rec.StartDate.String(),
		EndDate:     rec.EndDate.String(),
		Days:        rec.Days.String(),
		AccrualYear: rec.AccrualYear,
		Notes:       rec.Notes,
	}
}

func absenceDTO(rec *vacation.AbsenceRecord) AbsenceRecordDTO {
	return AbsenceRecordDTO{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		StartDate:       rec.StartDate.String(),
		EndDate:         rec.EndDate.String(),
		Days:            rec.Days.String(),
		DeductionTarget: string(rec.Target),
		Reason:          rec.Reason,
		Notes:           rec.Notes,
	}
}

func bonusDTO(p *bonus.Proration) BonusDTO {
	return BonusDTO{
		AsOf:           p.AsOf.String(),
		CycleStart:     p.CycleStart.String(),
		MonthsWorked:   p.MonthsWorked,
		Amount:         p.Amount.StringFixed(2),
		DaysEquivalent: p.DaysEquivalent.StringFixed(2),
		Paid:           p.Paid,
	}
}

func receiptDTO(r *payroll.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:                     r.ID,
		EmployeeID:             r.EmployeeID,
		PeriodStart:            r.PeriodStart.String(),
		PeriodEnd:              r.PeriodEnd.String(),
		PeriodType:             string(r.PeriodType),
		BaseSalary:             r.BaseSalary.StringFixed(2),
		SocialSecurityWithheld: r.SocialSecurityWithheld.StringFixed(2),
		IncomeTaxWithheld:      r.IncomeTaxWithheld.StringFixed(2),
		OtherDeductions:        r.OtherDeductions.StringFixed(2),
		NetTotal:               r.NetTotal.StringFixed(2),
		Status:                 r.Status,
	}
}

func parseRange(start, end string) (labor.Date, labor.Date, error) {
	s, err := labor.ParseDate(start)
	if err != nil {
		return labor.Date{}, labor.Date{}, err
	}
	e, err := labor.ParseDate(end)
	if err != nil {
		return labor.Date{}, labor.Date{}, err
	}
	return s, e, nil
}

func newID() string {
	return uuid.NewString()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case labor.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case labor.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

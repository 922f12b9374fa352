/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the engine's domain
  types from the external contract. Money and day amounts serialize as
  decimal strings, never floats.

NAMING CONVENTION:
  - *DTO: response types returned to clients
  - *Request: request body types from clients

VALIDATION:
  Handlers validate; DTOs are pure data carriers.
*/
package api

// =============================================================================
// ERROR RESPONSE
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// EMPLOYEES
// =============================================================================

type EmployeeDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	HireDate          string `json:"hire_date"`
	MonthlySalary     string `json:"monthly_salary"`
	SalaryBasis       string `json:"salary_basis"`
	ContractType      string `json:"contract_type"`
	ContractMonths    int    `json:"contract_duration_months,omitempty"`
	Status            string `json:"status"`
	VacationDaysTaken string `json:"vacation_days_taken"`
}

type CreateEmployeeRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	HireDate       string `json:"hire_date"`
	MonthlySalary  string `json:"monthly_salary"`
	SalaryBasis    string `json:"salary_basis,omitempty"`
	ContractType   string `json:"contract_type,omitempty"`
	ContractMonths int    `json:"contract_duration_months,omitempty"`
}

// =============================================================================
// VACATION / ABSENCE
// =============================================================================

type VacationSummaryDTO struct {
	AsOf            string `json:"as_of"`
	SeniorityYears  string `json:"seniority_years"`
	AccruedDays     string `json:"accrued_days"`
	TakenDays       string `json:"taken_days"`
	AvailableDays   string `json:"available_days"`
	NextAnniversary string `json:"next_anniversary"`
}

type RegisterVacationRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	AccrualYear int    `json:"accrual_year,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type VacationRecordDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Days        string `json:"days"`
	AccrualYear int    `json:"accrual_year"`
	Notes       string `json:"notes,omitempty"`
}

type RegisterAbsenceRequest struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	DeductionTarget string `json:"deduction_target"`
	Reason          string `json:"reason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type AbsenceRecordDTO struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Days            string `json:"days"`
	DeductionTarget string `json:"deduction_target"`
	Reason          string `json:"reason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// =============================================================================
// BONUS
// =============================================================================

type BonusDTO struct {
	AsOf           string `json:"as_of"`
	CycleStart     string `json:"cycle_start"`
	MonthsWorked   int    `json:"months_worked"`
	Amount         string `json:"amount"`
	DaysEquivalent string `json:"days_equivalent"`
	Paid           bool   `json:"paid"`
}

type MarkBonusPaidRequest struct {
	Notes string `json:"notes,omitempty"`
}

type BonusPaymentDTO struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Year           int    `json:"year"`
	Amount         string `json:"amount"`
	DaysEquivalent string `json:"days_equivalent"`
	PaymentDate    string `json:"payment_date"`
	Notes          string `json:"notes,omitempty"`
}

// =============================================================================
// SETTLEMENT
// =============================================================================

type SettlementRequest struct {
	TerminationDate string `json:"termination_date"`
	Reason          string `json:"reason"`
}

type SettlementDTO struct {
	TerminationDate    string `json:"termination_date"`
	Reason             string `json:"reason"`
	SeniorityYears     string `json:"seniority_years"`
	VacationDays       string `json:"vacation_days"`
	VacationPayout     string `json:"vacation_payout"`
	BonusMonths        int    `json:"bonus_months"`
	BonusPayout        string `json:"bonus_payout"`
	SeveranceMonths    string `json:"severance_months"`
	SeveranceIndemnity string `json:"severance_indemnity"`
	Total              string `json:"total"`
}

// =============================================================================
// PAYROLL
// =============================================================================

type GeneratePayrollRequest struct {
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	PeriodType  string   `json:"period_type"`
	Half        string   `json:"half,omitempty"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active
}

type PayrollOutcomeDTO struct {
	EmployeeID string      `json:"employee_id"`
	Receipt    *ReceiptDTO `json:"receipt,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type PayrollResultDTO struct {
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Outcomes  []PayrollOutcomeDTO `json:"outcomes"`
}

type ReceiptDTO struct {
	ID                     string `json:"id"`
	EmployeeID             string `json:"employee_id"`
	PeriodStart            string `json:"period_start"`
	PeriodEnd              string `json:"period_end"`
	PeriodType             string `json:"period_type"`
	BaseSalary             string `json:"base_salary"`
	SocialSecurityWithheld string `json:"social_security_withheld"`
	IncomeTaxWithheld      string `json:"income_tax_withheld"`
	OtherDeductions        string `json:"other_deductions"`
	NetTotal               string `json:"net_total"`
	Status                 string `json:"status"`
}

// =============================================================================
// RULES
// =============================================================================

type RulesDTO struct {
	EmployeeRate    string       `json:"employee_social_security_rate"`
	EmployerRate    string       `json:"employer_social_security_rate"`
	Brackets        []BracketDTO `json:"income_tax_brackets"`
	EligibleReasons []string     `json:"severance_eligible_reasons"`
}

type BracketDTO struct {
	Floor   string `json:"floor"`
	Ceiling string `json:"ceiling,omitempty"`
	Rate    string `json:"rate"`
}

package models

import "github.com/shopspring/decimal"

// PayrollPeriod is one coerced payroll statement row. All ten monetary fields
// are always present after coercion, defaulting to zero when the source lacks
// the column. Net is carried exactly as stated by the employer and is never
// re-derived from the deduction fields.
type PayrollPeriod struct {
	PeriodEnd       Date            `csv:"period_end"`
	Gross           decimal.Decimal `csv:"gross"`
	PAYE            decimal.Decimal `csv:"paye"`
	EmployeeNI      decimal.Decimal `csv:"ee_ni"`
	EmployerNI      decimal.Decimal `csv:"er_ni"`
	PensionEmployee decimal.Decimal `csv:"pension_ee"`
	PensionEmployer decimal.Decimal `csv:"pension_er"`
	HolidayPay      decimal.Decimal `csv:"holiday_pay"`
	OtherDeductions decimal.Decimal `csv:"other_deductions"`
	StudentLoan     decimal.Decimal `csv:"student_loan"`
	Net             decimal.Decimal `csv:"net"`
}

// PayrollMonth holds the per-calendar-month sums of every payroll field.
type PayrollMonth struct {
	Month           string          `csv:"month"`
	Gross           decimal.Decimal `csv:"gross"`
	PAYE            decimal.Decimal `csv:"paye"`
	EmployeeNI      decimal.Decimal `csv:"ee_ni"`
	EmployerNI      decimal.Decimal `csv:"er_ni"`
	PensionEmployee decimal.Decimal `csv:"pension_ee"`
	PensionEmployer decimal.Decimal `csv:"pension_er"`
	HolidayPay      decimal.Decimal `csv:"holiday_pay"`
	OtherDeductions decimal.Decimal `csv:"other_deductions"`
	StudentLoan     decimal.Decimal `csv:"student_loan"`
	Net             decimal.Decimal `csv:"net"`
}

// PayrollTotals is a single aggregate record, used for the trailing
// twelve-month disclosure window.
type PayrollTotals struct {
	Gross           decimal.Decimal `csv:"gross"`
	PAYE            decimal.Decimal `csv:"paye"`
	EmployeeNI      decimal.Decimal `csv:"ee_ni"`
	EmployerNI      decimal.Decimal `csv:"er_ni"`
	PensionEmployee decimal.Decimal `csv:"pension_ee"`
	PensionEmployer decimal.Decimal `csv:"pension_er"`
	HolidayPay      decimal.Decimal `csv:"holiday_pay"`
	OtherDeductions decimal.Decimal `csv:"other_deductions"`
	StudentLoan     decimal.Decimal `csv:"student_loan"`
	Net             decimal.Decimal `csv:"net"`
}

// StepKind distinguishes running waterfall steps from checkpoint totals.
type StepKind string

const (
	// StepRelative is a signed step applied to the running total.
	StepRelative StepKind = "relative"
	// StepTotal is a checkpoint value, not derived from the preceding steps.
	StepTotal StepKind = "total"
)

// WaterfallStep is one labeled, signed step of a deduction waterfall.
type WaterfallStep struct {
	Label string          `csv:"label"`
	Value decimal.Decimal `csv:"value"`
	Kind  StepKind        `csv:"measure"`
}

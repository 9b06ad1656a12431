// Package payroll coerces raw payroll statement tables into the fixed
// eleven-field shape and computes the monthly, trailing-twelve-month and
// waterfall aggregations used for disclosure reporting.
package payroll

import (
	"sort"

	"finprep/disclosure-csv/internal/dateutils"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/models"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Column names of the coerced payroll shape, besides period_end.
var numericColumns = []string{
	"gross", "paye", "ee_ni", "er_ni", "pension_ee", "pension_er",
	"holiday_pay", "other_deductions", "student_loan", "net",
}

// Coerce fills the fixed payroll shape from a raw table. Missing columns
// default to zero and never raise; non-numeric cells coerce to zero; rows
// whose period_end does not parse are dropped. Output is sorted ascending by
// period_end.
func Coerce(t *frame.Table) ([]models.PayrollPeriod, frame.CoercionStats) {
	var stats frame.CoercionStats

	periods := make([]models.PayrollPeriod, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		end, err := dateutils.ParseDate(t.Cell(i, "period_end"))
		if err != nil {
			stats.DroppedRows++
			continue
		}

		p := models.PayrollPeriod{PeriodEnd: models.NewDate(end)}
		fields := fieldPointers(&p)
		for _, column := range numericColumns {
			value, ok := frame.Numeric(t.Cell(i, column))
			if !ok {
				stats.DefaultedCells++
			}
			*fields[column] = value
		}
		periods = append(periods, p)
	}

	sort.SliceStable(periods, func(a, b int) bool {
		return periods[a].PeriodEnd.Before(periods[b].PeriodEnd.Time)
	})

	if !stats.Clean() {
		log.Warn("Payroll coercion applied defaults",
			logging.Field{Key: "defaulted_cells", Value: stats.DefaultedCells},
			logging.Field{Key: "dropped_rows", Value: stats.DroppedRows})
	}
	return periods, stats
}

// Monthly groups periods by the calendar month of period_end and sums every
// numeric field per group. One row per month present in the data, ascending,
// with no gap-filling for empty months.
func Monthly(periods []models.PayrollPeriod) []models.PayrollMonth {
	groups := make(map[string]*models.PayrollMonth)
	order := make([]string, 0)

	for _, p := range periods {
		key := p.PeriodEnd.MonthKey()
		month, ok := groups[key]
		if !ok {
			month = &models.PayrollMonth{Month: key}
			groups[key] = month
			order = append(order, key)
		}
		month.Gross = month.Gross.Add(p.Gross)
		month.PAYE = month.PAYE.Add(p.PAYE)
		month.EmployeeNI = month.EmployeeNI.Add(p.EmployeeNI)
		month.EmployerNI = month.EmployerNI.Add(p.EmployerNI)
		month.PensionEmployee = month.PensionEmployee.Add(p.PensionEmployee)
		month.PensionEmployer = month.PensionEmployer.Add(p.PensionEmployer)
		month.HolidayPay = month.HolidayPay.Add(p.HolidayPay)
		month.OtherDeductions = month.OtherDeductions.Add(p.OtherDeductions)
		month.StudentLoan = month.StudentLoan.Add(p.StudentLoan)
		month.Net = month.Net.Add(p.Net)
	}

	sort.Strings(order)
	months := make([]models.PayrollMonth, 0, len(order))
	for _, key := range order {
		months = append(months, *groups[key])
	}
	return months
}

// Rolling12M sums every field over periods ending strictly after the latest
// period_end minus one year. Each total is rounded to 2 decimal places. Empty
// input returns an all-zero record rather than an error.
func Rolling12M(periods []models.PayrollPeriod) models.PayrollTotals {
	var totals models.PayrollTotals
	if len(periods) == 0 {
		return totals
	}

	latest := periods[0].PeriodEnd.Time
	for _, p := range periods[1:] {
		if p.PeriodEnd.After(latest) {
			latest = p.PeriodEnd.Time
		}
	}
	windowStart := latest.AddDate(-1, 0, 0)

	for _, p := range periods {
		if !p.PeriodEnd.After(windowStart) {
			continue
		}
		totals.Gross = totals.Gross.Add(p.Gross)
		totals.PAYE = totals.PAYE.Add(p.PAYE)
		totals.EmployeeNI = totals.EmployeeNI.Add(p.EmployeeNI)
		totals.EmployerNI = totals.EmployerNI.Add(p.EmployerNI)
		totals.PensionEmployee = totals.PensionEmployee.Add(p.PensionEmployee)
		totals.PensionEmployer = totals.PensionEmployer.Add(p.PensionEmployer)
		totals.HolidayPay = totals.HolidayPay.Add(p.HolidayPay)
		totals.OtherDeductions = totals.OtherDeductions.Add(p.OtherDeductions)
		totals.StudentLoan = totals.StudentLoan.Add(p.StudentLoan)
		totals.Net = totals.Net.Add(p.Net)
	}

	totals.Gross = totals.Gross.Round(2)
	totals.PAYE = totals.PAYE.Round(2)
	totals.EmployeeNI = totals.EmployeeNI.Round(2)
	totals.EmployerNI = totals.EmployerNI.Round(2)
	totals.PensionEmployee = totals.PensionEmployee.Round(2)
	totals.PensionEmployer = totals.PensionEmployer.Round(2)
	totals.HolidayPay = totals.HolidayPay.Round(2)
	totals.OtherDeductions = totals.OtherDeductions.Round(2)
	totals.StudentLoan = totals.StudentLoan.Round(2)
	totals.Net = totals.Net.Round(2)
	return totals
}

// Waterfall decomposes one period into the fixed ordered step sequence from
// gross down to net. The terminal Net step is a checkpoint carrying the stated
// net exactly as recorded: it may disagree with the running total when the
// employer recorded net inconsistently, and that discrepancy is intentionally
// preserved (see NetDiscrepancy).
func Waterfall(p models.PayrollPeriod) []models.WaterfallStep {
	return []models.WaterfallStep{
		{Label: "Gross", Value: p.Gross, Kind: models.StepRelative},
		{Label: "PAYE", Value: p.PAYE.Neg(), Kind: models.StepRelative},
		{Label: "EE NI", Value: p.EmployeeNI.Neg(), Kind: models.StepRelative},
		{Label: "Pension (EE)", Value: p.PensionEmployee.Neg(), Kind: models.StepRelative},
		{Label: "Other", Value: p.OtherDeductions.Neg(), Kind: models.StepRelative},
		{Label: "Student Loan", Value: p.StudentLoan.Neg(), Kind: models.StepRelative},
		{Label: "Holiday Pay", Value: p.HolidayPay, Kind: models.StepRelative},
		{Label: "Net", Value: p.Net, Kind: models.StepTotal},
	}
}

// NetDiscrepancy returns the absolute gap between the stated net and the net
// implied by the waterfall's relative steps. Zero means the employer's stated
// net reconciles exactly.
func NetDiscrepancy(p models.PayrollPeriod) decimal.Decimal {
	implied := p.Gross.
		Sub(p.PAYE).
		Sub(p.EmployeeNI).
		Sub(p.PensionEmployee).
		Sub(p.OtherDeductions).
		Sub(p.StudentLoan).
		Add(p.HolidayPay)
	return p.Net.Sub(implied).Abs()
}

// fieldPointers maps coerced column names onto the struct fields they fill.
func fieldPointers(p *models.PayrollPeriod) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"gross":            &p.Gross,
		"paye":             &p.PAYE,
		"ee_ni":            &p.EmployeeNI,
		"er_ni":            &p.EmployerNI,
		"pension_ee":       &p.PensionEmployee,
		"pension_er":       &p.PensionEmployer,
		"holiday_pay":      &p.HolidayPay,
		"other_deductions": &p.OtherDeductions,
		"student_loan":     &p.StudentLoan,
		"net":              &p.Net,
	}
}

package payroll

import (
	"testing"

	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

func period(end string, fields map[string]string) models.PayrollPeriod {
	columns := []string{"period_end"}
	row := []string{end}
	for k, v := range fields {
		columns = append(columns, k)
		row = append(row, v)
	}
	periods, _ := Coerce(frame.New(columns, [][]string{row}))
	if len(periods) != 1 {
		panic("test period did not coerce")
	}
	return periods[0]
}

func TestCoerceFillsMissingFields(t *testing.T) {
	table := frame.New(
		[]string{"period_end", "gross", "net"},
		[][]string{
			{"2024-03-29", "1200.00", "950.00"},
		},
	)

	periods, stats := Coerce(table)
	require.Len(t, periods, 1)
	assert.True(t, stats.Clean())

	p := periods[0]
	assertAmount(t, "1200.00", p.Gross)
	assertAmount(t, "950.00", p.Net)
	// Every absent field is present as zero, never missing.
	assertAmount(t, "0", p.PAYE)
	assertAmount(t, "0", p.EmployeeNI)
	assertAmount(t, "0", p.EmployerNI)
	assertAmount(t, "0", p.PensionEmployee)
	assertAmount(t, "0", p.PensionEmployer)
	assertAmount(t, "0", p.HolidayPay)
	assertAmount(t, "0", p.OtherDeductions)
	assertAmount(t, "0", p.StudentLoan)
}

func TestCoerceDefaultsAndDrops(t *testing.T) {
	table := frame.New(
		[]string{"period_end", "gross", "paye"},
		[][]string{
			{"2024-03-29", "1200.00", "oops"},
			{"bad date", "900.00", "100.00"},
		},
	)

	periods, stats := Coerce(table)
	require.Len(t, periods, 1)
	assert.Equal(t, 1, stats.DefaultedCells)
	assert.Equal(t, 1, stats.DroppedRows)
	assertAmount(t, "0", periods[0].PAYE)
}

func TestCoerceSortsByPeriodEnd(t *testing.T) {
	table := frame.New(
		[]string{"period_end", "gross"},
		[][]string{
			{"2024-03-29", "3"},
			{"2024-01-26", "1"},
			{"2024-02-23", "2"},
		},
	)

	periods, _ := Coerce(table)
	require.Len(t, periods, 3)
	assertAmount(t, "1", periods[0].Gross)
	assertAmount(t, "2", periods[1].Gross)
	assertAmount(t, "3", periods[2].Gross)
}

func TestMonthly(t *testing.T) {
	periods := []models.PayrollPeriod{
		period("2024-03-08", map[string]string{"gross": "1000", "net": "800"}),
		period("2024-03-22", map[string]string{"gross": "1100", "net": "880"}),
		period("2024-04-05", map[string]string{"gross": "1200", "net": "960"}),
	}

	months := Monthly(periods)
	require.Len(t, months, 2)

	assert.Equal(t, "2024-03", months[0].Month)
	assertAmount(t, "2100", months[0].Gross)
	assertAmount(t, "1680", months[0].Net)

	assert.Equal(t, "2024-04", months[1].Month)
	assertAmount(t, "1200", months[1].Gross)
}

func TestRolling12MEmptyInput(t *testing.T) {
	totals := Rolling12M(nil)
	assertAmount(t, "0", totals.Gross)
	assertAmount(t, "0", totals.PAYE)
	assertAmount(t, "0", totals.EmployeeNI)
	assertAmount(t, "0", totals.EmployerNI)
	assertAmount(t, "0", totals.PensionEmployee)
	assertAmount(t, "0", totals.PensionEmployer)
	assertAmount(t, "0", totals.HolidayPay)
	assertAmount(t, "0", totals.OtherDeductions)
	assertAmount(t, "0", totals.StudentLoan)
	assertAmount(t, "0", totals.Net)
}

func TestRolling12MWindow(t *testing.T) {
	periods := []models.PayrollPeriod{
		// Latest period ends 2024-06-28, so the window covers periods
		// ending strictly after 2023-06-28.
		period("2024-06-28", map[string]string{"gross": "1000"}),
		period("2023-06-29", map[string]string{"gross": "500"}),
		// Exactly on the boundary: excluded (strictly after).
		period("2023-06-28", map[string]string{"gross": "9999"}),
		period("2022-12-30", map[string]string{"gross": "7777"}),
	}

	totals := Rolling12M(periods)
	assertAmount(t, "1500", totals.Gross)
}

func TestWaterfall(t *testing.T) {
	p := period("2024-03-29", map[string]string{
		"gross":            "1200.00",
		"paye":             "216.00",
		"ee_ni":            "108.00",
		"pension_ee":       "36.00",
		"other_deductions": "8.00",
		"student_loan":     "0.0",
		"holiday_pay":      "0.0",
		"net":              "832.00",
	})

	steps := Waterfall(p)
	require.Len(t, steps, 8)

	expected := []struct {
		label string
		value string
		kind  models.StepKind
	}{
		{"Gross", "1200.00", models.StepRelative},
		{"PAYE", "-216.00", models.StepRelative},
		{"EE NI", "-108.00", models.StepRelative},
		{"Pension (EE)", "-36.00", models.StepRelative},
		{"Other", "-8.00", models.StepRelative},
		{"Student Loan", "0", models.StepRelative},
		{"Holiday Pay", "0", models.StepRelative},
		{"Net", "832.00", models.StepTotal},
	}

	for i, want := range expected {
		assert.Equal(t, want.label, steps[i].Label)
		assert.Equal(t, want.kind, steps[i].Kind)
		assertAmount(t, want.value, steps[i].Value)
	}
}

func TestWaterfallNetIsPassThrough(t *testing.T) {
	// The terminal Net step carries the stated net even when it disagrees
	// with the sum of the preceding steps.
	p := period("2024-03-29", map[string]string{
		"gross": "1000.00",
		"paye":  "200.00",
		"net":   "123.45",
	})

	steps := Waterfall(p)
	assertAmount(t, "123.45", steps[7].Value)
	assertAmount(t, "676.55", NetDiscrepancy(p))
}

func TestNetDiscrepancyZeroWhenConsistent(t *testing.T) {
	p := period("2024-03-29", map[string]string{
		"gross":            "1200.00",
		"paye":             "216.00",
		"ee_ni":            "108.00",
		"pension_ee":       "36.00",
		"other_deductions": "8.00",
		"net":              "832.00",
	})
	assertAmount(t, "0", NetDiscrepancy(p))
}

// Package property coerces raw short-let rental ledger tables, applies the
// per-row EUR to GBP statement-rate conversion and computes the monthly and
// occupancy aggregations.
package property

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

var one = decimal.NewFromInt(1)

// Coerce fills the fixed rental-ledger shape from a raw table and computes
// the derived GBP fields. Missing numeric columns default to zero, currency
// defaults to EUR, rows with unparseable dates are dropped and the output is
// sorted ascending by date. Derived fields are always recomputed from the EUR
// amounts and the statement rate, so re-coercing an already-coerced table
// yields identical values.
func Coerce(t *frame.Table) ([]models.PropertyDay, frame.CoercionStats) {
	var stats frame.CoercionStats

	days := make([]models.PropertyDay, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		date, err := dateutils.ParseDate(t.Cell(i, "date"))
		if err != nil {
			stats.DroppedRows++
			continue
		}

		day := models.PropertyDay{
			Date:            models.NewDate(date),
			Currency:        models.CurrencyEUR,
			Nights:          numericCell(t.Cell(i, "nights"), &stats),
			StatementRate:   numericCell(t.Cell(i, "statement_rate"), &stats),
			IncomeEUR:       numericCell(t.Cell(i, "income_eur"), &stats),
			CleaningEUR:     numericCell(t.Cell(i, "cleaning_eur"), &stats),
			PlatformFeesEUR: numericCell(t.Cell(i, "platform_fees_eur"), &stats),
			TaxesEUR:        numericCell(t.Cell(i, "taxes_eur"), &stats),
			OtherEUR:        numericCell(t.Cell(i, "other_eur"), &stats),
		}
		if c := t.Cell(i, "currency"); c != "" {
			day.Currency = c
		}

		Derive(&day)
		days = append(days, day)
	}

	sort.SliceStable(days, func(a, b int) bool {
		return days[a].Date.Before(days[b].Date.Time)
	})

	if !stats.Clean() {
		log.Warn("Property coercion applied defaults",
			logging.Field{Key: "defaulted_cells", Value: stats.DefaultedCells},
			logging.Field{Key: "dropped_rows", Value: stats.DroppedRows})
	}
	return days, stats
}

// Derive recomputes the GBP fields of a day from its EUR amounts and
// statement rate. A rate of exactly zero is treated as missing and replaced
// by 1.0, degrading the conversion to a pass-through rather than failing.
// Each converted field is rounded to 2 decimal places independently before
// the outgoings sum and net subtraction.
func Derive(day *models.PropertyDay) {
	rate := day.StatementRate
	if rate.IsZero() {
		rate = one
	}

	day.IncomeGBP = day.IncomeEUR.Div(rate).Round(2)
	day.CleaningGBP = day.CleaningEUR.Div(rate).Round(2)
	day.FeesGBP = day.PlatformFeesEUR.Div(rate).Round(2)
	day.TaxesGBP = day.TaxesEUR.Div(rate).Round(2)
	day.OtherGBP = day.OtherEUR.Div(rate).Round(2)

	day.OutgoingsGBP = day.CleaningGBP.
		Add(day.FeesGBP).
		Add(day.TaxesGBP).
		Add(day.OtherGBP).
		Round(2)
	day.NetGBP = day.IncomeGBP.Sub(day.OutgoingsGBP).Round(2)
}

// Monthly groups days by calendar month and sums the GBP fields and nights.
// One row per month present in the data, ascending, with no gap-filling.
func Monthly(days []models.PropertyDay) []models.PropertyMonth {
	groups := make(map[string]*models.PropertyMonth)
	order := make([]string, 0)

	for _, d := range days {
		key := d.Date.MonthKey()
		month, ok := groups[key]
		if !ok {
			month = &models.PropertyMonth{Month: key}
			groups[key] = month
			order = append(order, key)
		}
		month.IncomeGBP = month.IncomeGBP.Add(d.IncomeGBP)
		month.FeesGBP = month.FeesGBP.Add(d.FeesGBP)
		month.TaxesGBP = month.TaxesGBP.Add(d.TaxesGBP)
		month.CleaningGBP = month.CleaningGBP.Add(d.CleaningGBP)
		month.OtherGBP = month.OtherGBP.Add(d.OtherGBP)
		month.NetGBP = month.NetGBP.Add(d.NetGBP)
		month.Nights = month.Nights.Add(d.Nights)
	}

	sort.Strings(order)
	months := make([]models.PropertyMonth, 0, len(order))
	for _, key := range order {
		months = append(months, *groups[key])
	}
	return months
}

// Occupancy builds the month by day-of-month booking matrix. A cell is 1 when
// any row in that month and day has nights > 0; overlapping same-day entries
// still yield 1, never more (max aggregation, not sum). Every row carries all
// 31 day columns; months with fewer calendar days leave the trailing cells 0.
func Occupancy(days []models.PropertyDay) []models.OccupancyRow {
	groups := make(map[string]*models.OccupancyRow)
	order := make([]string, 0)

	for _, d := range days {
		key := d.Date.MonthKey()
		row, ok := groups[key]
		if !ok {
			row = &models.OccupancyRow{Month: key}
			groups[key] = row
			order = append(order, key)
		}
		if d.Nights.IsPositive() {
			row.Days[d.Date.Day()-1] = 1
		}
	}

	sort.Strings(order)
	rows := make([]models.OccupancyRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	return rows
}

func numericCell(cell string, stats *frame.CoercionStats) decimal.Decimal {
	value, ok := frame.Numeric(cell)
	if !ok {
		stats.DefaultedCells++
	}
	return value
}

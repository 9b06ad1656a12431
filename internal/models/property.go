package models

import "github.com/shopspring/decimal"

// PropertyDay is one coerced rental-ledger row with its derived GBP fields.
// The GBP fields are computed from the EUR amounts and the statement rate,
// each independently rounded to 2 decimal places at the point of computation.
type PropertyDay struct {
	Date          Date            `csv:"date"`
	Nights        decimal.Decimal `csv:"nights"`
	Currency      string          `csv:"currency"`
	StatementRate decimal.Decimal `csv:"statement_rate"`

	IncomeEUR       decimal.Decimal `csv:"income_eur"`
	CleaningEUR     decimal.Decimal `csv:"cleaning_eur"`
	PlatformFeesEUR decimal.Decimal `csv:"platform_fees_eur"`
	TaxesEUR        decimal.Decimal `csv:"taxes_eur"`
	OtherEUR        decimal.Decimal `csv:"other_eur"`

	IncomeGBP    decimal.Decimal `csv:"income_gbp"`
	CleaningGBP  decimal.Decimal `csv:"cleaning_gbp"`
	FeesGBP      decimal.Decimal `csv:"fees_gbp"`
	TaxesGBP     decimal.Decimal `csv:"taxes_gbp"`
	OtherGBP     decimal.Decimal `csv:"other_gbp"`
	OutgoingsGBP decimal.Decimal `csv:"outgoings_gbp"`
	NetGBP       decimal.Decimal `csv:"net_gbp"`
}

// PropertyMonth holds the per-calendar-month sums of the rental ledger.
type PropertyMonth struct {
	Month       string          `csv:"month"`
	IncomeGBP   decimal.Decimal `csv:"income_gbp"`
	FeesGBP     decimal.Decimal `csv:"fees_gbp"`
	TaxesGBP    decimal.Decimal `csv:"taxes_gbp"`
	CleaningGBP decimal.Decimal `csv:"cleaning_gbp"`
	OtherGBP    decimal.Decimal `csv:"other_gbp"`
	NetGBP      decimal.Decimal `csv:"net_gbp"`
	Nights      decimal.Decimal `csv:"nights"`
}

// OccupancyRow is one month of the occupancy matrix. Days always spans
// 1..31 regardless of the month's calendar length; a cell is 1 when any
// booking on that day has nights > 0.
type OccupancyRow struct {
	Month string
	Days  [31]int
}

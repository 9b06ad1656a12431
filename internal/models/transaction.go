package models

import "github.com/shopspring/decimal"

// Transaction is the canonical five-field spending record all downstream
// spending logic consumes. Amount sign convention: negative = outflow,
// positive = inflow.
type Transaction struct {
	Date        Date            `csv:"date"`
	Vendor      string          `csv:"vendor"`
	Description string          `csv:"description"`
	Amount      decimal.Decimal `csv:"amount"`
	Currency    string          `csv:"currency"`
	Category    string          `csv:"category"`
}

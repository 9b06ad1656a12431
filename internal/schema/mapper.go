// Package schema maps tables with arbitrary column names onto the canonical
// transaction shape through heuristic header aliasing.
package schema

import (
	"sort"

	"finprep/disclosure-csv/internal/classify"
	"finprep/disclosure-csv/internal/dateutils"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/models"
	"finprep/disclosure-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// amountMode selects how the amount field is derived for a table.
type amountMode int

const (
	amountLiteral amountMode = iota
	amountDebitCredit
)

// Mapper normalizes arbitrary spending tables into canonical transactions.
// A nil classifier leaves every transaction Uncategorized.
type Mapper struct {
	classifier      *classify.Classifier
	defaultCategory string
	logger          logging.Logger
}

// NewMapper creates a Mapper. classifier may be nil when no ruleset is
// available; classification then degrades to the default category.
func NewMapper(classifier *classify.Classifier, defaultCategory string, logger logging.Logger) *Mapper {
	if defaultCategory == "" {
		defaultCategory = models.CategoryUncategorized
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Mapper{classifier: classifier, defaultCategory: defaultCategory, logger: logger}
}

// Normalize converts a raw table into canonical transactions sorted ascending
// by date. Rows with unparseable dates are dropped and counted in the stats;
// a table with no resolvable date or amount column fails with a SchemaError.
func (m *Mapper) Normalize(t *frame.Table) ([]models.Transaction, frame.CoercionStats, error) {
	var stats frame.CoercionStats

	dateCol, ok := FieldResolver{Field: "date", Aliases: DateAliases}.Resolve(t)
	if !ok {
		return nil, stats, &parsererror.SchemaError{Field: "date", Columns: t.Columns()}
	}

	mode, amountCol, debitCol, creditCol, err := resolveAmount(t)
	if err != nil {
		return nil, stats, err
	}

	vendorCol, hasVendor := FieldResolver{Field: "vendor", Aliases: VendorAliases}.Resolve(t)
	descCol := resolveDescription(t, vendorCol)
	hasCategory := t.HasColumn("category")
	hasCurrency := t.HasColumn("currency")

	transactions := make([]models.Transaction, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		date, err := dateutils.ParseDate(t.Cell(i, dateCol))
		if err != nil {
			stats.DroppedRows++
			continue
		}

		var amount decimal.Decimal
		switch mode {
		case amountDebitCredit:
			credit := numericCell(t.Cell(i, creditCol), &stats)
			debit := numericCell(t.Cell(i, debitCol), &stats)
			amount = credit.Sub(debit)
		default:
			amount = numericCell(t.Cell(i, amountCol), &stats)
		}

		vendor := models.VendorUnknown
		if hasVendor {
			if v := t.Cell(i, vendorCol); v != "" {
				vendor = v
			}
		}
		description := vendor
		if descCol != "" {
			if d := t.Cell(i, descCol); d != "" {
				description = d
			}
		}

		currency := models.CurrencyGBP
		if hasCurrency {
			if c := t.Cell(i, "currency"); c != "" {
				currency = c
			}
		}

		category := m.defaultCategory
		if hasCategory {
			if c := t.Cell(i, "category"); c != "" {
				category = c
			}
		} else if m.classifier != nil && m.classifier.HasRules() {
			category = m.classifier.Classify(vendor, m.defaultCategory)
		}

		transactions = append(transactions, models.Transaction{
			Date:        models.NewDate(date),
			Vendor:      vendor,
			Description: description,
			Amount:      amount,
			Currency:    currency,
			Category:    category,
		})
	}

	sort.SliceStable(transactions, func(a, b int) bool {
		return transactions[a].Date.Before(transactions[b].Date.Time)
	})

	m.logger.Debug("Normalized table",
		logging.Field{Key: "rows", Value: len(transactions)},
		logging.Field{Key: "dropped", Value: stats.DroppedRows},
		logging.Field{Key: "defaulted", Value: stats.DefaultedCells})

	return transactions, stats, nil
}

// resolveAmount applies the amount resolution order: a literal amount column,
// then a debit/credit pair, then the fallback alias scan.
func resolveAmount(t *frame.Table) (amountMode, string, string, string, error) {
	if t.HasColumn("amount") {
		return amountLiteral, "amount", "", "", nil
	}

	debitCol, hasDebit := FieldResolver{Field: "debit", Aliases: DebitAliases}.Resolve(t)
	creditCol, hasCredit := FieldResolver{Field: "credit", Aliases: CreditAliases}.Resolve(t)
	if hasDebit && hasCredit {
		return amountDebitCredit, "", debitCol, creditCol, nil
	}

	if col, ok := (FieldResolver{Field: "amount", Aliases: AmountAliases}).Resolve(t); ok {
		return amountLiteral, col, "", "", nil
	}

	return 0, "", "", "", &parsererror.SchemaError{Field: "amount", Columns: t.Columns()}
}

// resolveDescription finds a description column distinct from the vendor
// column. When none exists the description mirrors the vendor.
func resolveDescription(t *frame.Table, vendorCol string) string {
	for _, alias := range descriptionAliases {
		if alias != vendorCol && t.HasColumn(alias) {
			return alias
		}
	}
	return ""
}

func numericCell(cell string, stats *frame.CoercionStats) decimal.Decimal {
	value, ok := frame.Numeric(cell)
	if !ok {
		stats.DefaultedCells++
	}
	return value
}

// Package sniff heuristically identifies which pipeline an input table belongs
// to, so a directory of mixed exports can be routed without misfiling.
package sniff

import (
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/schema"
)

// Kind is the detected table kind.
type Kind string

const (
	KindSpending Kind = "spending"
	KindPayroll  Kind = "payroll"
	KindProperty Kind = "property"
	KindUnknown  Kind = "unknown"
)

// Marker column sets. Exclusion precedence matters: a rental or payroll file
// often carries a generically named amount column, so property and payroll
// markers are checked before the spending markers.
var (
	propertyMarkers = []string{
		"income_eur", "platform_fees_eur", "taxes_eur", "cleaning_eur", "statement_rate", "nights",
	}
	payrollMarkers = []string{
		"gross", "paye", "ee_ni", "er_ni", "pension_ee", "pension_er", "holiday_pay", "net",
	}
	spendingMarkers = []string{
		"amount", "Amount", "Transaction Amount", "Money In", "Money Out", "Debit", "Credit",
	}
)

// Classify inspects only the table's column names, never its values.
func Classify(t *frame.Table) Kind {
	if hasAny(t, propertyMarkers) {
		return KindProperty
	}
	if hasAny(t, payrollMarkers) {
		return KindPayroll
	}
	if hasAny(t, spendingMarkers) {
		return KindSpending
	}
	// A date column next to a description-like column is still a usable
	// spending table even without an explicit amount marker.
	if hasAny(t, schema.DateAliases) && hasAny(t, schema.VendorAliases) {
		return KindSpending
	}
	return KindUnknown
}

func hasAny(t *frame.Table, markers []string) bool {
	for _, marker := range markers {
		if t.HasColumn(marker) {
			return true
		}
	}
	return false
}

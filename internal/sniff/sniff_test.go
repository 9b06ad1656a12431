package sniff

import (
	"testing"

	"finprep/disclosure-csv/internal/frame"

	"github.com/stretchr/testify/assert"
)

func tableWith(columns ...string) *frame.Table {
	return frame.New(columns, nil)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected Kind
	}{
		{
			name:     "property by eur columns",
			columns:  []string{"date", "nights", "income_eur", "statement_rate"},
			expected: KindProperty,
		},
		{
			name:     "payroll by deduction columns",
			columns:  []string{"period_end", "gross", "paye", "net"},
			expected: KindPayroll,
		},
		{
			name:     "spending by amount column",
			columns:  []string{"date", "description", "amount"},
			expected: KindSpending,
		},
		{
			name:     "spending by debit and credit columns",
			columns:  []string{"Date", "Details", "Debit", "Credit"},
			expected: KindSpending,
		},
		{
			name:     "spending by date plus description fallback",
			columns:  []string{"Posted Date", "Narrative", "balance"},
			expected: KindSpending,
		},
		{
			name:     "unknown when nothing matches",
			columns:  []string{"foo", "bar"},
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tableWith(tt.columns...)))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// A rental file with a generically named amount column must not be
	// misrouted into the spending pipeline: property markers win.
	table := tableWith("date", "amount", "nights", "income_eur")
	assert.Equal(t, KindProperty, Classify(table))

	// Same for payroll files carrying an amount column.
	table = tableWith("date", "amount", "gross", "paye")
	assert.Equal(t, KindPayroll, Classify(table))
}

package schema

import "finprep/disclosure-csv/internal/frame"

// Alias lists for canonical fields, in priority order: the first alias present
// in a table wins, so earlier entries act as the tie-break.
var (
	// DateAliases are the recognized date column headers.
	DateAliases = []string{"date", "Date", "Transaction Date", "Posted Date"}

	// AmountAliases is the fallback scan used when neither a literal amount
	// column nor a debit/credit pair resolves.
	AmountAliases = []string{"amount", "Amount", "Transaction Amount", "Money In", "Money Out", "Debit", "Credit"}

	// DebitAliases and CreditAliases drive the credit-minus-debit derivation.
	DebitAliases  = []string{"debit", "Debit", "Money Out"}
	CreditAliases = []string{"credit", "Credit", "Money In"}

	// VendorAliases are the recognized vendor/description headers.
	VendorAliases = []string{"vendor", "Vendor", "merchant", "Merchant", "description", "Description", "Details", "Narrative", "Memo"}

	// descriptionAliases is the subset of VendorAliases that names a
	// free-text description rather than a counterparty.
	descriptionAliases = []string{"description", "Description", "Details", "Narrative", "Memo"}
)

// FieldResolver resolves a canonical field to a concrete column by scanning an
// ordered alias list.
type FieldResolver struct {
	Field   string
	Aliases []string
}

// Resolve returns the first alias present in the table.
func (r FieldResolver) Resolve(t *frame.Table) (string, bool) {
	for _, alias := range r.Aliases {
		if t.HasColumn(alias) {
			return alias, true
		}
	}
	return "", false
}

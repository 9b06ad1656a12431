package models

// Default labels applied during normalization
const (
	CategoryUncategorized = "Uncategorized"
	VendorUnknown         = "Unknown"
)

// Currencies
const (
	CurrencyGBP = "GBP"
	CurrencyEUR = "EUR"
)

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)

package models

// Statement formats
const (
	FormatPostLt   = "postlt"
	FormatSwedbank = "swedbank"
)

// Currencies accepted by both formats
const (
	CurrencyEUR = "EUR"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

package domain

import "github.com/shopspring/decimal"

// Vendor is a supplier in the tenant's vendor directory.
type Vendor struct {
	VendorID    string          `json:"vendorID"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	ContactInfo string          `json:"contactInfo"`
	AverageCost decimal.Decimal `json:"averageCost"`
	AuditFields
}

package dto

// VendorForm carries the vendor dialog fields.
type VendorForm struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Category    string `form:"category" json:"category"`
	ContactInfo string `form:"contactInfo" json:"contactInfo"`
	AverageCost string `form:"averageCost" json:"averageCost"`
}

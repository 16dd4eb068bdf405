package dto

// DraftRabItemForm carries the cost-plan line dialog fields. Quantities and
// prices are coerced server-side; submitted totals are ignored.
type DraftRabItemForm struct {
	Category      string `form:"category" json:"category"`
	Item          string `form:"item" json:"item" binding:"required"`
	Specification string `form:"specification" json:"specification"`
	Qty           string `form:"qty" json:"qty"`
	QtyType       string `form:"qtyType" json:"qtyType"`
	Frequency     string `form:"frequency" json:"frequency"`
	FrequencyType string `form:"frequencyType" json:"frequencyType"`
	UnitPriceRab  string `form:"unitPriceRab" json:"unitPriceRab"`
	UnitPriceReal string `form:"unitPriceReal" json:"unitPriceReal"`
	Remarks       string `form:"remarks" json:"remarks"`
}

// ExpenseForm carries the create-expense dialog fields.
type ExpenseForm struct {
	EventID         string `form:"eventId" json:"eventId" binding:"required"`
	Description     string `form:"description" json:"description" binding:"required"`
	Category        string `form:"category" json:"category"`
	EstimatedAmount string `form:"estimatedAmount" json:"estimatedAmount"`
	ActualAmount    string `form:"actualAmount" json:"actualAmount"`
	Status          string `form:"status" json:"status"`
	VendorID        string `form:"vendorId" json:"vendorId"`
}

// UpdateExpenseForm carries the edit-expense dialog fields. Omitted or
// unparsable amounts leave the stored values untouched.
type UpdateExpenseForm struct {
	Status          string `form:"status" json:"status"`
	EstimatedAmount string `form:"estimatedAmount" json:"estimatedAmount"`
	ActualAmount    string `form:"actualAmount" json:"actualAmount"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus defines the lifecycle states of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// IsValid reports whether s is a known event status.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusActive, EventStatusCompleted:
		return true
	}
	return false
}

// DefaultTargetMargin is the target margin (percent) applied when the form
// omits or fails to parse the field.
var DefaultTargetMargin = decimal.NewFromInt(20)

// Event is a client engagement: one booked occasion with its budget,
// vendors, cost plan, expenses and tasks.
type Event struct {
	EventID      string          `json:"eventID"`
	Name         string          `json:"name"`
	ClientName   string          `json:"clientName"`
	Location     string          `json:"location"`
	Date         *time.Time      `json:"date,omitempty"`
	TotalBudget  decimal.Decimal `json:"totalBudget"`
	TargetMargin decimal.Decimal `json:"targetMargin"` // percent
	Status       EventStatus     `json:"status"`
	AuditFields
}

// TargetProfit returns totalBudget * targetMargin / 100.
func (e *Event) TargetProfit() decimal.Decimal {
	return e.TotalBudget.Mul(e.TargetMargin).Div(decimal.NewFromInt(100))
}

// MaxBudget returns the spend ceiling that still hits the target margin:
// totalBudget - targetProfit.
func (e *Event) MaxBudget() decimal.Decimal {
	return e.TotalBudget.Sub(e.TargetProfit())
}

// EventVendorStatus tracks payment progress towards a contracted vendor.
type EventVendorStatus string

const (
	EventVendorStatusPending EventVendorStatus = "PENDING"
	EventVendorStatusPartial EventVendorStatus = "PARTIAL"
	EventVendorStatusPaid    EventVendorStatus = "PAID"
)

// IsValid reports whether s is a known event-vendor status.
func (s EventVendorStatus) IsValid() bool {
	switch s {
	case EventVendorStatusPending, EventVendorStatusPartial, EventVendorStatusPaid:
		return true
	}
	return false
}

// EventVendor links a vendor to an event with the negotiated terms.
type EventVendor struct {
	EventVendorID string            `json:"eventVendorID"`
	EventID       string            `json:"eventID"`
	VendorID      string            `json:"vendorID"`
	VendorName    string            `json:"vendorName,omitempty"` // joined for display
	Role          string            `json:"role"`
	AgreedCost    decimal.Decimal   `json:"agreedCost"`
	Status        EventVendorStatus `json:"status"`
}

// ExpenseStatus tracks whether an expense has been paid out.
type ExpenseStatus string

const (
	ExpenseStatusUnpaid ExpenseStatus = "UNPAID"
	ExpenseStatusPaid   ExpenseStatus = "PAID"
)

// IsValid reports whether s is a known expense status.
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseStatusUnpaid || s == ExpenseStatusPaid
}

// Expense is an actual recorded cost against an event, as opposed to the
// DraftRabItem cost plan.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	EventID         string          `json:"eventID"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
	ActualAmount    decimal.Decimal `json:"actualAmount"`
	Status          ExpenseStatus   `json:"status"`
	Date            time.Time       `json:"date"`
	VendorID        *string         `json:"vendorID,omitempty"`
}

// DraftRabItem is one line of the itemized cost estimate
// (Rancangan Anggaran Biaya) for an event.
//
// TotalPriceRab and TotalPriceReal are always derived via ComputeTotals,
// never taken from client input.
type DraftRabItem struct {
	DraftRabItemID string          `json:"draftRabItemID"`
	EventID        string          `json:"eventID"`
	Category       string          `json:"category"`
	Item           string          `json:"item"`
	Specification  string          `json:"specification"`
	Qty            int64           `json:"qty"`
	QtyType        string          `json:"qtyType"`
	Frequency      int64           `json:"frequency"`
	FrequencyType  string          `json:"frequencyType"`
	UnitPriceRab   decimal.Decimal `json:"unitPriceRab"`
	TotalPriceRab  decimal.Decimal `json:"totalPriceRab"`
	UnitPriceReal  decimal.Decimal `json:"unitPriceReal"`
	TotalPriceReal decimal.Decimal `json:"totalPriceReal"`
	Remarks        string          `json:"remarks"`
}

// ComputeTotals recomputes both derived totals from qty, frequency and the
// unit prices. A missing real unit price yields a zero real total.
func (d *DraftRabItem) ComputeTotals() {
	units := decimal.NewFromInt(d.Qty).Mul(decimal.NewFromInt(d.Frequency))
	d.TotalPriceRab = units.Mul(d.UnitPriceRab)
	d.TotalPriceReal = units.Mul(d.UnitPriceReal)
}

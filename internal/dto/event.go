package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// EventForm carries the create/update event dialog fields. Numeric and date
// fields stay strings so the service applies the coercion rules (invalid
// number to 0, invalid date to null, margin default 20).
type EventForm struct {
	Name         string `form:"name" json:"name" binding:"required"`
	ClientName   string `form:"clientName" json:"clientName"`
	Location     string `form:"location" json:"location"`
	Date         string `form:"date" json:"date"`
	TotalBudget  string `form:"totalBudget" json:"totalBudget"`
	TargetMargin string `form:"targetMargin" json:"targetMargin"`
	Status       string `form:"status" json:"status"`
}

// EventResponse is the public projection of an event including its derived
// budget figures.
type EventResponse struct {
	EventID      string          `json:"eventID"`
	Name         string          `json:"name"`
	ClientName   string          `json:"clientName"`
	Location     string          `json:"location"`
	Date         *time.Time      `json:"date,omitempty"`
	TotalBudget  decimal.Decimal `json:"totalBudget"`
	TargetMargin decimal.Decimal `json:"targetMargin"`
	TargetProfit decimal.Decimal `json:"targetProfit"`
	MaxBudget    decimal.Decimal `json:"maxBudget"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToEventResponse converts a domain.Event to its public projection.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:      e.EventID,
		Name:         e.Name,
		ClientName:   e.ClientName,
		Location:     e.Location,
		Date:         e.Date,
		TotalBudget:  e.TotalBudget,
		TargetMargin: e.TargetMargin,
		TargetProfit: e.TargetProfit(),
		MaxBudget:    e.MaxBudget(),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
	}
}

// ListEventsResponse wraps an event listing.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToListEventsResponse converts a slice of domain events.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: out}
}

// EventVendorForm carries the attach-vendor dialog fields.
type EventVendorForm struct {
	VendorID   string `form:"vendorId" json:"vendorId" binding:"required"`
	Role       string `form:"role" json:"role"`
	AgreedCost string `form:"agreedCost" json:"agreedCost"`
	Status     string `form:"status" json:"status"`
}

// UpdateEventVendorForm carries the edit-vendor-link dialog fields.
type UpdateEventVendorForm struct {
	Role       string `form:"role" json:"role"`
	AgreedCost string `form:"agreedCost" json:"agreedCost"`
	Status     string `form:"status" json:"status"`
}

// EventBudgetSummary is the computed budget panel for one event.
type EventBudgetSummary struct {
	Event            EventResponse   `json:"event"`
	RabTotal         decimal.Decimal `json:"rabTotal"`
	RabRealTotal     decimal.Decimal `json:"rabRealTotal"`
	EstimatedExpense decimal.Decimal `json:"estimatedExpense"`
	ActualExpense    decimal.Decimal `json:"actualExpense"`
	PaidExpense      decimal.Decimal `json:"paidExpense"`
	UnpaidExpense    decimal.Decimal `json:"unpaidExpense"`
	RemainingBudget  decimal.Decimal `json:"remainingBudget"` // maxBudget - actual
}

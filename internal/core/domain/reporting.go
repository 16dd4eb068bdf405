package domain

import "github.com/shopspring/decimal"

// EventExpenseTotals aggregates recorded expenses for one event.
type EventExpenseTotals struct {
	EventID   string          `json:"eventID"`
	EventName string          `json:"eventName"`
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
	Paid      decimal.Decimal `json:"paid"`
	Unpaid    decimal.Decimal `json:"unpaid"`
}

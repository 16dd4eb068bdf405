package dto

import "github.com/eventiqo/eventiqo-backend/internal/core/domain"

// StatusCount is one bar of the event-status histogram.
type StatusCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// PanelStats is the dashboard landing-page aggregate, owner-scoped.
type PanelStats struct {
	ActiveEvents int           `json:"activeEvents"`
	TotalEvents  int           `json:"totalEvents"`
	PendingTasks int           `json:"pendingTasks"`
	TotalTasks   int           `json:"totalTasks"`
	TeamSize     int           `json:"teamSize"`
	VendorCount  int           `json:"vendorCount"`
	EventStats   []StatusCount `json:"eventStats"`
}

// FinanceReport is the per-event estimated-vs-actual roll-up.
type FinanceReport struct {
	Rows []domain.EventExpenseTotals `json:"rows"`
}

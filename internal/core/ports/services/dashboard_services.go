package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// DashboardSvcFacade computes owner-scoped page aggregates.
type DashboardSvcFacade interface {
	PanelStats(ctx context.Context, actor *domain.User) (*dto.PanelStats, error)
	FinanceReport(ctx context.Context, actor *domain.User) (*dto.FinanceReport, error)
}

// ExportSvcFacade produces file exports consumed by the browser.
type ExportSvcFacade interface {
	// RabWorkbook renders the event's cost plan as an XLSX workbook and
	// returns its bytes plus a suggested file name.
	RabWorkbook(ctx context.Context, actor *domain.User, eventID string) ([]byte, string, error)
}

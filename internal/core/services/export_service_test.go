package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/core/services"
)

func TestRabWorkbook_ContainsItemsAndTotals(t *testing.T) {
	eventRepo := &MockEventRepository{
		FindEventByIDFn: func(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
			assert.Equal(t, "manager-1", ownerID)
			return &domain.Event{EventID: eventID, Name: "Gala Night", ClientName: "Acme"}, nil
		},
	}
	budgetRepo := &MockBudgetRepository{
		FindDraftRabItemsFn: func(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error) {
			return []domain.DraftRabItem{
				{
					Item:           "Chairs",
					Qty:            100,
					Frequency:      2,
					UnitPriceRab:   decimal.NewFromInt(1500),
					TotalPriceRab:  decimal.NewFromInt(300000),
					UnitPriceReal:  decimal.NewFromInt(1400),
					TotalPriceReal: decimal.NewFromInt(280000),
				},
				{
					Item:          "Stage",
					Qty:           1,
					Frequency:     1,
					UnitPriceRab:  decimal.NewFromInt(50000),
					TotalPriceRab: decimal.NewFromInt(50000),
				},
			}, nil
		},
	}
	svc := services.NewExportService(eventRepo, budgetRepo)

	data, fileName, err := svc.RabWorkbook(context.Background(), managerActor(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "RAB-Gala Night.xlsx", fileName)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Draft RAB"
	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Gala Night", title)

	header, err := f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Item", header)

	firstItem, err := f.GetCellValue(sheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Chairs", firstItem)

	// TOTAL row follows the last item: plan 350000, actual 280000.
	totalLabel, err := f.GetCellValue(sheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", totalLabel)
	rabTotal, err := f.GetCellValue(sheet, "I8")
	require.NoError(t, err)
	assert.Equal(t, "350000", rabTotal)
	realTotal, err := f.GetCellValue(sheet, "K8")
	require.NoError(t, err)
	assert.Equal(t, "280000", realTotal)
}

func TestRabWorkbook_SanitizesDownloadName(t *testing.T) {
	eventRepo := &MockEventRepository{
		FindEventByIDFn: func(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
			return &domain.Event{EventID: eventID, Name: `Launch: Q3/Q4 "Mega"`}, nil
		},
	}
	budgetRepo := &MockBudgetRepository{
		FindDraftRabItemsFn: func(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error) {
			return nil, nil
		},
	}
	svc := services.NewExportService(eventRepo, budgetRepo)

	_, fileName, err := svc.RabWorkbook(context.Background(), managerActor(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "RAB-Launch- Q3-Q4 -Mega-.xlsx", fileName)
}

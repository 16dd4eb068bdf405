package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
)

type exportService struct {
	eventRepo  portsrepo.EventRepository
	budgetRepo portsrepo.BudgetRepository
}

// NewExportService creates the file-export service.
func NewExportService(eventRepo portsrepo.EventRepository, budgetRepo portsrepo.BudgetRepository) ports.ExportSvcFacade {
	return &exportService{eventRepo: eventRepo, budgetRepo: budgetRepo}
}

var _ ports.ExportSvcFacade = (*exportService)(nil)

var rabHeaders = []string{
	"Category", "Item", "Specification", "Qty", "Qty Type", "Frequency", "Frequency Type",
	"Unit Price (RAB)", "Total (RAB)", "Unit Price (Real)", "Total (Real)", "Remarks",
}

func (s *exportService) RabWorkbook(ctx context.Context, actor *domain.User, eventID string) ([]byte, string, error) {
	owner := actor.EffectiveOwnerID()

	event, err := s.eventRepo.FindEventByID(ctx, eventID, owner)
	if err != nil {
		return nil, "", err
	}
	items, err := s.budgetRepo.FindDraftRabItems(ctx, eventID, owner)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Draft RAB"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", event.Name)
	f.SetCellValue(sheetName, "A2", "Client: "+event.ClientName)
	if event.Date != nil {
		f.SetCellValue(sheetName, "A3", "Date: "+event.Date.Format("2 January 2006"))
	}

	const headerRow = 5
	for i, header := range rabHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, header)
	}

	var rabTotal, realTotal decimal.Decimal
	for i, item := range items {
		row := headerRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Item)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Specification)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Qty)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.QtyType)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.Frequency)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.FrequencyType)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.UnitPriceRab.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), item.TotalPriceRab.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), item.UnitPriceReal.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), item.TotalPriceReal.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), item.Remarks)
		rabTotal = rabTotal.Add(item.TotalPriceRab)
		realTotal = realTotal.Add(item.TotalPriceReal)
	}

	totalRow := headerRow + 1 + len(items)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), "TOTAL")
	f.SetCellValue(sheetName, fmt.Sprintf("I%d", totalRow), rabTotal.InexactFloat64())
	f.SetCellValue(sheetName, fmt.Sprintf("K%d", totalRow), realTotal.InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	fileName := fmt.Sprintf("RAB-%s.xlsx", sanitizeFileName(event.Name))
	return buf.Bytes(), fileName, nil
}

// sanitizeFileName keeps the suggested download name safe for
// Content-Disposition headers and filesystems.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "event"
	}
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-",
	)
	return replacer.Replace(name)
}

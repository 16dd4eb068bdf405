package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

func TestEventDerivedFigures(t *testing.T) {
	event := domain.Event{
		TotalBudget:  decimal.NewFromInt(150000000),
		TargetMargin: decimal.NewFromInt(20),
	}

	assert.True(t, event.TargetProfit().Equal(decimal.NewFromInt(30000000)))
	assert.True(t, event.MaxBudget().Equal(decimal.NewFromInt(120000000)))
}

func TestEventDerivedFigures_ZeroMargin(t *testing.T) {
	event := domain.Event{
		TotalBudget:  decimal.NewFromInt(5000),
		TargetMargin: decimal.Zero,
	}

	assert.True(t, event.TargetProfit().IsZero())
	assert.True(t, event.MaxBudget().Equal(decimal.NewFromInt(5000)))
}

func TestDraftRabItemComputeTotals(t *testing.T) {
	item := domain.DraftRabItem{
		Qty:           100,
		Frequency:     2,
		UnitPriceRab:  decimal.NewFromInt(1500),
		UnitPriceReal: decimal.NewFromInt(1400),
	}
	item.ComputeTotals()

	assert.True(t, item.TotalPriceRab.Equal(decimal.NewFromInt(300000)))
	assert.True(t, item.TotalPriceReal.Equal(decimal.NewFromInt(280000)))
}

func TestDraftRabItemComputeTotals_MissingRealPrice(t *testing.T) {
	item := domain.DraftRabItem{
		Qty:          3,
		Frequency:    1,
		UnitPriceRab: decimal.NewFromInt(200),
	}
	item.ComputeTotals()

	assert.True(t, item.TotalPriceRab.Equal(decimal.NewFromInt(600)))
	assert.True(t, item.TotalPriceReal.IsZero())
}

func TestEventStatusIsValid(t *testing.T) {
	assert.True(t, domain.EventStatusDraft.IsValid())
	assert.True(t, domain.EventStatusActive.IsValid())
	assert.True(t, domain.EventStatusCompleted.IsValid())
	assert.False(t, domain.EventStatus("CANCELLED").IsValid())
	assert.False(t, domain.EventStatus("").IsValid())
}

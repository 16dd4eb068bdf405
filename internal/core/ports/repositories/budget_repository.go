package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// BudgetRepository defines persistence operations for the cost side of an
// event: the Draft RAB line items (plan) and the expenses (actuals). All
// operations scope transitively through the owning event's created_by.
type BudgetRepository interface {
	SaveDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error
	FindDraftRabItems(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error)
	FindDraftRabItemByID(ctx context.Context, itemID, ownerID string) (*domain.DraftRabItem, error)
	UpdateDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error
	DeleteDraftRabItem(ctx context.Context, itemID, ownerID string) error

	SaveExpense(ctx context.Context, expense domain.Expense, ownerID string) error
	FindExpenses(ctx context.Context, eventID, ownerID string) ([]domain.Expense, error)
	FindExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense, ownerID string) error
	DeleteExpense(ctx context.Context, expenseID, ownerID string) error

	// SummarizeExpenses aggregates estimated/actual/paid totals per event
	// across the whole tenant.
	SummarizeExpenses(ctx context.Context, ownerID string) ([]domain.EventExpenseTotals, error)
}

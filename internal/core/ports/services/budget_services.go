package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// BudgetSvcFacade covers the event cost plan (Draft RAB) and expenses.
type BudgetSvcFacade interface {
	CreateDraftRabItem(ctx context.Context, actor *domain.User, eventID string, req dto.DraftRabItemForm) (*domain.DraftRabItem, error)
	UpdateDraftRabItem(ctx context.Context, actor *domain.User, itemID string, req dto.DraftRabItemForm) (*domain.DraftRabItem, error)
	DeleteDraftRabItem(ctx context.Context, actor *domain.User, itemID string) error
	ListDraftRabItems(ctx context.Context, actor *domain.User, eventID string) ([]domain.DraftRabItem, error)

	CreateExpense(ctx context.Context, actor *domain.User, req dto.ExpenseForm) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, actor *domain.User, expenseID string, req dto.UpdateExpenseForm) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, actor *domain.User, expenseID string) error
	ListExpenses(ctx context.Context, actor *domain.User, eventID string) ([]domain.Expense, error)

	// BudgetSummary computes the event budget panel: derived profit/ceiling
	// figures plus RAB and expense totals.
	BudgetSummary(ctx context.Context, actor *domain.User, eventID string) (*dto.EventBudgetSummary, error)
}

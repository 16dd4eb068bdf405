package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

type budgetService struct {
	budgetRepo portsrepo.BudgetRepository
	eventRepo  portsrepo.EventRepository
	cache      *viewcache.Cache
}

// NewBudgetService creates the cost-plan and expense service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, eventRepo portsrepo.EventRepository, cache *viewcache.Cache) ports.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, eventRepo: eventRepo, cache: cache}
}

var _ ports.BudgetSvcFacade = (*budgetService)(nil)

// applyDraftRabForm maps the form onto a cost-plan line and recomputes the
// derived totals. Client-submitted totals are never trusted.
func applyDraftRabForm(d *domain.DraftRabItem, req dto.DraftRabItemForm) {
	d.Category = req.Category
	d.Item = req.Item
	d.Specification = req.Specification
	d.Qty = utils.IntOrZero(req.Qty)
	d.QtyType = req.QtyType
	d.Frequency = utils.IntOrZero(req.Frequency)
	d.FrequencyType = req.FrequencyType
	d.UnitPriceRab = utils.DecimalOrZero(req.UnitPriceRab)
	d.UnitPriceReal = utils.DecimalOrZero(req.UnitPriceReal)
	d.Remarks = req.Remarks
	d.ComputeTotals()
}

func (s *budgetService) CreateDraftRabItem(ctx context.Context, actor *domain.User, eventID string, req dto.DraftRabItemForm) (*domain.DraftRabItem, error) {
	owner := actor.EffectiveOwnerID()

	item := domain.DraftRabItem{
		DraftRabItemID: uuid.NewString(),
		EventID:        eventID,
	}
	applyDraftRabForm(&item, req)

	if err := s.budgetRepo.SaveDraftRabItem(ctx, item, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return &item, nil
}

func (s *budgetService) UpdateDraftRabItem(ctx context.Context, actor *domain.User, itemID string, req dto.DraftRabItemForm) (*domain.DraftRabItem, error) {
	owner := actor.EffectiveOwnerID()
	item, err := s.budgetRepo.FindDraftRabItemByID(ctx, itemID, owner)
	if err != nil {
		return nil, err
	}

	applyDraftRabForm(item, req)
	if err := s.budgetRepo.UpdateDraftRabItem(ctx, *item, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return item, nil
}

func (s *budgetService) DeleteDraftRabItem(ctx context.Context, actor *domain.User, itemID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.budgetRepo.DeleteDraftRabItem(ctx, itemID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *budgetService) ListDraftRabItems(ctx context.Context, actor *domain.User, eventID string) ([]domain.DraftRabItem, error) {
	return s.budgetRepo.FindDraftRabItems(ctx, eventID, actor.EffectiveOwnerID())
}

func (s *budgetService) CreateExpense(ctx context.Context, actor *domain.User, req dto.ExpenseForm) (*domain.Expense, error) {
	owner := actor.EffectiveOwnerID()

	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		EventID:         req.EventID,
		Description:     req.Description,
		Category:        req.Category,
		EstimatedAmount: utils.DecimalOrZero(req.EstimatedAmount),
		ActualAmount:    utils.DecimalOrZero(req.ActualAmount),
		Status:          domain.ExpenseStatusUnpaid,
		Date:            time.Now(),
	}
	if status := domain.ExpenseStatus(req.Status); status.IsValid() {
		expense.Status = status
	}
	if req.VendorID != "" {
		vendorID := req.VendorID
		expense.VendorID = &vendorID
	}

	if err := s.budgetRepo.SaveExpense(ctx, expense, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return &expense, nil
}

func (s *budgetService) UpdateExpense(ctx context.Context, actor *domain.User, expenseID string, req dto.UpdateExpenseForm) (*domain.Expense, error) {
	owner := actor.EffectiveOwnerID()
	expense, err := s.budgetRepo.FindExpenseByID(ctx, expenseID, owner)
	if err != nil {
		return nil, err
	}

	// Partial update: only fields that parse overwrite stored values.
	if status := domain.ExpenseStatus(req.Status); status.IsValid() {
		expense.Status = status
	}
	if d := utils.DecimalPtr(req.EstimatedAmount); d != nil {
		expense.EstimatedAmount = *d
	}
	if d := utils.DecimalPtr(req.ActualAmount); d != nil {
		expense.ActualAmount = *d
	}

	if err := s.budgetRepo.UpdateExpense(ctx, *expense, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return expense, nil
}

func (s *budgetService) DeleteExpense(ctx context.Context, actor *domain.User, expenseID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.budgetRepo.DeleteExpense(ctx, expenseID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *budgetService) ListExpenses(ctx context.Context, actor *domain.User, eventID string) ([]domain.Expense, error) {
	return s.budgetRepo.FindExpenses(ctx, eventID, actor.EffectiveOwnerID())
}

func (s *budgetService) BudgetSummary(ctx context.Context, actor *domain.User, eventID string) (*dto.EventBudgetSummary, error) {
	owner := actor.EffectiveOwnerID()

	event, err := s.eventRepo.FindEventByID(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}
	items, err := s.budgetRepo.FindDraftRabItems(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}
	expenses, err := s.budgetRepo.FindExpenses(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	summary := dto.EventBudgetSummary{Event: dto.ToEventResponse(event)}
	for _, item := range items {
		summary.RabTotal = summary.RabTotal.Add(item.TotalPriceRab)
		summary.RabRealTotal = summary.RabRealTotal.Add(item.TotalPriceReal)
	}
	for _, x := range expenses {
		summary.EstimatedExpense = summary.EstimatedExpense.Add(x.EstimatedAmount)
		summary.ActualExpense = summary.ActualExpense.Add(x.ActualAmount)
		if x.Status == domain.ExpenseStatusPaid {
			summary.PaidExpense = summary.PaidExpense.Add(x.ActualAmount)
		} else {
			summary.UnpaidExpense = summary.UnpaidExpense.Add(x.ActualAmount)
		}
	}
	summary.RemainingBudget = event.MaxBudget().Sub(summary.ActualExpense)
	return &summary, nil
}

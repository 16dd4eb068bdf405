package services

import (
	"context"
	"log/slog"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
)

const (
	panelView   = "panel"
	financeView = "finance"
)

type dashboardService struct {
	eventRepo  portsrepo.EventRepository
	taskRepo   portsrepo.TaskRepository
	userRepo   portsrepo.UserRepository
	vendorRepo portsrepo.VendorRepository
	budgetRepo portsrepo.BudgetRepository
	cache      *viewcache.Cache
}

// NewDashboardService creates the page-aggregate service. Results are
// cached per tenant; every mutating service invalidates the tenant's
// entries, so the TTL only bounds staleness across processes restarts.
func NewDashboardService(repos portsrepo.Container, cache *viewcache.Cache) ports.DashboardSvcFacade {
	return &dashboardService{
		eventRepo:  repos.Event,
		taskRepo:   repos.Task,
		userRepo:   repos.User,
		vendorRepo: repos.Vendor,
		budgetRepo: repos.Budget,
		cache:      cache,
	}
}

var _ ports.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) PanelStats(ctx context.Context, actor *domain.User) (*dto.PanelStats, error) {
	owner := actor.EffectiveOwnerID()
	key := viewcache.Key(owner, panelView)
	if v, ok := s.cache.Get(key); ok {
		if stats, ok := v.(*dto.PanelStats); ok {
			return stats, nil
		}
	}

	events, err := s.eventRepo.FindEvents(ctx, owner)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.FindTasks(ctx, owner)
	if err != nil {
		return nil, err
	}
	team, err := s.userRepo.FindTeam(ctx, owner)
	if err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepo.FindVendors(ctx, owner)
	if err != nil {
		return nil, err
	}

	stats := &dto.PanelStats{
		TotalEvents: len(events),
		TotalTasks:  len(tasks),
		TeamSize:    len(team),
		VendorCount: len(vendors),
	}
	byStatus := map[domain.EventStatus]int{}
	for _, e := range events {
		byStatus[e.Status]++
	}
	stats.ActiveEvents = byStatus[domain.EventStatusActive]
	for _, status := range []domain.EventStatus{
		domain.EventStatusDraft, domain.EventStatusActive, domain.EventStatusCompleted,
	} {
		stats.EventStats = append(stats.EventStats, dto.StatusCount{
			Name:  string(status),
			Total: byStatus[status],
		})
	}
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending {
			stats.PendingTasks++
		}
	}

	s.cache.Set(key, stats)
	middleware.GetLoggerFromCtx(ctx).Debug("panel stats computed", slog.String("ownerID", owner))
	return stats, nil
}

func (s *dashboardService) FinanceReport(ctx context.Context, actor *domain.User) (*dto.FinanceReport, error) {
	owner := actor.EffectiveOwnerID()
	key := viewcache.Key(owner, financeView)
	if v, ok := s.cache.Get(key); ok {
		if report, ok := v.(*dto.FinanceReport); ok {
			return report, nil
		}
	}

	rows, err := s.budgetRepo.SummarizeExpenses(ctx, owner)
	if err != nil {
		return nil, err
	}
	report := &dto.FinanceReport{Rows: rows}
	s.cache.Set(key, report)
	return report, nil
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

type eventService struct {
	eventRepo portsrepo.EventRepository
	cache     *viewcache.Cache
}

// NewEventService creates the event management service.
func NewEventService(eventRepo portsrepo.EventRepository, cache *viewcache.Cache) ports.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, cache: cache}
}

var _ ports.EventSvcFacade = (*eventService)(nil)

// applyEventForm maps the form onto an event, coercing sloppy input: bad
// numbers become zero, a bad margin falls back to the default, a bad date
// becomes null and an unknown status is ignored.
func applyEventForm(e *domain.Event, req dto.EventForm) {
	e.Name = req.Name
	e.ClientName = req.ClientName
	e.Location = req.Location
	e.Date = utils.DateOrNil(req.Date)
	e.TotalBudget = utils.DecimalOrZero(req.TotalBudget)
	e.TargetMargin = utils.DecimalOrDefault(req.TargetMargin, domain.DefaultTargetMargin)
	if status := domain.EventStatus(req.Status); status.IsValid() {
		e.Status = status
	}
}

func (s *eventService) CreateEvent(ctx context.Context, actor *domain.User, req dto.EventForm) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	owner := actor.EffectiveOwnerID()
	now := time.Now()

	event := domain.Event{
		EventID: uuid.NewString(),
		Status:  domain.EventStatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     owner,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	applyEventForm(&event, req)

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	logger.Info("event created", slog.String("eventID", event.EventID))
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actor *domain.User, eventID string, req dto.EventForm) (*domain.Event, error) {
	owner := actor.EffectiveOwnerID()
	event, err := s.eventRepo.FindEventByID(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	applyEventForm(event, req)
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = actor.UserID

	if err := s.eventRepo.UpdateEvent(ctx, *event, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actor *domain.User, eventID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.eventRepo.DeleteEvent(ctx, eventID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, actor *domain.User, eventID string) (*domain.Event, error) {
	return s.eventRepo.FindEventByID(ctx, eventID, actor.EffectiveOwnerID())
}

func (s *eventService) ListEvents(ctx context.Context, actor *domain.User) ([]domain.Event, error) {
	return s.eventRepo.FindEvents(ctx, actor.EffectiveOwnerID())
}

func (s *eventService) AddEventVendor(ctx context.Context, actor *domain.User, eventID string, req dto.EventVendorForm) (*domain.EventVendor, error) {
	owner := actor.EffectiveOwnerID()

	ev := domain.EventVendor{
		EventVendorID: uuid.NewString(),
		EventID:       eventID,
		VendorID:      req.VendorID,
		Role:          req.Role,
		AgreedCost:    utils.DecimalOrZero(req.AgreedCost),
		Status:        domain.EventVendorStatusPending,
	}
	if status := domain.EventVendorStatus(req.Status); status.IsValid() {
		ev.Status = status
	}

	if err := s.eventRepo.AddEventVendor(ctx, ev, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return &ev, nil
}

func (s *eventService) UpdateEventVendor(ctx context.Context, actor *domain.User, eventVendorID string, req dto.UpdateEventVendorForm) error {
	owner := actor.EffectiveOwnerID()

	ev := domain.EventVendor{
		EventVendorID: eventVendorID,
		Role:          req.Role,
		AgreedCost:    utils.DecimalOrZero(req.AgreedCost),
		Status:        domain.EventVendorStatusPending,
	}
	if status := domain.EventVendorStatus(req.Status); status.IsValid() {
		ev.Status = status
	}

	if err := s.eventRepo.UpdateEventVendor(ctx, ev, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *eventService) DeleteEventVendor(ctx context.Context, actor *domain.User, eventVendorID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.eventRepo.DeleteEventVendor(ctx, eventVendorID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *eventService) ListEventVendors(ctx context.Context, actor *domain.User, eventID string) ([]domain.EventVendor, error) {
	return s.eventRepo.FindEventVendors(ctx, eventID, actor.EffectiveOwnerID())
}

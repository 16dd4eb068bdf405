package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// EventSvcFacade covers events and their vendor links.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, actor *domain.User, req dto.EventForm) (*domain.Event, error)
	UpdateEvent(ctx context.Context, actor *domain.User, eventID string, req dto.EventForm) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actor *domain.User, eventID string) error
	GetEvent(ctx context.Context, actor *domain.User, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, actor *domain.User) ([]domain.Event, error)

	AddEventVendor(ctx context.Context, actor *domain.User, eventID string, req dto.EventVendorForm) (*domain.EventVendor, error)
	UpdateEventVendor(ctx context.Context, actor *domain.User, eventVendorID string, req dto.UpdateEventVendorForm) error
	DeleteEventVendor(ctx context.Context, actor *domain.User, eventVendorID string) error
	ListEventVendors(ctx context.Context, actor *domain.User, eventID string) ([]domain.EventVendor, error)
}

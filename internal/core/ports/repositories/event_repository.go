package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// EventRepository defines persistence operations for events and their
// vendor links. Every read and mutation is owner-scoped: ownerID is the
// effective tenant root, and a row outside that scope behaves exactly like
// a missing row (apperrors.ErrNotFound).
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID, ownerID string) (*domain.Event, error)
	FindEvents(ctx context.Context, ownerID string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event, ownerID string) error
	DeleteEvent(ctx context.Context, eventID, ownerID string) error

	AddEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error
	FindEventVendors(ctx context.Context, eventID, ownerID string) ([]domain.EventVendor, error)
	UpdateEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error
	DeleteEventVendor(ctx context.Context, eventVendorID, ownerID string) error
}

package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// VendorRepository defines persistence operations for the vendor directory.
// Owner-scoped like EventRepository.
type VendorRepository interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID, ownerID string) (*domain.Vendor, error)
	FindVendors(ctx context.Context, ownerID string) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor, ownerID string) error
	DeleteVendor(ctx context.Context, vendorID, ownerID string) error
}

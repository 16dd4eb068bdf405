package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// VendorSvcFacade covers the vendor directory.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, actor *domain.User, req dto.VendorForm) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, actor *domain.User, vendorID string, req dto.VendorForm) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, actor *domain.User, vendorID string) error
	ListVendors(ctx context.Context, actor *domain.User) ([]domain.Vendor, error)
}

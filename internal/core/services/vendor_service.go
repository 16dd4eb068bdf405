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

type vendorService struct {
	vendorRepo portsrepo.VendorRepository
	cache      *viewcache.Cache
}

// NewVendorService creates the vendor directory service.
func NewVendorService(vendorRepo portsrepo.VendorRepository, cache *viewcache.Cache) ports.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo, cache: cache}
}

var _ ports.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, actor *domain.User, req dto.VendorForm) (*domain.Vendor, error) {
	owner := actor.EffectiveOwnerID()
	now := time.Now()

	vendor := domain.Vendor{
		VendorID:    uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		ContactInfo: req.ContactInfo,
		AverageCost: utils.DecimalOrZero(req.AverageCost),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     owner,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return &vendor, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, actor *domain.User, vendorID string, req dto.VendorForm) (*domain.Vendor, error) {
	owner := actor.EffectiveOwnerID()
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID, owner)
	if err != nil {
		return nil, err
	}

	vendor.Name = req.Name
	vendor.Category = req.Category
	vendor.ContactInfo = req.ContactInfo
	vendor.AverageCost = utils.DecimalOrZero(req.AverageCost)
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = actor.UserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, actor *domain.User, vendorID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.vendorRepo.DeleteVendor(ctx, vendorID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *vendorService) ListVendors(ctx context.Context, actor *domain.User) ([]domain.Vendor, error) {
	return s.vendorRepo.FindVendors(ctx, actor.EffectiveOwnerID())
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

type PgxVendorRepository struct {
	BaseRepository
}

func NewVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepository {
	return &PgxVendorRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepository = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, category, contact_info, average_cost,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(
		&v.VendorID,
		&v.Name,
		&v.Category,
		&v.ContactInfo,
		&v.AverageCost,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan vendor row: %w", err)
	}
	return &v, nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_id, name, category, contact_info, average_cost,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.Category,
		vendor.ContactInfo,
		vendor.AverageCost,
		vendor.CreatedAt,
		vendor.CreatedBy,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	return mapWriteError(err, "save vendor")
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID, ownerID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1 AND created_by = $2;`
	return scanVendor(r.Pool.QueryRow(ctx, query, vendorID, ownerID))
}

func (r *PgxVendorRepository) FindVendors(ctx context.Context, ownerID string) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE created_by = $1 ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, *v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}
	return vendors, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor, ownerID string) error {
	query := `
		UPDATE vendors
		SET name = $1, category = $2, contact_info = $3, average_cost = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE vendor_id = $7 AND created_by = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vendor.Name,
		vendor.Category,
		vendor.ContactInfo,
		vendor.AverageCost,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
		vendor.VendorID,
		ownerID,
	)
	if err != nil {
		return mapWriteError(err, "update vendor")
	}
	return requireRow(tag, "vendor")
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID, ownerID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM vendors WHERE vendor_id = $1 AND created_by = $2;`, vendorID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return requireRow(tag, "vendor")
}

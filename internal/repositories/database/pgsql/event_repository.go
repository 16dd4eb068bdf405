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

type PgxEventRepository struct {
	BaseRepository
}

func NewEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

const eventColumns = `event_id, name, client_name, location, date, total_budget, target_margin,
	status, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.EventID,
		&e.Name,
		&e.ClientName,
		&e.Location,
		&e.Date,
		&e.TotalBudget,
		&e.TargetMargin,
		&e.Status,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}
	return &e, nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
		INSERT INTO events (event_id, name, client_name, location, date, total_budget, target_margin,
			status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		event.EventID,
		event.Name,
		event.ClientName,
		event.Location,
		event.Date,
		event.TotalBudget,
		event.TargetMargin,
		event.Status,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	return mapWriteError(err, "save event")
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1 AND created_by = $2;`
	return scanEvent(r.Pool.QueryRow(ctx, query, eventID, ownerID))
}

func (r *PgxEventRepository) FindEvents(ctx context.Context, ownerID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE created_by = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event, ownerID string) error {
	query := `
		UPDATE events
		SET name = $1, client_name = $2, location = $3, date = $4, total_budget = $5,
			target_margin = $6, status = $7, last_updated_at = $8, last_updated_by = $9
		WHERE event_id = $10 AND created_by = $11;
	`
	tag, err := r.Pool.Exec(ctx, query,
		event.Name,
		event.ClientName,
		event.Location,
		event.Date,
		event.TotalBudget,
		event.TargetMargin,
		event.Status,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
		event.EventID,
		ownerID,
	)
	if err != nil {
		return mapWriteError(err, "update event")
	}
	return requireRow(tag, "event")
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID, ownerID string) error {
	// Child rows (vendors, expenses, tasks, draft RAB) cascade.
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM events WHERE event_id = $1 AND created_by = $2;`, eventID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireRow(tag, "event")
}

func (r *PgxEventRepository) AddEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error {
	// The INSERT only fires when both the event and the vendor belong to the
	// caller's tenant; otherwise zero rows and ErrNotFound.
	query := `
		INSERT INTO event_vendors (event_vendor_id, event_id, vendor_id, role, agreed_cost, status)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (SELECT 1 FROM events WHERE event_id = $2 AND created_by = $7)
		  AND EXISTS (SELECT 1 FROM vendors WHERE vendor_id = $3 AND created_by = $7);
	`
	tag, err := r.Pool.Exec(ctx, query,
		ev.EventVendorID, ev.EventID, ev.VendorID, ev.Role, ev.AgreedCost, ev.Status, ownerID)
	if err != nil {
		return mapWriteError(err, "add event vendor")
	}
	return requireRow(tag, "event or vendor")
}

func (r *PgxEventRepository) FindEventVendors(ctx context.Context, eventID, ownerID string) ([]domain.EventVendor, error) {
	query := `
		SELECT ev.event_vendor_id, ev.event_id, ev.vendor_id, v.name, ev.role, ev.agreed_cost, ev.status
		FROM event_vendors ev
		JOIN events e ON e.event_id = ev.event_id
		JOIN vendors v ON v.vendor_id = ev.vendor_id
		WHERE ev.event_id = $1 AND e.created_by = $2
		ORDER BY v.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event vendors: %w", err)
	}
	defer rows.Close()

	links := []domain.EventVendor{}
	for rows.Next() {
		var ev domain.EventVendor
		if err := rows.Scan(&ev.EventVendorID, &ev.EventID, &ev.VendorID, &ev.VendorName,
			&ev.Role, &ev.AgreedCost, &ev.Status); err != nil {
			return nil, fmt.Errorf("failed to scan event vendor row: %w", err)
		}
		links = append(links, ev)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event vendor rows: %w", rows.Err())
	}
	return links, nil
}

func (r *PgxEventRepository) UpdateEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error {
	query := `
		UPDATE event_vendors ev
		SET role = $1, agreed_cost = $2, status = $3
		FROM events e
		WHERE e.event_id = ev.event_id AND ev.event_vendor_id = $4 AND e.created_by = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, ev.Role, ev.AgreedCost, ev.Status, ev.EventVendorID, ownerID)
	if err != nil {
		return mapWriteError(err, "update event vendor")
	}
	return requireRow(tag, "event vendor")
}

func (r *PgxEventRepository) DeleteEventVendor(ctx context.Context, eventVendorID, ownerID string) error {
	query := `
		DELETE FROM event_vendors ev
		USING events e
		WHERE e.event_id = ev.event_id AND ev.event_vendor_id = $1 AND e.created_by = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, eventVendorID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event vendor: %w", err)
	}
	return requireRow(tag, "event vendor")
}

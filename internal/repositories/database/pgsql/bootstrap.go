package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

type PgxSeeder struct {
	BaseRepository
}

func NewSeeder(pool *pgxpool.Pool) portsrepo.Seeder {
	return &PgxSeeder{BaseRepository{Pool: pool}}
}

var _ portsrepo.Seeder = (*PgxSeeder)(nil)

// Bootstrap inserts the admin account and a small demo workspace (two
// vendors, one active event with a booked vendor, a paid expense and two
// open tasks). It is a no-op when the admin username already exists, so
// running it repeatedly is safe.
func (s *PgxSeeder) Bootstrap(ctx context.Context, adminUsername, adminPasswordHash string) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin bootstrap transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`, adminUsername).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now()
	adminID := uuid.NewString()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, username, email, password_hash, name, role, manager_id,
			is_first_login, is_banned, phone_number, gender, created_at, updated_at)
		VALUES ($1, $2, NULL, $3, 'Administrator', $4, NULL, false, false, '', '', $5, $5);
	`, adminID, adminUsername, adminPasswordHash, domain.RoleAdmin, now)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	hotelID := uuid.NewString()
	cateringID := uuid.NewString()
	if err := seedVendor(ctx, tx, hotelID, "Hotel Mulia", "Venue", "reservations@hotelmulia.example", "75000000", adminID, now); err != nil {
		return err
	}
	if err := seedVendor(ctx, tx, cateringID, "ABC Catering", "Catering", "sales@abccatering.example", "25000000", adminID, now); err != nil {
		return err
	}

	eventID := uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO events (event_id, name, client_name, location, date, total_budget, target_margin,
			status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, 'Wedding Alice & Bob', 'Alice', 'Jakarta', $2, $3, $4, $5, $6, $7, $6, $7);
	`, eventID, now.AddDate(0, 2, 0),
		decimal.NewFromInt(150000000), domain.DefaultTargetMargin,
		domain.EventStatusActive, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to seed demo event: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO event_vendors (event_vendor_id, event_id, vendor_id, role, agreed_cost, status)
		VALUES ($1, $2, $3, 'Venue', $4, $5);
	`, uuid.NewString(), eventID, hotelID, decimal.NewFromInt(70000000), domain.EventVendorStatusPending)
	if err != nil {
		return fmt.Errorf("failed to seed demo event vendor: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO expenses (expense_id, event_id, description, category,
			estimated_amount, actual_amount, status, date, vendor_id)
		VALUES ($1, $2, 'Venue down payment', 'Venue', $3, $4, $5, $6, $7);
	`, uuid.NewString(), eventID,
		decimal.NewFromInt(35000000), decimal.NewFromInt(35000000),
		domain.ExpenseStatusPaid, now, hotelID)
	if err != nil {
		return fmt.Errorf("failed to seed demo expense: %w", err)
	}

	tasks := []struct {
		title    string
		priority domain.TaskPriority
		dueIn    int
	}{
		{"Confirm catering menu", domain.TaskPriorityHigh, 14},
		{"Send invitations to guest list", domain.TaskPriorityMedium, 30},
	}
	for _, t := range tasks {
		due := now.AddDate(0, 0, t.dueIn)
		_, err = tx.Exec(ctx, `
			INSERT INTO tasks (task_id, title, event_id, assignee_id, priority, status, due_date,
				created_at, updated_at)
			VALUES ($1, $2, $3, NULL, $4, $5, $6, $7, $7);
		`, uuid.NewString(), t.title, eventID, t.priority, domain.TaskStatusPending, due, now)
		if err != nil {
			return fmt.Errorf("failed to seed demo task: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bootstrap transaction: %w", err)
	}
	return nil
}

func seedVendor(ctx context.Context, tx pgx.Tx, id, name, category, contact, avgCost, ownerID string, now time.Time) error {
	cost, err := decimal.NewFromString(avgCost)
	if err != nil {
		return fmt.Errorf("invalid seed vendor cost: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO vendors (vendor_id, name, category, contact_info, average_cost,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $6, $7);
	`, id, name, category, contact, cost, now, ownerID)
	if err != nil {
		return fmt.Errorf("failed to seed vendor %s: %w", name, err)
	}
	return nil
}

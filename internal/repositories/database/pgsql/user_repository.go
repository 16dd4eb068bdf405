package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, password_hash, name, role, manager_id,
	is_first_login, is_banned, phone_number, gender, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.ManagerID,
		&u.IsFirstLogin,
		&u.IsBanned,
		&u.PhoneNumber,
		&u.Gender,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, name, role, manager_id,
			is_first_login, is_banned, phone_number, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.ManagerID,
		user.IsFirstLogin,
		user.IsBanned,
		user.PhoneNumber,
		user.Gender,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return mapWriteError(err, "save user")
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) FindTeam(ctx context.Context, ownerID string) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 OR manager_id = $1
		ORDER BY name ASC;
	`
	return r.queryUsers(ctx, query, ownerID)
}

func (r *PgxUserRepository) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name ASC;`
	return r.queryUsers(ctx, query)
}

func (r *PgxUserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, phone_number = $3, gender = $4, updated_at = $5
		WHERE user_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.Name, user.Email, user.PhoneNumber, user.Gender, time.Now(), user.UserID)
	if err != nil {
		return mapWriteError(err, "update profile")
	}
	return requireRow(tag, "user")
}

func (r *PgxUserRepository) UpdateCredentials(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error {
	query := `
		UPDATE users
		SET password_hash = $1, is_first_login = $2, updated_at = $3
		WHERE user_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, passwordHash, isFirstLogin, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	return requireRow(tag, "user")
}

func (r *PgxUserRepository) SetBanned(ctx context.Context, userID string, banned bool) error {
	query := `UPDATE users SET is_banned = $1, updated_at = $2 WHERE user_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, banned, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set ban flag: %w", err)
	}
	return requireRow(tag, "user")
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRow(tag, "user")
}

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

type PgxTemplateRepository struct {
	BaseRepository
}

func NewTemplateRepository(pool *pgxpool.Pool) portsrepo.TemplateRepository {
	return &PgxTemplateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TemplateRepository = (*PgxTemplateRepository)(nil)

const templateColumns = `template_id, title, category, content, created_at, updated_at`

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.TemplateID, &t.Title, &t.Category, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan template row: %w", err)
	}
	return &t, nil
}

func (r *PgxTemplateRepository) SaveTemplate(ctx context.Context, tpl domain.Template) error {
	query := `
		INSERT INTO templates (template_id, title, category, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		tpl.TemplateID, tpl.Title, tpl.Category, tpl.Content, tpl.CreatedAt, tpl.UpdatedAt)
	return mapWriteError(err, "save template")
}

func (r *PgxTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE template_id = $1;`
	return scanTemplate(r.Pool.QueryRow(ctx, query, templateID))
}

func (r *PgxTemplateRepository) FindTemplates(ctx context.Context) ([]domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY title ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", rows.Err())
	}
	return templates, nil
}

func (r *PgxTemplateRepository) UpdateTemplate(ctx context.Context, tpl domain.Template) error {
	query := `
		UPDATE templates
		SET title = $1, category = $2, content = $3, updated_at = $4
		WHERE template_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, tpl.Title, tpl.Category, tpl.Content, time.Now(), tpl.TemplateID)
	if err != nil {
		return mapWriteError(err, "update template")
	}
	return requireRow(tag, "template")
}

func (r *PgxTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return requireRow(tag, "template")
}

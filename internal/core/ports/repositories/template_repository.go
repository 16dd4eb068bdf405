package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// TemplateRepository defines persistence operations for document templates.
// Templates are a shared library and are not tenant-scoped.
type TemplateRepository interface {
	SaveTemplate(ctx context.Context, tpl domain.Template) error
	FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error)
	FindTemplates(ctx context.Context) ([]domain.Template, error)
	UpdateTemplate(ctx context.Context, tpl domain.Template) error
	DeleteTemplate(ctx context.Context, templateID string) error
}

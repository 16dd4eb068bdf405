package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// TemplateSvcFacade covers document templates and rendering them against an
// event.
type TemplateSvcFacade interface {
	CreateTemplate(ctx context.Context, actor *domain.User, req dto.TemplateForm) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, actor *domain.User, templateID string, req dto.TemplateForm) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, actor *domain.User, templateID string) error
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	// RenderForEvent substitutes the event's {{placeholder}} tokens into the
	// template content. The event lookup is tenant-scoped.
	RenderForEvent(ctx context.Context, actor *domain.User, templateID, eventID string) (*dto.RenderedDocument, error)
}

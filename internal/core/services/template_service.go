package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type templateService struct {
	templateRepo portsrepo.TemplateRepository
	eventRepo    portsrepo.EventRepository
}

// NewTemplateService creates the document-template service.
func NewTemplateService(templateRepo portsrepo.TemplateRepository, eventRepo portsrepo.EventRepository) ports.TemplateSvcFacade {
	return &templateService{templateRepo: templateRepo, eventRepo: eventRepo}
}

var _ ports.TemplateSvcFacade = (*templateService)(nil)

func (s *templateService) CreateTemplate(ctx context.Context, actor *domain.User, req dto.TemplateForm) (*domain.Template, error) {
	if err := requireOwnerRole(actor); err != nil {
		return nil, err
	}
	now := time.Now()
	tpl := domain.Template{
		TemplateID: uuid.NewString(),
		Title:      req.Title,
		Category:   req.Category,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.templateRepo.SaveTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, actor *domain.User, templateID string, req dto.TemplateForm) (*domain.Template, error) {
	if err := requireOwnerRole(actor); err != nil {
		return nil, err
	}
	tpl, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	tpl.Title = req.Title
	tpl.Category = req.Category
	tpl.Content = req.Content
	tpl.UpdatedAt = time.Now()
	if err := s.templateRepo.UpdateTemplate(ctx, *tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, actor *domain.User, templateID string) error {
	if err := requireOwnerRole(actor); err != nil {
		return err
	}
	return s.templateRepo.DeleteTemplate(ctx, templateID)
}

func (s *templateService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.templateRepo.FindTemplates(ctx)
}

func (s *templateService) RenderForEvent(ctx context.Context, actor *domain.User, templateID, eventID string) (*dto.RenderedDocument, error) {
	tpl, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindEventByID(ctx, eventID, actor.EffectiveOwnerID())
	if err != nil {
		return nil, err
	}

	content := tpl.Content
	if content == "" {
		content = "No content available."
	}

	date := ""
	if event.Date != nil {
		date = event.Date.Format("2 January 2006")
	}
	for token, value := range map[string]string{
		"{{eventName}}":   event.Name,
		"{{clientName}}":  event.ClientName,
		"{{date}}":        date,
		"{{location}}":    event.Location,
		"{{totalBudget}}": event.TotalBudget.String(),
	} {
		content = strings.ReplaceAll(content, token, value)
	}

	return &dto.RenderedDocument{Title: tpl.Title, Content: content}, nil
}

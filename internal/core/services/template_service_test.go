package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/core/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

func TestRenderForEvent_SubstitutesTokens(t *testing.T) {
	date := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	templateRepo := &MockTemplateRepository{
		FindTemplateByIDFn: func(ctx context.Context, templateID string) (*domain.Template, error) {
			return &domain.Template{
				TemplateID: templateID,
				Title:      "Service Agreement",
				Content:    "Agreement for {{eventName}} with {{clientName}} on {{date}} at {{location}}. Budget: {{totalBudget}}.",
			}, nil
		},
	}
	eventRepo := &MockEventRepository{
		FindEventByIDFn: func(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
			return &domain.Event{
				EventID:     eventID,
				Name:        "Wedding Alice & Bob",
				ClientName:  "Alice",
				Location:    "Jakarta",
				Date:        &date,
				TotalBudget: decimal.NewFromInt(150000000),
			}, nil
		},
	}
	svc := services.NewTemplateService(templateRepo, eventRepo)

	doc, err := svc.RenderForEvent(context.Background(), managerActor(), "tpl-1", "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "Service Agreement", doc.Title)
	assert.Equal(t,
		"Agreement for Wedding Alice & Bob with Alice on 3 October 2026 at Jakarta. Budget: 150000000.",
		doc.Content)
}

func TestRenderForEvent_EmptyContentFallback(t *testing.T) {
	templateRepo := &MockTemplateRepository{
		FindTemplateByIDFn: func(ctx context.Context, templateID string) (*domain.Template, error) {
			return &domain.Template{TemplateID: templateID, Title: "Blank"}, nil
		},
	}
	eventRepo := &MockEventRepository{
		FindEventByIDFn: func(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
			return &domain.Event{EventID: eventID, Name: "X"}, nil
		},
	}
	svc := services.NewTemplateService(templateRepo, eventRepo)

	doc, err := svc.RenderForEvent(context.Background(), managerActor(), "tpl-1", "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "No content available.", doc.Content)
}

func TestRenderForEvent_EventScopedToTenant(t *testing.T) {
	templateRepo := &MockTemplateRepository{
		FindTemplateByIDFn: func(ctx context.Context, templateID string) (*domain.Template, error) {
			return &domain.Template{TemplateID: templateID, Content: "x"}, nil
		},
	}
	eventRepo := &MockEventRepository{
		FindEventByIDFn: func(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
			assert.Equal(t, "manager-1", ownerID)
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewTemplateService(templateRepo, eventRepo)

	_, err := svc.RenderForEvent(context.Background(), staffActor("manager-1"), "tpl-1", "foreign-evt")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateTemplate_StaffForbidden(t *testing.T) {
	svc := services.NewTemplateService(&MockTemplateRepository{}, &MockEventRepository{})

	_, err := svc.CreateTemplate(context.Background(), staffActor("manager-1"), dto.TemplateForm{Title: "T"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type templateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

func newTemplateHandler(ts portssvc.TemplateSvcFacade) *templateHandler {
	return &templateHandler{templateService: ts}
}

// registerTemplateRoutes sets up the document template library and the
// per-event document rendering.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/templates")
	{
		templates.GET("", h.listTemplates)
		templates.POST("", h.createTemplate)
		templates.PUT("/:id", h.updateTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
	}

	rg.GET("/events/:id/documents/:templateID", h.renderDocument)
}

func (h *templateHandler) listTemplates(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *templateHandler) createTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TemplateForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	tpl, err := h.templateService.CreateTemplate(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *templateHandler) updateTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TemplateForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	tpl, err := h.templateService.UpdateTemplate(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *templateHandler) deleteTemplate(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.templateService.DeleteTemplate(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// renderDocument substitutes the event's details into the template and
// returns the finished document.
func (h *templateHandler) renderDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	doc, err := h.templateService.RenderForEvent(c.Request.Context(), actor, c.Param("templateID"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

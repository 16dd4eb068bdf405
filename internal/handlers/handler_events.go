package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes sets up event CRUD and the event-vendor links.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.createEvent)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)

		events.GET("/:id/vendors", h.listEventVendors)
		events.POST("/:id/vendors", h.addEventVendor)
	}

	links := rg.Group("/event-vendors")
	{
		links.PUT("/:id", h.updateEventVendor)
		links.DELETE("/:id", h.deleteEventVendor)
	}
}

func (h *eventHandler) listEvents(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	events, err := h.eventService.ListEvents(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

func (h *eventHandler) createEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.EventForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *eventHandler) getEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.EventForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *eventHandler) listEventVendors(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	links, err := h.eventService.ListEventVendors(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": links})
}

func (h *eventHandler) addEventVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.EventVendorForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	link, err := h.eventService.AddEventVendor(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *eventHandler) updateEventVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateEventVendorForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.eventService.UpdateEventVendor(c.Request.Context(), actor, c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *eventHandler) deleteEventVendor(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEventVendor(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes sets up task routes. The per-event listing lives under
// /events/:id/tasks next to the other event sub-resources.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}

	rg.GET("/events/:id/tasks", h.listTasksByEvent)
}

func (h *taskHandler) listTasks(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasks(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *taskHandler) listTasksByEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasksByEvent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *taskHandler) createTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TaskForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *taskHandler) updateTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TaskForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

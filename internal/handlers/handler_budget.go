package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
	exportService portssvc.ExportSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, xs portssvc.ExportSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs, exportService: xs}
}

// registerBudgetRoutes sets up the cost plan (Draft RAB), expenses and the
// per-event budget panel.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newBudgetHandler(budgetService, exportService)

	events := rg.Group("/events/:id")
	{
		events.GET("/budget", h.budgetSummary)
		events.GET("/rab", h.listDraftRabItems)
		events.POST("/rab", h.createDraftRabItem)
		events.GET("/rab/export", h.exportRab)
		events.GET("/expenses", h.listExpenses)
	}

	rab := rg.Group("/rab-items")
	{
		rab.PUT("/:id", h.updateDraftRabItem)
		rab.DELETE("/:id", h.deleteDraftRabItem)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *budgetHandler) budgetSummary(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	summary, err := h.budgetService.BudgetSummary(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *budgetHandler) listDraftRabItems(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.budgetService.ListDraftRabItems(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *budgetHandler) createDraftRabItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.DraftRabItemForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := h.budgetService.CreateDraftRabItem(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *budgetHandler) updateDraftRabItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.DraftRabItemForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := h.budgetService.UpdateDraftRabItem(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *budgetHandler) deleteDraftRabItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.budgetService.DeleteDraftRabItem(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// exportRab streams the cost plan as an XLSX attachment.
func (h *budgetHandler) exportRab(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	data, fileName, err := h.exportService.RabWorkbook(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *budgetHandler) listExpenses(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	expenses, err := h.budgetService.ListExpenses(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *budgetHandler) createExpense(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	expense, err := h.budgetService.CreateExpense(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *budgetHandler) updateExpense(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	expense, err := h.budgetService.UpdateExpense(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *budgetHandler) deleteExpense(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.budgetService.DeleteExpense(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes sets up the page-aggregate endpoints backing the
// dashboard panel and the finance report.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/panel-stats", h.panelStats)
		dashboard.GET("/finance-report", h.financeReport)
	}
}

func (h *dashboardHandler) panelStats(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	stats, err := h.dashboardService.PanelStats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *dashboardHandler) financeReport(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	report, err := h.dashboardService.FinanceReport(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

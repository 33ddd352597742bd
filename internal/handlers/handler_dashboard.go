package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the home-screen aggregates.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard", h.summary)
}

// summary godoc
// @Summary Get dashboard aggregates
// @Description Worker and site counts plus recent payments, recomputed from current data on every call.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

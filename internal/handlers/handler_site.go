package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// siteHandler handles HTTP requests related to construction sites.
type siteHandler struct {
	siteService       portssvc.SiteSvcFacade
	assignmentService portssvc.AssignmentSvcFacade
}

func newSiteHandler(ss portssvc.SiteSvcFacade, as portssvc.AssignmentSvcFacade) *siteHandler {
	return &siteHandler{siteService: ss, assignmentService: as}
}

// registerSiteRoutes registers routes related to sites.
func registerSiteRoutes(rg *gin.RouterGroup, siteService portssvc.SiteSvcFacade, assignmentService portssvc.AssignmentSvcFacade) {
	h := newSiteHandler(siteService, assignmentService)

	sites := rg.Group("/sites")
	{
		sites.POST("", h.createSite)
		sites.GET("", h.listSites)
		sites.GET("/:id", h.getSite)
		sites.PUT("/:id", h.updateSite)
		sites.DELETE("/:id", h.deleteSite)
		sites.GET("/:id/workers", h.listWorkersForSite)
	}
}

// createSite godoc
// @Summary Add a new site
// @Tags sites
// @Accept json
// @Produce json
// @Param site body dto.CreateSiteRequest true "Site details"
// @Success 201 {object} dto.SiteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites [post]
func (h *siteHandler) createSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSiteResponse(site))
}

// listSites godoc
// @Summary List sites
// @Description Lists sites, optionally filtered by status or a search query.
// @Tags sites
// @Produce json
// @Param status query string false "Filter by status (ACTIVE, COMPLETED, ON_HOLD)"
// @Param q query string false "Search by name, address or client"
// @Success 200 {object} dto.ListSitesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites [get]
func (h *siteHandler) listSites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if q := c.Query("q"); q != "" {
		sites, err := h.siteService.SearchSites(c.Request.Context(), q)
		if err != nil {
			logger.Error("Failed to search sites", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search sites"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListSitesResponse(sites))
		return
	}

	var status *domain.SiteStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.SiteStatus(raw)
		status = &s
	}

	sites, err := h.siteService.ListSites(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list sites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSitesResponse(sites))
}

// getSite godoc
// @Summary Get a site by ID
// @Description Retrieves a site with its current worker headcount.
// @Tags sites
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} dto.SiteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites/{id} [get]
func (h *siteHandler) getSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	site, err := h.siteService.GetSiteByID(c.Request.Context(), siteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		logger.Error("Failed to get site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve site"})
		return
	}

	resp := dto.ToSiteResponse(site)
	if count, err := h.siteService.WorkerCountForSite(c.Request.Context(), siteID); err == nil {
		resp.WorkerCount = &count
	}

	c.JSON(http.StatusOK, resp)
}

// updateSite godoc
// @Summary Update a site
// @Tags sites
// @Accept json
// @Produce json
// @Param id path int true "Site ID"
// @Param site body dto.UpdateSiteRequest true "Fields to update"
// @Success 200 {object} dto.SiteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites/{id} [put]
func (h *siteHandler) updateSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	site, err := h.siteService.UpdateSite(c.Request.Context(), siteID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update site", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSiteResponse(site))
}

// deleteSite godoc
// @Summary Delete a site
// @Description Deletes a site. Payments referencing the site keep their rows with the site link cleared.
// @Tags sites
// @Param id path int true "Site ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites/{id} [delete]
func (h *siteHandler) deleteSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.siteService.DeleteSite(c.Request.Context(), siteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		logger.Error("Failed to delete site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listWorkersForSite godoc
// @Summary List workers currently assigned to a site
// @Tags sites
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} dto.ListWorkersResponse
// @Security BearerAuth
// @Router /sites/{id}/workers [get]
func (h *siteHandler) listWorkersForSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workers, err := h.assignmentService.GetWorkersForSite(c.Request.Context(), siteID)
	if err != nil {
		logger.Error("Failed to list workers for site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers for site"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}

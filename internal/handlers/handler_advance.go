package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// advanceHandler handles HTTP requests related to cash advances.
type advanceHandler struct {
	advanceService portssvc.AdvanceSvcFacade
}

func newAdvanceHandler(as portssvc.AdvanceSvcFacade) *advanceHandler {
	return &advanceHandler{advanceService: as}
}

// registerAdvanceRoutes registers routes related to advances.
func registerAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceSvcFacade) {
	h := newAdvanceHandler(advanceService)

	advances := rg.Group("/advances")
	{
		advances.POST("", h.createAdvance)
		advances.GET("", h.listAdvances)
		advances.GET("/:id", h.getAdvance)
		advances.PUT("/:id", h.updateAdvance)
		advances.DELETE("/:id", h.deleteAdvance)
		advances.POST("/settle", h.settleAdvances)
	}

	rg.GET("/workers/:id/advances", h.listAdvancesForWorker)
	rg.GET("/workers/:id/advances/unsettled-total", h.unsettledTotalForWorker)
}

// createAdvance godoc
// @Summary Record a cash advance
// @Tags advances
// @Accept json
// @Produce json
// @Param advance body dto.CreateAdvanceRequest true "Advance details"
// @Success 201 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances [post]
func (h *advanceHandler) createAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	advance, err := h.advanceService.CreateAdvance(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdvanceResponse(advance))
}

// listAdvances godoc
// @Summary List all advances with their total
// @Tags advances
// @Produce json
// @Success 200 {object} dto.ListAdvancesResponse
// @Security BearerAuth
// @Router /advances [get]
func (h *advanceHandler) listAdvances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advances, err := h.advanceService.ListAdvances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list advances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdvancesResponse(advances))
}

// getAdvance godoc
// @Summary Get an advance by ID
// @Tags advances
// @Produce json
// @Param id path int true "Advance ID"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/{id} [get]
func (h *advanceHandler) getAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	advanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	advance, err := h.advanceService.GetAdvanceByID(c.Request.Context(), advanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
			return
		}
		logger.Error("Failed to get advance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve advance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}

// listAdvancesForWorker godoc
// @Summary List a worker's advances with their total
// @Tags advances
// @Produce json
// @Param id path int true "Worker ID"
// @Param unsettledOnly query bool false "Only unrecovered advances"
// @Success 200 {object} dto.ListAdvancesResponse
// @Security BearerAuth
// @Router /workers/{id}/advances [get]
func (h *advanceHandler) listAdvancesForWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	unsettledOnly := c.Query("unsettledOnly") == "true"
	advances, err := h.advanceService.ListAdvancesForWorker(c.Request.Context(), workerID, unsettledOnly)
	if err != nil {
		logger.Error("Failed to list advances for worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdvancesResponse(advances))
}

// unsettledTotalForWorker godoc
// @Summary Get a worker's outstanding advance total
// @Tags advances
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /workers/{id}/advances/unsettled-total [get]
func (h *advanceHandler) unsettledTotalForWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	total, err := h.advanceService.TotalUnsettledForWorker(c.Request.Context(), workerID)
	if err != nil {
		logger.Error("Failed to total unsettled advances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to total unsettled advances"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workerID": workerID, "unsettledTotal": total})
}

// settleAdvances godoc
// @Summary Mark advances as recovered
// @Tags advances
// @Accept json
// @Param advances body dto.SettleAdvancesRequest true "Advance IDs to settle"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/settle [post]
func (h *advanceHandler) settleAdvances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleAdvancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settleAdvances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.advanceService.SettleAdvances(c.Request.Context(), req.AdvanceIDs); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to settle advances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle advances"})
		return
	}

	c.Status(http.StatusNoContent)
}

// updateAdvance godoc
// @Summary Update an advance
// @Tags advances
// @Accept json
// @Produce json
// @Param id path int true "Advance ID"
// @Param advance body dto.UpdateAdvanceRequest true "Fields to update"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/{id} [put]
func (h *advanceHandler) updateAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	advanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	advance, err := h.advanceService.UpdateAdvance(c.Request.Context(), advanceID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update advance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}

// deleteAdvance godoc
// @Summary Delete an advance
// @Tags advances
// @Param id path int true "Advance ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/{id} [delete]
func (h *advanceHandler) deleteAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	advanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.advanceService.DeleteAdvance(c.Request.Context(), advanceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
			return
		}
		logger.Error("Failed to delete advance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advance"})
		return
	}

	c.Status(http.StatusNoContent)
}

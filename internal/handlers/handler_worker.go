package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workerHandler handles HTTP requests related to workers.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

// registerWorkerRoutes registers routes related to workers.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.GET("/:id", h.getWorker)
		workers.PUT("/:id", h.updateWorker)
		workers.POST("/:id/deactivate", h.deactivateWorker)
		workers.DELETE("/:id", h.deleteWorker)
	}
}

// parseIDParam parses a numeric :id path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// createWorker godoc
// @Summary Add a new worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// listWorkers godoc
// @Summary List workers
// @Description Lists workers, optionally active only or matching a search query.
// @Tags workers
// @Produce json
// @Param activeOnly query bool false "Only active workers"
// @Param q query string false "Search by name or phone"
// @Success 200 {object} dto.ListWorkersResponse
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if q := c.Query("q"); q != "" {
		workers, err := h.workerService.SearchWorkers(c.Request.Context(), q)
		if err != nil {
			logger.Error("Failed to search workers", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search workers"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
		return
	}

	activeOnly := c.Query("activeOnly") == "true"
	workers, err := h.workerService.ListWorkers(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list workers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}

// getWorker godoc
// @Summary Get a worker by ID
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to get worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve worker"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param worker body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update worker", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deactivateWorker godoc
// @Summary Deactivate a worker
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/deactivate [post]
func (h *workerHandler) deactivateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.DeactivateWorker(c.Request.Context(), workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to deactivate worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate worker"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteWorker godoc
// @Summary Delete a worker
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *workerHandler) deleteWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(c.Request.Context(), workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to delete worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete worker"})
		return
	}

	c.Status(http.StatusNoContent)
}

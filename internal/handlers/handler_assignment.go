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

// assignmentHandler handles HTTP requests related to worker-site assignments.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

// registerAssignmentRoutes registers routes related to assignments.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", h.assignWorker)
		assignments.POST("/bulk", h.bulkAssign)
		assignments.GET("/:id", h.getAssignment)
	}

	workers := rg.Group("/workers/:id")
	{
		workers.GET("/assignments", h.listAssignmentsForWorker)
		workers.GET("/assignments/active", h.getActiveAssignment)
		workers.POST("/assignments/deactivate", h.deactivateAssignment)
	}

	rg.GET("/sites/:id/assignments", h.listAssignmentsForSite)
}

// assignWorker godoc
// @Summary Assign a worker to a site
// @Description Ends the worker's current assignment (if any) and opens the new one atomically.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.AssignWorkerRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments [post]
func (h *assignmentHandler) assignWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assignWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	assignmentID, err := h.assignmentService.AssignWorkerToSite(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to assign worker", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign worker"})
		}
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		logger.Error("Failed to load new assignment", slog.String("error", err.Error()))
		c.JSON(http.StatusCreated, gin.H{"assignmentID": assignmentID})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// bulkAssign godoc
// @Summary Assign many workers in one call
// @Description Processes entries in order; a failed entry is reported in its result and does not stop the batch.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignments body dto.BulkAssignRequest true "Batch of assignments"
// @Success 200 {object} dto.BulkAssignResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/bulk [post]
func (h *assignmentHandler) bulkAssign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkAssign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	results := h.assignmentService.BulkAssign(c.Request.Context(), req)
	c.JSON(http.StatusOK, dto.BulkAssignResponse{Results: results})
}

// getAssignment godoc
// @Summary Get an assignment by ID
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *assignmentHandler) getAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		logger.Error("Failed to get assignment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// getActiveAssignment godoc
// @Summary Get a worker's current assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/assignments/active [get]
func (h *assignmentHandler) getActiveAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetActiveAssignment(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker has no active assignment"})
			return
		}
		logger.Error("Failed to get active assignment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve active assignment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// listAssignmentsForWorker godoc
// @Summary List a worker's assignment history
// @Tags assignments
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.ListAssignmentsResponse
// @Security BearerAuth
// @Router /workers/{id}/assignments [get]
func (h *assignmentHandler) listAssignmentsForWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListAssignmentsForWorker(c.Request.Context(), workerID)
	if err != nil {
		logger.Error("Failed to list assignments for worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

// listAssignmentsForSite godoc
// @Summary List assignments targeting a site
// @Tags assignments
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} dto.ListAssignmentsResponse
// @Security BearerAuth
// @Router /sites/{id}/assignments [get]
func (h *assignmentHandler) listAssignmentsForSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListAssignmentsForSite(c.Request.Context(), siteID)
	if err != nil {
		logger.Error("Failed to list assignments for site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

// deactivateAssignment godoc
// @Summary End a worker's active assignment
// @Description No-op when the worker has no active assignment.
// @Tags assignments
// @Accept json
// @Param id path int true "Worker ID"
// @Param body body dto.DeactivateAssignmentRequest true "End date"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/assignments/deactivate [post]
func (h *assignmentHandler) deactivateAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DeactivateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deactivateAssignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.assignmentService.DeactivateCurrentAssignment(c.Request.Context(), workerID, req.Date); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to deactivate assignment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate assignment"})
		return
	}

	c.Status(http.StatusNoContent)
}

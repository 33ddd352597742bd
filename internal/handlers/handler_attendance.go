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

// attendanceHandler handles HTTP requests related to daily attendance.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.recordAttendance)
		attendance.GET("", h.listAttendanceForDate)
		attendance.GET("/:id", h.getAttendance)
		attendance.PUT("/:id", h.updateAttendance)
		attendance.DELETE("/:id", h.deleteAttendance)
	}

	rg.GET("/workers/:id/attendance", h.listAttendanceForWorker)
	rg.GET("/workers/:id/attendance/count", h.countByStatus)
	rg.GET("/sites/:id/attendance", h.listAttendanceForSite)
}

// recordAttendance godoc
// @Summary Record a worker's attendance for a date
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) recordAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	attendance, err := h.attendanceService.RecordAttendance(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record attendance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

// listAttendanceForDate godoc
// @Summary List attendance records for one date
// @Tags attendance
// @Produce json
// @Param date query string true "Date (yyyy-mm-dd)"
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) listAttendanceForDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter required"})
		return
	}

	records, err := h.attendanceService.ListAttendanceForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list attendance for date", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// getAttendance godoc
// @Summary Get an attendance record by ID
// @Tags attendance
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [get]
func (h *attendanceHandler) getAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attendanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attendance, err := h.attendanceService.GetAttendanceByID(c.Request.Context(), attendanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
			return
		}
		logger.Error("Failed to get attendance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// listAttendanceForWorker godoc
// @Summary List a worker's attendance records
// @Description Lists all records, or those inside an inclusive range when both bounds are given.
// @Tags attendance
// @Produce json
// @Param id path int true "Worker ID"
// @Param startDate query string false "Range start (yyyy-mm-dd)"
// @Param endDate query string false "Range end (yyyy-mm-dd)"
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/attendance [get]
func (h *attendanceHandler) listAttendanceForWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	var (
		records []domain.Attendance
		err     error
	)
	if startDate != "" && endDate != "" {
		records, err = h.attendanceService.ListAttendanceForWorkerInDateRange(c.Request.Context(), workerID, startDate, endDate)
	} else {
		records, err = h.attendanceService.ListAttendanceForWorker(c.Request.Context(), workerID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list attendance for worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// countByStatus godoc
// @Summary Count a worker's attendance by status in a range
// @Tags attendance
// @Produce json
// @Param id path int true "Worker ID"
// @Param status query string true "Status (PRESENT, ABSENT, HALF_DAY, LEAVE)"
// @Param startDate query string true "Range start (yyyy-mm-dd)"
// @Param endDate query string true "Range end (yyyy-mm-dd)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/attendance/count [get]
func (h *attendanceHandler) countByStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status := domain.AttendanceStatus(c.Query("status"))
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate query parameters required"})
		return
	}

	count, err := h.attendanceService.CountByStatus(c.Request.Context(), workerID, status, startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to count attendance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workerID": workerID, "status": status, "count": count})
}

// listAttendanceForSite godoc
// @Summary List a site's attendance records
// @Tags attendance
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} dto.ListAttendanceResponse
// @Security BearerAuth
// @Router /sites/{id}/attendance [get]
func (h *attendanceHandler) listAttendanceForSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.attendanceService.ListAttendanceForSite(c.Request.Context(), siteID)
	if err != nil {
		logger.Error("Failed to list attendance for site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// updateAttendance godoc
// @Summary Update an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Param attendance body dto.UpdateAttendanceRequest true "Fields to update"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [put]
func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attendanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	attendance, err := h.attendanceService.UpdateAttendance(c.Request.Context(), attendanceID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update attendance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Param id path int true "Attendance ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attendanceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), attendanceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
			return
		}
		logger.Error("Failed to delete attendance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attendance"})
		return
	}

	c.Status(http.StatusNoContent)
}

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

// reportHandler handles HTTP requests related to reports and exports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
	exportService    portssvc.ExportSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade, es portssvc.ExportSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs, exportService: es}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newReportHandler(reportingService, exportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.generateReport)
		reports.POST("/export", h.startExport)
		reports.GET("/export/:jobID", h.getExportJob)
	}
}

// generateReport godoc
// @Summary Generate a report
// @Description Runs the selected report over current data. The date range only applies when both bounds are given.
// @Tags reports
// @Produce json
// @Param type query string true "Report type (WORKER_LIST, PAYMENT_HISTORY, ADVANCE_PAYMENT, SITE_SUMMARY, ATTENDANCE)"
// @Param startDate query string false "Range start (yyyy-mm-dd)"
// @Param endDate query string false "Range end (yyyy-mm-dd)"
// @Param workerID query int false "Filter by worker"
// @Param siteID query int false "Filter by site"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for generateReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	filter := req.ToReportFilter()
	ctx := c.Request.Context()

	var (
		payload any
		err     error
	)
	switch filter.Type {
	case domain.ReportWorkerList:
		payload, err = h.reportingService.GenerateWorkerList(ctx)
	case domain.ReportPaymentHistory:
		payload, err = h.reportingService.GeneratePaymentHistory(ctx, filter)
	case domain.ReportAdvancePayment:
		payload, err = h.reportingService.GenerateAdvanceReport(ctx, filter)
	case domain.ReportAttendance:
		payload, err = h.reportingService.GenerateAttendanceReport(ctx, filter)
	case domain.ReportSiteSummary:
		payload, err = h.reportingService.GenerateSiteSummary(ctx, filter)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.JSON(http.StatusOK, payload)
}

// startExport godoc
// @Summary Start a background report export
// @Description Registers an export job and returns it immediately; poll the job endpoint for completion.
// @Tags reports
// @Accept json
// @Produce json
// @Param export body dto.ExportReportRequest true "Export request"
// @Success 202 {object} dto.ExportJobResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/export [post]
func (h *reportHandler) startExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for startExport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.exportService.StartExport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to start export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start export"})
		return
	}

	c.JSON(http.StatusAccepted, dto.ToExportJobResponse(job))
}

// getExportJob godoc
// @Summary Get an export job's state
// @Tags reports
// @Produce json
// @Param jobID path string true "Export job ID"
// @Success 200 {object} dto.ExportJobResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/export/{jobID} [get]
func (h *reportHandler) getExportJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	job, err := h.exportService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Export job not found"})
			return
		}
		logger.Error("Failed to get export job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve export job"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExportJobResponse(job))
}

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

// paymentHandler handles HTTP requests related to wage payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}

	rg.GET("/workers/:id/payments", h.listPaymentsForWorker)
	rg.GET("/sites/:id/payments", h.listPaymentsForSite)
}

// createPayment godoc
// @Summary Record a wage payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Lists all payments, or a payroll period's when month and year are given.
// @Tags payments
// @Produce json
// @Param month query int false "Payroll month (1-12)"
// @Param year query int false "Payroll year"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monthStr, yearStr := c.Query("month"), c.Query("year")
	if monthStr != "" && yearStr != "" {
		month, errM := strconv.Atoi(monthStr)
		year, errY := strconv.Atoi(yearStr)
		if errM != nil || errY != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month and year must be integers"})
			return
		}
		payments, err := h.paymentService.ListPaymentsForMonthYear(c.Request.Context(), month, year)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to list payments for period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to get payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPaymentsForWorker godoc
// @Summary List a worker's payments with their total
// @Tags payments
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Security BearerAuth
// @Router /workers/{id}/payments [get]
func (h *paymentHandler) listPaymentsForWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsForWorker(c.Request.Context(), workerID)
	if err != nil {
		logger.Error("Failed to list payments for worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// listPaymentsForSite godoc
// @Summary List a site's payments with their total
// @Tags payments
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Security BearerAuth
// @Router /sites/{id}/payments [get]
func (h *paymentHandler) listPaymentsForSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsForSite(c.Request.Context(), siteID)
	if err != nil {
		logger.Error("Failed to list payments for site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// updatePayment godoc
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to delete payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.Status(http.StatusNoContent)
}

package dto

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest carries the process-payment form fields.
type CreatePaymentRequest struct {
	WorkerID        int64           `json:"workerID" binding:"required"`
	SiteID          *int64          `json:"siteID"`
	PaymentDate     string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	PaymentMode     string          `json:"paymentMode" binding:"required,oneof=CASH BANK_TRANSFER OTHER"`
	ReferenceNumber *string         `json:"referenceNumber"`
	ForMonth        int             `json:"forMonth" binding:"omitempty,min=1,max=12"`
	ForYear         int             `json:"forYear"`
	Notes           *string         `json:"notes"`
}

// UpdatePaymentRequest uses pointers to distinguish omitted fields from
// zero-value fields.
type UpdatePaymentRequest struct {
	SiteID          *int64           `json:"siteID"`
	PaymentDate     *string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	PaymentMode     *string          `json:"paymentMode" binding:"omitempty,oneof=CASH BANK_TRANSFER OTHER"`
	ReferenceNumber *string          `json:"referenceNumber"`
	ForMonth        *int             `json:"forMonth" binding:"omitempty,min=1,max=12"`
	ForYear         *int             `json:"forYear"`
	Notes           *string          `json:"notes"`
}

// PaymentResponse is the API shape of a payment.
type PaymentResponse struct {
	PaymentID       int64           `json:"paymentID"`
	WorkerID        int64           `json:"workerID"`
	SiteID          *int64          `json:"siteID,omitempty"`
	PaymentDate     string          `json:"paymentDate"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	PaymentMode     string          `json:"paymentMode"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	ForMonth        int             `json:"forMonth"`
	ForYear         int             `json:"forYear"`
	Notes           *string         `json:"notes,omitempty"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		WorkerID:        p.WorkerID,
		SiteID:          p.SiteID,
		PaymentDate:     p.PaymentDate,
		Amount:          p.Amount,
		Description:     p.Description,
		PaymentMode:     string(p.PaymentMode),
		ReferenceNumber: p.ReferenceNumber,
		ForMonth:        p.ForMonth,
		ForYear:         p.ForYear,
		Notes:           p.Notes,
	}
}

// ListPaymentsResponse wraps a list of payments with its running total.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    decimal.Decimal   `json:"total"`
}

func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	out := make([]PaymentResponse, len(payments))
	total := decimal.Zero
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
		total = total.Add(payments[i].Amount)
	}
	return ListPaymentsResponse{Payments: out, Total: total}
}

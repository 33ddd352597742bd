package dto

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdvanceRequest carries the advance-payment form fields.
type CreateAdvanceRequest struct {
	WorkerID        int64           `json:"workerID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	AdvanceDate     string          `json:"advanceDate" binding:"required,datetime=2006-01-02"`
	Reason          string          `json:"reason" binding:"required"`
	Notes           *string         `json:"notes"`
	PaymentMode     string          `json:"paymentMode" binding:"required,oneof=CASH BANK_TRANSFER OTHER"`
	ReferenceNumber *string         `json:"referenceNumber"`
}

// UpdateAdvanceRequest uses pointers to distinguish omitted fields from
// zero-value fields.
type UpdateAdvanceRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	AdvanceDate     *string          `json:"advanceDate" binding:"omitempty,datetime=2006-01-02"`
	Reason          *string          `json:"reason"`
	Notes           *string          `json:"notes"`
	PaymentMode     *string          `json:"paymentMode" binding:"omitempty,oneof=CASH BANK_TRANSFER OTHER"`
	ReferenceNumber *string          `json:"referenceNumber"`
	IsRecovered     *bool            `json:"isRecovered"`
}

// SettleAdvancesRequest marks the listed advances as recovered.
type SettleAdvancesRequest struct {
	AdvanceIDs []int64 `json:"advanceIDs" binding:"required,min=1"`
}

// AdvanceResponse is the API shape of an advance.
type AdvanceResponse struct {
	AdvanceID       int64           `json:"advanceID"`
	WorkerID        int64           `json:"workerID"`
	Amount          decimal.Decimal `json:"amount"`
	AdvanceDate     string          `json:"advanceDate"`
	Reason          string          `json:"reason"`
	Notes           *string         `json:"notes,omitempty"`
	PaymentMode     string          `json:"paymentMode"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	IsRecovered     bool            `json:"isRecovered"`
}

func ToAdvanceResponse(a *domain.Advance) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID:       a.AdvanceID,
		WorkerID:        a.WorkerID,
		Amount:          a.Amount,
		AdvanceDate:     a.AdvanceDate,
		Reason:          a.Reason,
		Notes:           a.Notes,
		PaymentMode:     string(a.PaymentMode),
		ReferenceNumber: a.ReferenceNumber,
		IsRecovered:     a.IsRecovered,
	}
}

// ListAdvancesResponse wraps a list of advances with its running total.
type ListAdvancesResponse struct {
	Advances []AdvanceResponse `json:"advances"`
	Total    decimal.Decimal   `json:"total"`
}

func ToListAdvancesResponse(advances []domain.Advance) ListAdvancesResponse {
	out := make([]AdvanceResponse, len(advances))
	total := decimal.Zero
	for i := range advances {
		out[i] = ToAdvanceResponse(&advances[i])
		total = total.Add(advances[i].Amount)
	}
	return ListAdvancesResponse{Advances: out, Total: total}
}

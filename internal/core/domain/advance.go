package domain

import "github.com/shopspring/decimal"

// Advance is cash handed to a worker ahead of payroll. It starts
// unsettled and is marked recovered once deducted from future pay.
type Advance struct {
	AdvanceID       int64           `json:"advanceID"`
	WorkerID        int64           `json:"workerID"`
	Amount          decimal.Decimal `json:"amount"`
	AdvanceDate     string          `json:"advanceDate"`
	Reason          string          `json:"reason"`
	Notes           *string         `json:"notes,omitempty"`
	PaymentMode     PaymentMode     `json:"paymentMode"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	IsRecovered     bool            `json:"isRecovered"`
	AuditFields
}

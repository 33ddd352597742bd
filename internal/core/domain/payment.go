package domain

import "github.com/shopspring/decimal"

// PaymentMode is how money changed hands.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "CASH"
	PaymentModeBankTransfer PaymentMode = "BANK_TRANSFER"
	PaymentModeOther        PaymentMode = "OTHER"
)

// IsValid reports whether m is one of the known payment modes.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeBankTransfer, PaymentModeOther:
		return true
	}
	return false
}

// Payment is a wage payment made to a worker, optionally tied to a site.
// The site reference is nullable: deleting a site preserves its payments.
type Payment struct {
	PaymentID       int64           `json:"paymentID"`
	WorkerID        int64           `json:"workerID"`
	SiteID          *int64          `json:"siteID,omitempty"`
	PaymentDate     string          `json:"paymentDate"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	PaymentMode     PaymentMode     `json:"paymentMode"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	ForMonth        int             `json:"forMonth"` // 1-12 payroll period
	ForYear         int             `json:"forYear"`
	Notes           *string         `json:"notes,omitempty"`
	AuditFields
}

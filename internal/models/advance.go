package models

import "github.com/shopspring/decimal"

// Advance is the database representation of an advance row.
type Advance struct {
	AdvanceID       int64           `db:"advance_id"`
	WorkerID        int64           `db:"worker_id"`
	Amount          decimal.Decimal `db:"amount"`
	AdvanceDate     string          `db:"advance_date"`
	Reason          string          `db:"reason"`
	Notes           *string         `db:"notes"`
	PaymentMode     string          `db:"payment_mode"`
	ReferenceNumber *string         `db:"reference_number"`
	IsRecovered     bool            `db:"is_recovered"`
	AuditFields
}

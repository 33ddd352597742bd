package models

import "github.com/shopspring/decimal"

// Payment is the database representation of a payment row.
type Payment struct {
	PaymentID       int64           `db:"payment_id"`
	WorkerID        int64           `db:"worker_id"`
	SiteID          *int64          `db:"site_id"`
	PaymentDate     string          `db:"payment_date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	PaymentMode     string          `db:"payment_mode"`
	ReferenceNumber *string         `db:"reference_number"`
	ForMonth        int             `db:"for_month"`
	ForYear         int             `db:"for_year"`
	Notes           *string         `db:"notes"`
	AuditFields
}

package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by ID.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// FindPayments retrieves all payments, payment-date descending.
	FindPayments(ctx context.Context) ([]domain.Payment, error)

	// FindPaymentsForWorker retrieves a worker's payments, date descending.
	FindPaymentsForWorker(ctx context.Context, workerID int64) ([]domain.Payment, error)

	// FindPaymentsForSite retrieves a site's payments, date descending.
	FindPaymentsForSite(ctx context.Context, siteID int64) ([]domain.Payment, error)

	// FindPaymentsForMonthYear retrieves payments targeting a payroll period.
	FindPaymentsForMonthYear(ctx context.Context, month, year int) ([]domain.Payment, error)

	// FindPaymentsByDateRange retrieves payments inside the inclusive date range.
	FindPaymentsByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Payment, error)

	// SumPaymentsForWorker totals all payment amounts for a worker.
	SumPaymentsForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error)

	// SumPaymentsForSite totals all payment amounts for a site.
	SumPaymentsForSite(ctx context.Context, siteID int64) (decimal.Decimal, error)

	// SumPaymentsForMonthYear totals payment amounts for a payroll period.
	SumPaymentsForMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a new payment and returns its generated ID.
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)

	// UpdatePayment updates an existing payment.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment row.
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

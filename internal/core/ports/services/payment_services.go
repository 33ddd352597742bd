package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentSvcFacade exposes wage payment operations.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsForWorker(ctx context.Context, workerID int64) ([]domain.Payment, error)
	ListPaymentsForSite(ctx context.Context, siteID int64) ([]domain.Payment, error)
	ListPaymentsForMonthYear(ctx context.Context, month, year int) ([]domain.Payment, error)
	TotalPaymentsForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error)
	TotalPaymentsForSite(ctx context.Context, siteID int64) (decimal.Decimal, error)
	TotalPaymentsForMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

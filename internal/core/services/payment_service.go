package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
	"github.com/shopspring/decimal"
)

type PaymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	workerRepo  portsrepo.WorkerRepositoryFacade
	siteRepo    portsrepo.SiteRepositoryFacade
	notifier    *notify.Notifier
}

func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	siteRepo portsrepo.SiteRepositoryFacade,
	notifier *notify.Notifier,
) portssvc.PaymentSvcFacade {
	return &PaymentService{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
		siteRepo:    siteRepo,
		notifier:    notifier,
	}
}

var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}
	mode := domain.PaymentMode(req.PaymentMode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid payment mode %q: %w", req.PaymentMode, apperrors.ErrValidation)
	}

	if _, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", req.WorkerID, err)
	}
	if req.SiteID != nil {
		if _, err := s.siteRepo.FindSiteByID(ctx, *req.SiteID); err != nil {
			return nil, fmt.Errorf("site %d: %w", *req.SiteID, err)
		}
	}

	// Default the payroll period to the payment date's month when omitted.
	forMonth, forYear := req.ForMonth, req.ForYear
	if forMonth == 0 || forYear == 0 {
		paymentDate, err := domain.ParseDate(req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid payment date %q: %w", req.PaymentDate, apperrors.ErrValidation)
		}
		if forMonth == 0 {
			forMonth = int(paymentDate.Month())
		}
		if forYear == 0 {
			forYear = paymentDate.Year()
		}
	}

	now := time.Now()
	payment := domain.Payment{
		WorkerID:        req.WorkerID,
		SiteID:          req.SiteID,
		PaymentDate:     req.PaymentDate,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMode:     mode,
		ReferenceNumber: req.ReferenceNumber,
		ForMonth:        forMonth,
		ForYear:         forYear,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	paymentID, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment", "worker_id", req.WorkerID)
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.PaymentID = paymentID

	s.LogInfo(ctx, "Payment recorded", "payment_id", paymentID, "worker_id", req.WorkerID, "amount", req.Amount.String())
	s.notifier.Notify(notify.TablePayments)
	return &payment, nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.FindPayments(ctx)
}

func (s *PaymentService) ListPaymentsForWorker(ctx context.Context, workerID int64) ([]domain.Payment, error) {
	return s.paymentRepo.FindPaymentsForWorker(ctx, workerID)
}

func (s *PaymentService) ListPaymentsForSite(ctx context.Context, siteID int64) ([]domain.Payment, error) {
	return s.paymentRepo.FindPaymentsForSite(ctx, siteID)
}

func (s *PaymentService) ListPaymentsForMonthYear(ctx context.Context, month, year int) ([]domain.Payment, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d: %w", month, apperrors.ErrValidation)
	}
	return s.paymentRepo.FindPaymentsForMonthYear(ctx, month, year)
}

func (s *PaymentService) TotalPaymentsForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	return s.paymentRepo.SumPaymentsForWorker(ctx, workerID)
}

func (s *PaymentService) TotalPaymentsForSite(ctx context.Context, siteID int64) (decimal.Decimal, error) {
	return s.paymentRepo.SumPaymentsForSite(ctx, siteID)
}

func (s *PaymentService) TotalPaymentsForMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, fmt.Errorf("invalid month %d: %w", month, apperrors.ErrValidation)
	}
	return s.paymentRepo.SumPaymentsForMonthYear(ctx, month, year)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.SiteID != nil {
		if _, err := s.siteRepo.FindSiteByID(ctx, *req.SiteID); err != nil {
			return nil, fmt.Errorf("site %d: %w", *req.SiteID, err)
		}
		payment.SiteID = req.SiteID
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
		}
		payment.Amount = *req.Amount
	}
	if req.Description != nil {
		payment.Description = *req.Description
	}
	if req.PaymentMode != nil {
		mode := domain.PaymentMode(*req.PaymentMode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("invalid payment mode %q: %w", *req.PaymentMode, apperrors.ErrValidation)
		}
		payment.PaymentMode = mode
	}
	if req.ReferenceNumber != nil {
		payment.ReferenceNumber = req.ReferenceNumber
	}
	if req.ForMonth != nil {
		payment.ForMonth = *req.ForMonth
	}
	if req.ForYear != nil {
		payment.ForYear = *req.ForYear
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}
	payment.LastUpdatedAt = time.Now()

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", "payment_id", paymentID)
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	s.notifier.Notify(notify.TablePayments)
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Payment deleted", "payment_id", paymentID)
	s.notifier.Notify(notify.TablePayments)
	return nil
}

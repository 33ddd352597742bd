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

type AdvanceService struct {
	BaseService
	advanceRepo portsrepo.AdvanceRepositoryFacade
	workerRepo  portsrepo.WorkerRepositoryFacade
	notifier    *notify.Notifier
}

func NewAdvanceService(
	advanceRepo portsrepo.AdvanceRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	notifier *notify.Notifier,
) portssvc.AdvanceSvcFacade {
	return &AdvanceService{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
		notifier:    notifier,
	}
}

var _ portssvc.AdvanceSvcFacade = (*AdvanceService)(nil)

func (s *AdvanceService) CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest) (*domain.Advance, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("advance amount must be positive: %w", apperrors.ErrValidation)
	}
	mode := domain.PaymentMode(req.PaymentMode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid payment mode %q: %w", req.PaymentMode, apperrors.ErrValidation)
	}
	if _, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", req.WorkerID, err)
	}

	now := time.Now()
	advance := domain.Advance{
		WorkerID:        req.WorkerID,
		Amount:          req.Amount,
		AdvanceDate:     req.AdvanceDate,
		Reason:          req.Reason,
		Notes:           req.Notes,
		PaymentMode:     mode,
		ReferenceNumber: req.ReferenceNumber,
		IsRecovered:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	advanceID, err := s.advanceRepo.SaveAdvance(ctx, advance)
	if err != nil {
		s.LogError(ctx, err, "Failed to create advance", "worker_id", req.WorkerID)
		return nil, fmt.Errorf("failed to create advance: %w", err)
	}
	advance.AdvanceID = advanceID

	s.LogInfo(ctx, "Advance recorded", "advance_id", advanceID, "worker_id", req.WorkerID, "amount", req.Amount.String())
	s.notifier.Notify(notify.TableAdvances)
	return &advance, nil
}

func (s *AdvanceService) GetAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	return s.advanceRepo.FindAdvanceByID(ctx, advanceID)
}

func (s *AdvanceService) ListAdvances(ctx context.Context) ([]domain.Advance, error) {
	return s.advanceRepo.FindAdvances(ctx)
}

func (s *AdvanceService) ListAdvancesForWorker(ctx context.Context, workerID int64, unsettledOnly bool) ([]domain.Advance, error) {
	if unsettledOnly {
		return s.advanceRepo.FindUnsettledAdvancesForWorker(ctx, workerID)
	}
	return s.advanceRepo.FindAdvancesForWorker(ctx, workerID)
}

func (s *AdvanceService) TotalUnsettledForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	return s.advanceRepo.SumUnsettledAdvancesForWorker(ctx, workerID)
}

func (s *AdvanceService) SettleAdvances(ctx context.Context, advanceIDs []int64) error {
	if len(advanceIDs) == 0 {
		return fmt.Errorf("no advances to settle: %w", apperrors.ErrValidation)
	}
	if err := s.advanceRepo.SettleAdvances(ctx, advanceIDs); err != nil {
		s.LogError(ctx, err, "Failed to settle advances")
		return fmt.Errorf("failed to settle advances: %w", err)
	}
	s.LogInfo(ctx, "Advances settled", "count", len(advanceIDs))
	s.notifier.Notify(notify.TableAdvances)
	return nil
}

func (s *AdvanceService) UpdateAdvance(ctx context.Context, advanceID int64, req dto.UpdateAdvanceRequest) (*domain.Advance, error) {
	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("advance amount must be positive: %w", apperrors.ErrValidation)
		}
		advance.Amount = *req.Amount
	}
	if req.AdvanceDate != nil {
		advance.AdvanceDate = *req.AdvanceDate
	}
	if req.Reason != nil {
		advance.Reason = *req.Reason
	}
	if req.Notes != nil {
		advance.Notes = req.Notes
	}
	if req.PaymentMode != nil {
		mode := domain.PaymentMode(*req.PaymentMode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("invalid payment mode %q: %w", *req.PaymentMode, apperrors.ErrValidation)
		}
		advance.PaymentMode = mode
	}
	if req.ReferenceNumber != nil {
		advance.ReferenceNumber = req.ReferenceNumber
	}
	if req.IsRecovered != nil {
		advance.IsRecovered = *req.IsRecovered
	}
	advance.LastUpdatedAt = time.Now()

	if err := s.advanceRepo.UpdateAdvance(ctx, *advance); err != nil {
		s.LogError(ctx, err, "Failed to update advance", "advance_id", advanceID)
		return nil, fmt.Errorf("failed to update advance: %w", err)
	}

	s.notifier.Notify(notify.TableAdvances)
	return advance, nil
}

func (s *AdvanceService) DeleteAdvance(ctx context.Context, advanceID int64) error {
	if err := s.advanceRepo.DeleteAdvance(ctx, advanceID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Advance deleted", "advance_id", advanceID)
	s.notifier.Notify(notify.TableAdvances)
	return nil
}

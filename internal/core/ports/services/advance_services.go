package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AdvanceSvcFacade exposes cash advance operations, including settlement.
type AdvanceSvcFacade interface {
	CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest) (*domain.Advance, error)
	GetAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error)
	ListAdvances(ctx context.Context) ([]domain.Advance, error)
	ListAdvancesForWorker(ctx context.Context, workerID int64, unsettledOnly bool) ([]domain.Advance, error)
	TotalUnsettledForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error)
	SettleAdvances(ctx context.Context, advanceIDs []int64) error
	UpdateAdvance(ctx context.Context, advanceID int64, req dto.UpdateAdvanceRequest) (*domain.Advance, error)
	DeleteAdvance(ctx context.Context, advanceID int64) error
}

package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdvanceReader defines read operations for advance data.
type AdvanceReader interface {
	// FindAdvanceByID retrieves a specific advance by ID.
	FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error)

	// FindAdvances retrieves all advances, advance-date descending.
	FindAdvances(ctx context.Context) ([]domain.Advance, error)

	// FindAdvancesForWorker retrieves a worker's advances, date descending.
	FindAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error)

	// FindUnsettledAdvancesForWorker retrieves a worker's unrecovered advances.
	FindUnsettledAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error)

	// FindAdvancesByDateRange retrieves advances inside the inclusive date range.
	FindAdvancesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Advance, error)

	// SumUnsettledAdvancesForWorker totals a worker's unrecovered advance amounts.
	SumUnsettledAdvancesForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error)
}

// AdvanceWriter defines write operations for advance data.
type AdvanceWriter interface {
	// SaveAdvance persists a new advance and returns its generated ID.
	SaveAdvance(ctx context.Context, advance domain.Advance) (int64, error)

	// UpdateAdvance updates an existing advance.
	UpdateAdvance(ctx context.Context, advance domain.Advance) error

	// SettleAdvances marks the given advances as recovered.
	SettleAdvances(ctx context.Context, advanceIDs []int64) error

	// DeleteAdvance removes an advance row.
	DeleteAdvance(ctx context.Context, advanceID int64) error
}

// AdvanceRepositoryFacade combines all advance repository interfaces.
type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
}

package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSvcFacade derives display aggregates from current store
// contents. Values are recomputed on every read so mutations are
// reflected immediately.
type DashboardSvcFacade interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	TotalUnsettledAdvancesForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error)
	WorkerCountForSite(ctx context.Context, siteID int64) (int, error)
}

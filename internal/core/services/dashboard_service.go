package services

import (
	"context"
	"fmt"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// recentPaymentsLimit caps the recent-payments strip on the dashboard.
const recentPaymentsLimit = 5

// DashboardService derives display aggregates from current store
// contents. Nothing is cached: every read recomputes, so a value can
// never go stale after a write.
type DashboardService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

func NewDashboardService(repos portsrepo.RepositoryProvider) portssvc.DashboardSvcFacade {
	return &DashboardService{repos: repos}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	totalWorkers, err := s.repos.WorkerRepo.CountWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count workers: %w", err)
	}
	activeWorkers, err := s.repos.WorkerRepo.CountActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active workers: %w", err)
	}
	totalSites, err := s.repos.SiteRepo.CountSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}
	activeSites, err := s.repos.SiteRepo.CountSitesByStatus(ctx, domain.SiteStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sites: %w", err)
	}

	payments, err := s.repos.PaymentRepo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent payments: %w", err)
	}
	if len(payments) > recentPaymentsLimit {
		payments = payments[:recentPaymentsLimit]
	}

	return &domain.DashboardSummary{
		TotalWorkers:   totalWorkers,
		ActiveWorkers:  activeWorkers,
		TotalSites:     totalSites,
		ActiveSites:    activeSites,
		RecentPayments: payments,
	}, nil
}

func (s *DashboardService) TotalUnsettledAdvancesForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	return s.repos.AdvanceRepo.SumUnsettledAdvancesForWorker(ctx, workerID)
}

func (s *DashboardService) WorkerCountForSite(ctx context.Context, siteID int64) (int, error) {
	return s.repos.SiteRepo.CountWorkersForSite(ctx, siteID)
}

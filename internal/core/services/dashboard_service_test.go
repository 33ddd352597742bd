package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo  *MockWorkerRepository
	mockSiteRepo    *MockSiteRepository
	mockPaymentRepo *MockPaymentRepository
	mockAdvanceRepo *MockAdvanceRepository
	service         portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAdvanceRepo = new(MockAdvanceRepository)
	suite.service = services.NewDashboardService(portsrepo.RepositoryProvider{
		WorkerRepo:  suite.mockWorkerRepo,
		SiteRepo:    suite.mockSiteRepo,
		PaymentRepo: suite.mockPaymentRepo,
		AdvanceRepo: suite.mockAdvanceRepo,
	})
}

func (suite *DashboardServiceTestSuite) TestSummary() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("CountWorkers", ctx).Return(12, nil).Once()
	suite.mockWorkerRepo.On("CountActiveWorkers", ctx).Return(9, nil).Once()
	suite.mockSiteRepo.On("CountSites", ctx).Return(4, nil).Once()
	suite.mockSiteRepo.On("CountSitesByStatus", ctx, domain.SiteStatusActive).Return(2, nil).Once()
	suite.mockPaymentRepo.On("FindPayments", ctx).Return([]domain.Payment{
		{PaymentID: 3, WorkerID: 1, Amount: decimal.RequireFromString("100.00")},
	}, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal(12, summary.TotalWorkers)
	suite.Equal(9, summary.ActiveWorkers)
	suite.Equal(4, summary.TotalSites)
	suite.Equal(2, summary.ActiveSites)
	suite.Len(summary.RecentPayments, 1)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
	suite.mockSiteRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestSummary_RecentPaymentsCapped() {
	ctx := context.Background()
	payments := make([]domain.Payment, 8)
	for i := range payments {
		payments[i] = domain.Payment{PaymentID: int64(100 - i), WorkerID: 1, Amount: decimal.RequireFromString("50.00")}
	}
	suite.mockWorkerRepo.On("CountWorkers", ctx).Return(1, nil).Once()
	suite.mockWorkerRepo.On("CountActiveWorkers", ctx).Return(1, nil).Once()
	suite.mockSiteRepo.On("CountSites", ctx).Return(1, nil).Once()
	suite.mockSiteRepo.On("CountSitesByStatus", ctx, domain.SiteStatusActive).Return(1, nil).Once()
	suite.mockPaymentRepo.On("FindPayments", ctx).Return(payments, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summary.RecentPayments, 5)
	// Newest first, straight off the date-descending repository order.
	suite.Equal(int64(100), summary.RecentPayments[0].PaymentID)
	suite.Equal(int64(96), summary.RecentPayments[4].PaymentID)
}

func (suite *DashboardServiceTestSuite) TestSummary_PropagatesCountError() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("CountWorkers", ctx).Return(0, fmt.Errorf("connection refused")).Once()

	_, err := suite.service.Summary(ctx)

	suite.Error(err)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "CountSites", ctx)
}

func (suite *DashboardServiceTestSuite) TestTotalUnsettledAdvancesForWorker() {
	ctx := context.Background()
	suite.mockAdvanceRepo.On("SumUnsettledAdvancesForWorker", ctx, int64(1)).
		Return(decimal.RequireFromString("1000.00"), nil).Once()

	total, err := suite.service.TotalUnsettledAdvancesForWorker(ctx, 1)

	suite.Require().NoError(err)
	assert.True(suite.T(), total.Equal(decimal.RequireFromString("1000.00")), "got %s", total)
}

func (suite *DashboardServiceTestSuite) TestWorkerCountForSite() {
	ctx := context.Background()
	suite.mockSiteRepo.On("CountWorkersForSite", ctx, int64(10)).Return(6, nil).Once()

	count, err := suite.service.WorkerCountForSite(ctx, 10)

	suite.Require().NoError(err)
	suite.Equal(6, count)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

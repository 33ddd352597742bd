package services_test

import (
	"context"
	"testing"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/core/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdvanceServiceTestSuite struct {
	suite.Suite
	mockAdvanceRepo *MockAdvanceRepository
	mockWorkerRepo  *MockWorkerRepository
	notifier        *notify.Notifier
	service         portssvc.AdvanceSvcFacade
}

func (suite *AdvanceServiceTestSuite) SetupTest() {
	suite.mockAdvanceRepo = new(MockAdvanceRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.notifier = notify.NewNotifier()
	suite.service = services.NewAdvanceService(suite.mockAdvanceRepo, suite.mockWorkerRepo, suite.notifier)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_Success() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1, Name: "Ravi"}, nil).Once()
	suite.mockAdvanceRepo.On("SaveAdvance", ctx, mock.MatchedBy(func(a domain.Advance) bool {
		return a.WorkerID == 1 &&
			a.Amount.Equal(decimal.RequireFromString("500.00")) &&
			!a.IsRecovered &&
			!a.CreatedAt.IsZero()
	})).Return(int64(42), nil).Once()

	events, cancelSub := suite.notifier.Subscribe(notify.TableAdvances)
	defer cancelSub()

	advance, err := suite.service.CreateAdvance(ctx, dto.CreateAdvanceRequest{
		WorkerID:    1,
		Amount:      decimal.RequireFromString("500.00"),
		AdvanceDate: "2024-03-05",
		Reason:      "Medical emergency",
		PaymentMode: "CASH",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(42), advance.AdvanceID)
	suite.False(advance.IsRecovered)
	suite.Equal(notify.TableAdvances, <-events)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateAdvance(ctx, dto.CreateAdvanceRequest{
		WorkerID:    1,
		Amount:      decimal.Zero,
		AdvanceDate: "2024-03-05",
		Reason:      "Nothing",
		PaymentMode: "CASH",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateAdvance(ctx, dto.CreateAdvanceRequest{
		WorkerID:    1,
		Amount:      decimal.RequireFromString("-50.00"),
		AdvanceDate: "2024-03-05",
		Reason:      "Nothing",
		PaymentMode: "CASH",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_InvalidPaymentMode() {
	_, err := suite.service.CreateAdvance(context.Background(), dto.CreateAdvanceRequest{
		WorkerID:    1,
		Amount:      decimal.RequireFromString("500.00"),
		AdvanceDate: "2024-03-05",
		Reason:      "Medical emergency",
		PaymentMode: "CHEQUE",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_WorkerNotFound() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAdvance(ctx, dto.CreateAdvanceRequest{
		WorkerID:    99,
		Amount:      decimal.RequireFromString("500.00"),
		AdvanceDate: "2024-03-05",
		Reason:      "Medical emergency",
		PaymentMode: "CASH",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdvanceServiceTestSuite) TestSettleAdvances() {
	ctx := context.Background()
	suite.mockAdvanceRepo.On("SettleAdvances", ctx, []int64{3, 4}).Return(nil).Once()

	err := suite.service.SettleAdvances(ctx, []int64{3, 4})

	suite.Require().NoError(err)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestSettleAdvances_EmptyListRejected() {
	err := suite.service.SettleAdvances(context.Background(), nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "SettleAdvances", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestListAdvancesForWorker_UnsettledOnly() {
	ctx := context.Background()
	unsettled := []domain.Advance{{AdvanceID: 5, WorkerID: 1, Amount: decimal.RequireFromString("200.00")}}
	suite.mockAdvanceRepo.On("FindUnsettledAdvancesForWorker", ctx, int64(1)).Return(unsettled, nil).Once()

	advances, err := suite.service.ListAdvancesForWorker(ctx, 1, true)

	suite.Require().NoError(err)
	suite.Equal(unsettled, advances)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "FindAdvancesForWorker", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestUpdateAdvance_MarkRecovered() {
	ctx := context.Background()
	existing := &domain.Advance{
		AdvanceID:   5,
		WorkerID:    1,
		Amount:      decimal.RequireFromString("200.00"),
		AdvanceDate: "2024-03-05",
		PaymentMode: domain.PaymentModeCash,
	}
	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockAdvanceRepo.On("UpdateAdvance", ctx, mock.MatchedBy(func(a domain.Advance) bool {
		return a.AdvanceID == 5 && a.IsRecovered
	})).Return(nil).Once()

	recovered := true
	advance, err := suite.service.UpdateAdvance(ctx, 5, dto.UpdateAdvanceRequest{IsRecovered: &recovered})

	suite.Require().NoError(err)
	suite.True(advance.IsRecovered)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func TestAdvanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvanceServiceTestSuite))
}

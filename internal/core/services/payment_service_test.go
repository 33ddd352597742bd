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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockWorkerRepo  *MockWorkerRepository
	mockSiteRepo    *MockSiteRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockWorkerRepo, suite.mockSiteRepo, notify.NewNotifier())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DefaultsPayrollPeriodFromDate() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ForMonth == 3 && p.ForYear == 2024
	})).Return(int64(11), nil).Once()

	payment, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		WorkerID:    1,
		PaymentDate: "2024-03-28",
		Amount:      decimal.RequireFromString("750.00"),
		Description: "March wages",
		PaymentMode: "CASH",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(11), payment.PaymentID)
	suite.Equal(3, payment.ForMonth)
	suite.Equal(2024, payment.ForYear)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ExplicitPayrollPeriodKept() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		// Paid in April for the March period.
		return p.ForMonth == 3 && p.ForYear == 2024 && p.PaymentDate == "2024-04-02"
	})).Return(int64(12), nil).Once()

	_, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		WorkerID:    1,
		PaymentDate: "2024-04-02",
		Amount:      decimal.RequireFromString("750.00"),
		Description: "March wages",
		PaymentMode: "BANK_TRANSFER",
		ForMonth:    3,
		ForYear:     2024,
	})

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	_, err := suite.service.CreatePayment(context.Background(), dto.CreatePaymentRequest{
		WorkerID:    1,
		PaymentDate: "2024-03-28",
		Amount:      decimal.Zero,
		Description: "March wages",
		PaymentMode: "CASH",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownSite() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1}, nil).Once()
	suite.mockSiteRepo.On("FindSiteByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		WorkerID:    1,
		SiteID:      int64Ptr(99),
		PaymentDate: "2024-03-28",
		Amount:      decimal.RequireFromString("750.00"),
		Description: "March wages",
		PaymentMode: "CASH",
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsForMonthYear_InvalidMonth() {
	_, err := suite.service.ListPaymentsForMonthYear(context.Background(), 13, 2024)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsForMonthYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestTotalPaymentsForWorker() {
	ctx := context.Background()
	suite.mockPaymentRepo.On("SumPaymentsForWorker", ctx, int64(1)).
		Return(decimal.RequireFromString("2500.00"), nil).Once()

	total, err := suite.service.TotalPaymentsForWorker(ctx, 1)

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.RequireFromString("2500.00")), "got %s", total)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RejectsInvalidMode() {
	ctx := context.Background()
	existing := &domain.Payment{
		PaymentID:   11,
		WorkerID:    1,
		PaymentDate: "2024-03-28",
		Amount:      decimal.RequireFromString("750.00"),
		PaymentMode: domain.PaymentModeCash,
	}
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(11)).Return(existing, nil).Once()

	mode := "IOU"
	_, err := suite.service.UpdatePayment(ctx, 11, dto.UpdatePaymentRequest{PaymentMode: &mode})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkerServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo *MockWorkerRepository
	notifier       *notify.Notifier
	service        portssvc.WorkerSvcFacade
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.notifier = notify.NewNotifier()
	suite.service = services.NewWorkerService(suite.mockWorkerRepo, suite.notifier)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_StartsActive() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.Name == "Ravi Kumar" && w.IsActive && !w.CreatedAt.IsZero()
	})).Return(int64(5), nil).Once()

	events, cancelSub := suite.notifier.Subscribe(notify.TableWorkers)
	defer cancelSub()

	worker, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		Name:        "Ravi Kumar",
		PhoneNumber: "9876543210",
		Address:     "12 Canal Road",
		Role:        "Mason",
		NationalID:  "AB123456",
		JoinDate:    "2023-11-01",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(5), worker.WorkerID)
	suite.True(worker.IsActive)
	suite.Equal(notify.TableWorkers, <-events)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_MergesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Worker{
		WorkerID:    5,
		Name:        "Ravi Kumar",
		PhoneNumber: "9876543210",
		Role:        "Mason",
		IsActive:    true,
	}
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockWorkerRepo.On("UpdateWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.Role == "Foreman" && w.Name == "Ravi Kumar" && w.PhoneNumber == "9876543210"
	})).Return(nil).Once()

	role := "Foreman"
	worker, err := suite.service.UpdateWorker(ctx, 5, dto.UpdateWorkerRequest{Role: &role})

	suite.Require().NoError(err)
	suite.Equal("Foreman", worker.Role)
	suite.Equal("Ravi Kumar", worker.Name)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestDeactivateWorker() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(5)).
		Return(&domain.Worker{WorkerID: 5, IsActive: true}, nil).Once()
	suite.mockWorkerRepo.On("UpdateWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.WorkerID == 5 && !w.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateWorker(ctx, 5)

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestDeactivateWorker_AlreadyInactiveIsNoOp() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(5)).
		Return(&domain.Worker{WorkerID: 5, IsActive: false}, nil).Once()

	err := suite.service.DeactivateWorker(ctx, 5)

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "UpdateWorker", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestListWorkers_ActiveOnlyRouting() {
	ctx := context.Background()
	active := []domain.Worker{{WorkerID: 1, IsActive: true}}
	suite.mockWorkerRepo.On("FindActiveWorkers", ctx).Return(active, nil).Once()

	workers, err := suite.service.ListWorkers(ctx, true)

	suite.Require().NoError(err)
	suite.Equal(active, workers)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "FindWorkers", mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestGetWorkerByID_NotFound() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetWorkerByID(ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}

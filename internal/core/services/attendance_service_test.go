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

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendanceRepo *MockAttendanceRepository
	mockWorkerRepo     *MockWorkerRepository
	mockSiteRepo       *MockSiteRepository
	service            portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewAttendanceService(
		suite.mockAttendanceRepo, suite.mockWorkerRepo, suite.mockSiteRepo, notify.NewNotifier())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_Success() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1}, nil).Once()
	suite.mockSiteRepo.On("FindSiteByID", ctx, int64(10)).
		Return(&domain.Site{SiteID: 10}, nil).Once()
	suite.mockAttendanceRepo.On("SaveAttendance", ctx, mock.MatchedBy(func(a domain.Attendance) bool {
		return a.WorkerID == 1 && a.SiteID == 10 && a.Status == domain.AttendancePresent
	})).Return(int64(21), nil).Once()

	hours := 8.0
	record, err := suite.service.RecordAttendance(ctx, dto.CreateAttendanceRequest{
		WorkerID:    1,
		SiteID:      10,
		Date:        "2024-03-01",
		Status:      "PRESENT",
		HoursWorked: &hours,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(21), record.AttendanceID)
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_InvalidStatus() {
	_, err := suite.service.RecordAttendance(context.Background(), dto.CreateAttendanceRequest{
		WorkerID: 1,
		SiteID:   10,
		Date:     "2024-03-01",
		Status:   "SICK",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "FindWorkerByID", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_UnknownSite() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, int64(1)).
		Return(&domain.Worker{WorkerID: 1}, nil).Once()
	suite.mockSiteRepo.On("FindSiteByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordAttendance(ctx, dto.CreateAttendanceRequest{
		WorkerID: 1,
		SiteID:   99,
		Date:     "2024-03-01",
		Status:   "PRESENT",
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AttendanceServiceTestSuite) TestListAttendanceForDate_InvalidDate() {
	_, err := suite.service.ListAttendanceForDate(context.Background(), "03/01/2024")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "FindAttendanceForDate", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestListAttendanceForWorkerInDateRange() {
	ctx := context.Background()
	records := []domain.Attendance{{AttendanceID: 21, WorkerID: 1, SiteID: 10, Date: "2024-03-01"}}
	suite.mockAttendanceRepo.On("FindAttendanceForWorkerInDateRange", ctx, int64(1), "2024-03-01", "2024-03-31").
		Return(records, nil).Once()

	got, err := suite.service.ListAttendanceForWorkerInDateRange(ctx, 1, "2024-03-01", "2024-03-31")

	suite.Require().NoError(err)
	suite.Equal(records, got)
}

func (suite *AttendanceServiceTestSuite) TestCountByStatus() {
	ctx := context.Background()
	suite.mockAttendanceRepo.On("CountAttendanceByStatus", ctx, int64(1), domain.AttendancePresent, "2024-03-01", "2024-03-31").
		Return(22, nil).Once()

	count, err := suite.service.CountByStatus(ctx, 1, domain.AttendancePresent, "2024-03-01", "2024-03-31")

	suite.Require().NoError(err)
	suite.Equal(22, count)
}

func (suite *AttendanceServiceTestSuite) TestCountByStatus_InvalidStatus() {
	_, err := suite.service.CountByStatus(context.Background(), 1, "SICK", "2024-03-01", "2024-03-31")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

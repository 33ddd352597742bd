package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/core/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// fakeAssignmentRepo is an in-memory assignment store. The transition
// tests need real state so the single-active-row rule can be observed
// across calls, which a call-recording mock cannot express.
type fakeAssignmentRepo struct {
	nextID      int64
	assignments []domain.WorkerSiteAssignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{nextID: 1}
}

func (f *fakeAssignmentRepo) FindAssignmentByID(ctx context.Context, assignmentID int64) (*domain.WorkerSiteAssignment, error) {
	for i := range f.assignments {
		if f.assignments[i].AssignmentID == assignmentID {
			a := f.assignments[i]
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAssignmentRepo) FindActiveAssignmentForWorker(ctx context.Context, workerID int64) (*domain.WorkerSiteAssignment, error) {
	for i := range f.assignments {
		if f.assignments[i].WorkerID == workerID && f.assignments[i].IsActive {
			a := f.assignments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("no active assignment for worker %d: %w", workerID, apperrors.ErrNotFound)
}

func (f *fakeAssignmentRepo) FindAssignmentsForWorker(ctx context.Context, workerID int64) ([]domain.WorkerSiteAssignment, error) {
	out := []domain.WorkerSiteAssignment{}
	for _, a := range f.assignments {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) FindAssignmentsForSite(ctx context.Context, siteID int64) ([]domain.WorkerSiteAssignment, error) {
	out := []domain.WorkerSiteAssignment{}
	for _, a := range f.assignments {
		if a.SiteID == siteID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) AssignWorkerToSite(ctx context.Context, workerID, siteID int64, date string) (int64, error) {
	if err := f.DeactivateCurrentAssignments(ctx, workerID, date); err != nil {
		return 0, err
	}
	now := time.Now()
	assignment := domain.WorkerSiteAssignment{
		AssignmentID:   f.nextID,
		WorkerID:       workerID,
		SiteID:         siteID,
		AssignmentDate: date,
		IsActive:       true,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	f.nextID++
	f.assignments = append(f.assignments, assignment)
	return assignment.AssignmentID, nil
}

func (f *fakeAssignmentRepo) DeactivateCurrentAssignments(ctx context.Context, workerID int64, endDate string) error {
	for i := range f.assignments {
		if f.assignments[i].WorkerID == workerID && f.assignments[i].IsActive {
			end := endDate
			f.assignments[i].IsActive = false
			f.assignments[i].EndDate = &end
		}
	}
	return nil
}

func (f *fakeAssignmentRepo) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	for i := range f.assignments {
		if f.assignments[i].AssignmentID == assignmentID {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeAssignmentRepo) activeCount(workerID int64) int {
	count := 0
	for _, a := range f.assignments {
		if a.WorkerID == workerID && a.IsActive {
			count++
		}
	}
	return count
}

type AssignmentServiceTestSuite struct {
	suite.Suite
	repo           *fakeAssignmentRepo
	mockWorkerRepo *MockWorkerRepository
	mockSiteRepo   *MockSiteRepository
	service        portssvc.AssignmentSvcFacade
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.repo = newFakeAssignmentRepo()
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewAssignmentService(suite.repo, suite.mockWorkerRepo, suite.mockSiteRepo, notify.NewNotifier())
}

func (suite *AssignmentServiceTestSuite) expectWorker(workerID int64) {
	suite.mockWorkerRepo.On("FindWorkerByID", mock.Anything, workerID).
		Return(&domain.Worker{WorkerID: workerID, Name: "Ravi", IsActive: true}, nil)
}

func (suite *AssignmentServiceTestSuite) expectSite(siteID int64) {
	suite.mockSiteRepo.On("FindSiteByID", mock.Anything, siteID).
		Return(&domain.Site{SiteID: siteID, Name: "Riverside Apartments", Status: domain.SiteStatusActive}, nil)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkerToSite_Success() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.expectSite(10)

	assignmentID, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 10, Date: "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.NotZero(assignmentID)

	active, err := suite.service.GetActiveAssignment(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(10), active.SiteID)
	suite.True(active.IsActive)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
	suite.mockSiteRepo.AssertExpectations(suite.T())
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkerToSite_ReassignmentClosesOldRow() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.expectSite(10)
	suite.expectSite(20)

	firstID, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 10, Date: "2024-03-01",
	})
	suite.Require().NoError(err)

	secondID, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 20, Date: "2024-04-15",
	})
	suite.Require().NoError(err)
	suite.NotEqual(firstID, secondID)

	// The old row survives as history with its end date stamped.
	old, err := suite.service.GetAssignment(ctx, firstID)
	suite.Require().NoError(err)
	suite.False(old.IsActive)
	suite.Require().NotNil(old.EndDate)
	suite.Equal("2024-04-15", *old.EndDate)

	active, err := suite.service.GetActiveAssignment(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(secondID, active.AssignmentID)
	suite.Equal(int64(20), active.SiteID)
	suite.Equal(1, suite.repo.activeCount(1))
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkerToSite_InvalidDate() {
	ctx := context.Background()

	_, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 10, Date: "01-03-2024",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "FindWorkerByID", mock.Anything, mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkerToSite_WorkerNotFound() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("FindWorkerByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 99, SiteID: 10, Date: "2024-03-01",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.repo.assignments)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkerToSite_SiteNotFound() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.mockSiteRepo.On("FindSiteByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 99, Date: "2024-03-01",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.repo.assignments)
}

func (suite *AssignmentServiceTestSuite) TestDeactivateCurrentAssignment() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.expectSite(10)

	_, err := suite.service.AssignWorkerToSite(ctx, dto.AssignWorkerRequest{
		WorkerID: 1, SiteID: 10, Date: "2024-03-01",
	})
	suite.Require().NoError(err)

	err = suite.service.DeactivateCurrentAssignment(ctx, 1, "2024-05-31")
	suite.Require().NoError(err)

	_, err = suite.service.GetActiveAssignment(ctx, 1)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AssignmentServiceTestSuite) TestDeactivateCurrentAssignment_NoActiveIsNoOp() {
	err := suite.service.DeactivateCurrentAssignment(context.Background(), 1, "2024-05-31")
	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestDeactivateCurrentAssignment_InvalidDate() {
	err := suite.service.DeactivateCurrentAssignment(context.Background(), 1, "31/05/2024")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssignmentServiceTestSuite) TestBulkAssign_LastEntryWinsForRepeatedWorker() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.expectSite(10)
	suite.expectSite(20)

	results := suite.service.BulkAssign(ctx, dto.BulkAssignRequest{
		Assignments: []dto.AssignWorkerRequest{
			{WorkerID: 1, SiteID: 10, Date: "2024-03-01"},
			{WorkerID: 1, SiteID: 20, Date: "2024-03-02"},
		},
	})

	suite.Require().Len(results, 2)
	suite.NoError(results[0].Err)
	suite.NoError(results[1].Err)

	active, err := suite.service.GetActiveAssignment(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(20), active.SiteID)
	suite.Equal(1, suite.repo.activeCount(1))
}

func (suite *AssignmentServiceTestSuite) TestBulkAssign_ContinuesPastFailedEntry() {
	ctx := context.Background()
	suite.expectWorker(1)
	suite.expectWorker(3)
	suite.expectSite(10)
	suite.mockWorkerRepo.On("FindWorkerByID", mock.Anything, int64(2)).
		Return(nil, apperrors.ErrNotFound)

	results := suite.service.BulkAssign(ctx, dto.BulkAssignRequest{
		Assignments: []dto.AssignWorkerRequest{
			{WorkerID: 1, SiteID: 10, Date: "2024-03-01"},
			{WorkerID: 2, SiteID: 10, Date: "2024-03-01"},
			{WorkerID: 3, SiteID: 10, Date: "2024-03-01"},
		},
	})

	suite.Require().Len(results, 3)
	suite.NoError(results[0].Err)
	suite.NotZero(results[0].AssignmentID)
	suite.Require().Error(results[1].Err)
	suite.ErrorIs(results[1].Err, apperrors.ErrNotFound)
	suite.NotEmpty(results[1].ErrMessage)
	suite.NoError(results[2].Err)
	suite.NotZero(results[2].AssignmentID)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}

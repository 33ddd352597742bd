package services

import (
	"context"
	"fmt"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
)

// AssignmentService moves workers between sites. A worker has at most
// one active assignment; every transition closes the old row and opens
// a new one in a single repository transaction.
type AssignmentService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	workerRepo     portsrepo.WorkerRepositoryFacade
	siteRepo       portsrepo.SiteRepositoryFacade
	notifier       *notify.Notifier
}

func NewAssignmentService(
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	siteRepo portsrepo.SiteRepositoryFacade,
	notifier *notify.Notifier,
) portssvc.AssignmentSvcFacade {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		notifier:       notifier,
	}
}

var _ portssvc.AssignmentSvcFacade = (*AssignmentService)(nil)

func (s *AssignmentService) AssignWorkerToSite(ctx context.Context, req dto.AssignWorkerRequest) (int64, error) {
	if _, err := domain.ParseDate(req.Date); err != nil {
		return 0, fmt.Errorf("invalid assignment date %q: %w", req.Date, apperrors.ErrValidation)
	}

	// Both sides of the link must exist before the transition runs.
	if _, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID); err != nil {
		return 0, fmt.Errorf("worker %d: %w", req.WorkerID, err)
	}
	if _, err := s.siteRepo.FindSiteByID(ctx, req.SiteID); err != nil {
		return 0, fmt.Errorf("site %d: %w", req.SiteID, err)
	}

	assignmentID, err := s.assignmentRepo.AssignWorkerToSite(ctx, req.WorkerID, req.SiteID, req.Date)
	if err != nil {
		s.LogError(ctx, err, "Failed to assign worker to site", "worker_id", req.WorkerID, "site_id", req.SiteID)
		return 0, fmt.Errorf("failed to assign worker to site: %w", err)
	}

	s.LogInfo(ctx, "Worker assigned to site", "worker_id", req.WorkerID, "site_id", req.SiteID, "assignment_id", assignmentID)
	s.notifier.Notify(notify.TableAssignments)
	return assignmentID, nil
}

func (s *AssignmentService) DeactivateCurrentAssignment(ctx context.Context, workerID int64, date string) error {
	if _, err := domain.ParseDate(date); err != nil {
		return fmt.Errorf("invalid end date %q: %w", date, apperrors.ErrValidation)
	}
	if err := s.assignmentRepo.DeactivateCurrentAssignments(ctx, workerID, date); err != nil {
		s.LogError(ctx, err, "Failed to deactivate assignment", "worker_id", workerID)
		return fmt.Errorf("failed to deactivate assignment: %w", err)
	}
	s.notifier.Notify(notify.TableAssignments)
	return nil
}

// BulkAssign processes the batch in input order, so when a worker
// appears more than once the last entry determines their final site.
func (s *AssignmentService) BulkAssign(ctx context.Context, req dto.BulkAssignRequest) []domain.BulkAssignResult {
	results := make([]domain.BulkAssignResult, 0, len(req.Assignments))
	for _, entry := range req.Assignments {
		result := domain.BulkAssignResult{
			WorkerID: entry.WorkerID,
			SiteID:   entry.SiteID,
		}
		assignmentID, err := s.AssignWorkerToSite(ctx, entry)
		if err != nil {
			result.Err = err
			result.ErrMessage = err.Error()
		} else {
			result.AssignmentID = assignmentID
		}
		results = append(results, result)
	}
	return results
}

func (s *AssignmentService) GetActiveAssignment(ctx context.Context, workerID int64) (*domain.WorkerSiteAssignment, error) {
	return s.assignmentRepo.FindActiveAssignmentForWorker(ctx, workerID)
}

func (s *AssignmentService) GetWorkersForSite(ctx context.Context, siteID int64) ([]domain.Worker, error) {
	return s.workerRepo.FindWorkersBySite(ctx, siteID)
}

func (s *AssignmentService) GetAssignment(ctx context.Context, assignmentID int64) (*domain.WorkerSiteAssignment, error) {
	return s.assignmentRepo.FindAssignmentByID(ctx, assignmentID)
}

func (s *AssignmentService) ListAssignmentsForWorker(ctx context.Context, workerID int64) ([]domain.WorkerSiteAssignment, error) {
	return s.assignmentRepo.FindAssignmentsForWorker(ctx, workerID)
}

func (s *AssignmentService) ListAssignmentsForSite(ctx context.Context, siteID int64) ([]domain.WorkerSiteAssignment, error) {
	return s.assignmentRepo.FindAssignmentsForSite(ctx, siteID)
}

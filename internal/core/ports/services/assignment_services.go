package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// AssignmentSvcFacade maintains the single-active-assignment invariant
// per worker and provides current-site lookups.
type AssignmentSvcFacade interface {
	// AssignWorkerToSite moves a worker to a site as one atomic
	// transition and returns the new assignment's ID.
	AssignWorkerToSite(ctx context.Context, req dto.AssignWorkerRequest) (int64, error)

	// DeactivateCurrentAssignment ends the worker's active assignment
	// without starting a new one. No-op when nothing is active.
	DeactivateCurrentAssignment(ctx context.Context, workerID int64, date string) error

	// BulkAssign performs the transition for each entry in input order.
	// Best effort: an entry's failure is captured in its result and does
	// not stop later entries.
	BulkAssign(ctx context.Context, req dto.BulkAssignRequest) []domain.BulkAssignResult

	// GetActiveAssignment returns the worker's active assignment, or
	// apperrors.ErrNotFound when none exists.
	GetActiveAssignment(ctx context.Context, workerID int64) (*domain.WorkerSiteAssignment, error)

	// GetWorkersForSite returns workers currently assigned to the site.
	GetWorkersForSite(ctx context.Context, siteID int64) ([]domain.Worker, error)

	GetAssignment(ctx context.Context, assignmentID int64) (*domain.WorkerSiteAssignment, error)
	ListAssignmentsForWorker(ctx context.Context, workerID int64) ([]domain.WorkerSiteAssignment, error)
	ListAssignmentsForSite(ctx context.Context, siteID int64) ([]domain.WorkerSiteAssignment, error)
}

package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// AssignmentReader defines read operations for worker-site assignments.
type AssignmentReader interface {
	// FindAssignmentByID retrieves a specific assignment by ID.
	FindAssignmentByID(ctx context.Context, assignmentID int64) (*domain.WorkerSiteAssignment, error)

	// FindActiveAssignmentForWorker retrieves the worker's single active
	// assignment, or apperrors.ErrNotFound when none is active.
	FindActiveAssignmentForWorker(ctx context.Context, workerID int64) (*domain.WorkerSiteAssignment, error)

	// FindAssignmentsForWorker retrieves all assignments for a worker,
	// assignment-date descending.
	FindAssignmentsForWorker(ctx context.Context, workerID int64) ([]domain.WorkerSiteAssignment, error)

	// FindAssignmentsForSite retrieves all assignments targeting a site,
	// assignment-date descending.
	FindAssignmentsForSite(ctx context.Context, siteID int64) ([]domain.WorkerSiteAssignment, error)
}

// AssignmentWriter defines write operations for worker-site assignments.
type AssignmentWriter interface {
	// AssignWorkerToSite deactivates the worker's active assignment (if
	// any, stamping endDate = date) and inserts a fresh active row, all
	// within one store transaction. Returns the new assignment's ID.
	AssignWorkerToSite(ctx context.Context, workerID, siteID int64, date string) (int64, error)

	// DeactivateCurrentAssignments flips the worker's active assignment
	// (if any) to inactive with the given end date. Not an error when
	// nothing is active.
	DeactivateCurrentAssignments(ctx context.Context, workerID int64, endDate string) error

	// DeleteAssignment removes an assignment row.
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}

// AssignmentRepositoryFacade combines all assignment repository interfaces.
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}

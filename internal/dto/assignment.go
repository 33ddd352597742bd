package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// AssignWorkerRequest moves a worker to a site effective on Date.
type AssignWorkerRequest struct {
	WorkerID int64  `json:"workerID" binding:"required"`
	SiteID   int64  `json:"siteID" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
}

// BulkAssignRequest carries a batch of assignment transitions,
// processed in order.
type BulkAssignRequest struct {
	Assignments []AssignWorkerRequest `json:"assignments" binding:"required,min=1,dive"`
}

// DeactivateAssignmentRequest ends a worker's active assignment.
type DeactivateAssignmentRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// AssignmentResponse is the API shape of a worker-site assignment.
type AssignmentResponse struct {
	AssignmentID   int64   `json:"assignmentID"`
	WorkerID       int64   `json:"workerID"`
	SiteID         int64   `json:"siteID"`
	AssignmentDate string  `json:"assignmentDate"`
	EndDate        *string `json:"endDate,omitempty"`
	IsActive       bool    `json:"isActive"`
}

func ToAssignmentResponse(a *domain.WorkerSiteAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:   a.AssignmentID,
		WorkerID:       a.WorkerID,
		SiteID:         a.SiteID,
		AssignmentDate: a.AssignmentDate,
		EndDate:        a.EndDate,
		IsActive:       a.IsActive,
	}
}

// ListAssignmentsResponse wraps a list of assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

func ToListAssignmentsResponse(assignments []domain.WorkerSiteAssignment) ListAssignmentsResponse {
	out := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		out[i] = ToAssignmentResponse(&assignments[i])
	}
	return ListAssignmentsResponse{Assignments: out}
}

// BulkAssignResponse reports per-entry outcomes of a bulk assignment.
type BulkAssignResponse struct {
	Results []domain.BulkAssignResult `json:"results"`
}

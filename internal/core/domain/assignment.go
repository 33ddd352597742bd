package domain

// WorkerSiteAssignment links a worker to a site for a period of time.
// For a given worker at most one assignment row is active at any instant;
// the active row is the worker's current site.
// BulkAssignResult reports the outcome of one entry in a bulk
// assignment. Err is nil on success; failed entries do not stop the
// rest of the batch, so callers must inspect each result.
type BulkAssignResult struct {
	WorkerID     int64  `json:"workerID"`
	SiteID       int64  `json:"siteID"`
	AssignmentID int64  `json:"assignmentID,omitempty"`
	Err          error  `json:"-"`
	ErrMessage   string `json:"error,omitempty"`
}

type WorkerSiteAssignment struct {
	AssignmentID   int64   `json:"assignmentID"`
	WorkerID       int64   `json:"workerID"`
	SiteID         int64   `json:"siteID"`
	AssignmentDate string  `json:"assignmentDate"`
	EndDate        *string `json:"endDate,omitempty"`
	IsActive       bool    `json:"isActive"`
	AuditFields
}

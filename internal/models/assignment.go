package models

// WorkerSiteAssignment is the database representation of an assignment row.
type WorkerSiteAssignment struct {
	AssignmentID   int64   `db:"assignment_id"`
	WorkerID       int64   `db:"worker_id"`
	SiteID         int64   `db:"site_id"`
	AssignmentDate string  `db:"assignment_date"`
	EndDate        *string `db:"end_date"`
	IsActive       bool    `db:"is_active"`
	AuditFields
}

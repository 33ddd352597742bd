package domain

import "time"

// ExportJobStatus is the lifecycle state of a background export.
type ExportJobStatus string

const (
	ExportJobPending   ExportJobStatus = "PENDING"
	ExportJobCompleted ExportJobStatus = "COMPLETED"
	ExportJobFailed    ExportJobStatus = "FAILED"
)

// ExportJob tracks one background report export. Jobs run off the
// interactive request path; callers poll until the status settles.
type ExportJob struct {
	JobID       string          `json:"jobID"`
	ReportType  ReportType      `json:"reportType"`
	Format      ExportFormat    `json:"format"`
	Status      ExportJobStatus `json:"status"`
	FilePath    string          `json:"filePath,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

// ReportDocument is the renderer-agnostic form of a generated report:
// a title, an optional date-range line, tabular rows and a summary line.
type ReportDocument struct {
	Title     string
	DateRange string
	Columns   []string
	Rows      [][]string
	Summary   string
}

package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// ReportRequest is the query shape driving report generation. The date
// range only applies when both bounds are present.
type ReportRequest struct {
	Type      string  `form:"type" json:"type" binding:"required,oneof=WORKER_LIST PAYMENT_HISTORY ADVANCE_PAYMENT SITE_SUMMARY ATTENDANCE"`
	StartDate *string `form:"startDate" json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	WorkerID  *int64  `form:"workerID" json:"workerID"`
	SiteID    *int64  `form:"siteID" json:"siteID"`
}

// ToReportFilter converts the request to the engine's filter form.
func (r ReportRequest) ToReportFilter() domain.ReportFilter {
	return domain.ReportFilter{
		Type:      domain.ReportType(r.Type),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		WorkerID:  r.WorkerID,
		SiteID:    r.SiteID,
	}
}

// ExportReportRequest asks for a rendered report document.
type ExportReportRequest struct {
	ReportRequest
	Format string `json:"format" binding:"required,oneof=PDF EXCEL"`
}

// ExportJobResponse is the API shape of an export job.
type ExportJobResponse struct {
	JobID       string `json:"jobID"`
	ReportType  string `json:"reportType"`
	Format      string `json:"format"`
	Status      string `json:"status"`
	FilePath    string `json:"filePath,omitempty"`
	Error       string `json:"error,omitempty"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

func ToExportJobResponse(j *domain.ExportJob) ExportJobResponse {
	resp := ExportJobResponse{
		JobID:      j.JobID,
		ReportType: string(j.ReportType),
		Format:     string(j.Format),
		Status:     string(j.Status),
		FilePath:   j.FilePath,
		Error:      j.Error,
		CreatedAt:  j.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if j.CompletedAt != nil {
		resp.CompletedAt = j.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

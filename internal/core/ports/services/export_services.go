package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// DocumentRenderer writes a laid-out report to a file. Implementations
// must not leave a partial file behind on failure.
type DocumentRenderer interface {
	Render(doc domain.ReportDocument, path string) error
}

// ExportSvcFacade runs report exports off the interactive path.
type ExportSvcFacade interface {
	// StartExport validates the request, registers a job and returns it
	// immediately; rendering continues in the background.
	StartExport(ctx context.Context, req dto.ExportReportRequest) (*domain.ExportJob, error)

	// GetJob returns the current state of a job by its ID.
	GetJob(ctx context.Context, jobID string) (*domain.ExportJob, error)
}

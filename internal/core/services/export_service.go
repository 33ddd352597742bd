package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/google/uuid"
)

// ExportService renders report documents to files off the interactive
// path. Jobs are tracked in memory; callers poll GetJob until the
// status settles on COMPLETED or FAILED.
type ExportService struct {
	BaseService
	reporting portssvc.ReportingSvcFacade
	renderers map[domain.ExportFormat]portssvc.DocumentRenderer
	exportDir string

	mu   sync.RWMutex
	jobs map[string]*domain.ExportJob
}

func NewExportService(
	reporting portssvc.ReportingSvcFacade,
	renderers map[domain.ExportFormat]portssvc.DocumentRenderer,
	exportDir string,
) portssvc.ExportSvcFacade {
	return &ExportService{
		reporting: reporting,
		renderers: renderers,
		exportDir: exportDir,
		jobs:      make(map[string]*domain.ExportJob),
	}
}

var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

func fileExtension(format domain.ExportFormat) string {
	if format == domain.ExportExcel {
		return ".xlsx"
	}
	return ".pdf"
}

func (s *ExportService) StartExport(ctx context.Context, req dto.ExportReportRequest) (*domain.ExportJob, error) {
	filter := req.ToReportFilter()
	if !filter.Type.IsValid() {
		return nil, fmt.Errorf("unknown report type %q: %w", req.Type, apperrors.ErrValidation)
	}
	format := domain.ExportFormat(req.Format)
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("no renderer for format %q: %w", req.Format, apperrors.ErrValidation)
	}

	job := &domain.ExportJob{
		JobID:      uuid.NewString(),
		ReportType: filter.Type,
		Format:     format,
		Status:     domain.ExportJobPending,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.jobs[job.JobID] = job
	s.mu.Unlock()

	s.LogInfo(ctx, "Export job started", "job_id", job.JobID, "report_type", string(filter.Type), "format", string(format))

	// Rendering outlives the HTTP request, so detach from its deadline
	// while keeping request-scoped values (logger) available.
	go s.run(context.WithoutCancel(ctx), job.JobID, format, filter, renderer)

	snapshot := *job
	return &snapshot, nil
}

func (s *ExportService) run(ctx context.Context, jobID string, format domain.ExportFormat, filter domain.ReportFilter, renderer portssvc.DocumentRenderer) {
	path := filepath.Join(s.exportDir, jobID+fileExtension(format))

	doc, err := s.reporting.BuildDocument(ctx, filter)
	if err != nil {
		s.fail(ctx, jobID, fmt.Errorf("failed to build report document: %w", err))
		return
	}

	if err := renderer.Render(*doc, path); err != nil {
		s.fail(ctx, jobID, fmt.Errorf("failed to render report: %w", err))
		return
	}

	now := time.Now()
	s.mu.Lock()
	if job, ok := s.jobs[jobID]; ok {
		job.Status = domain.ExportJobCompleted
		job.FilePath = path
		job.CompletedAt = &now
	}
	s.mu.Unlock()
	s.LogInfo(ctx, "Export job completed", "job_id", jobID, "path", path)
}

func (s *ExportService) fail(ctx context.Context, jobID string, err error) {
	now := time.Now()
	s.mu.Lock()
	if job, ok := s.jobs[jobID]; ok {
		job.Status = domain.ExportJobFailed
		job.Error = err.Error()
		job.CompletedAt = &now
	}
	s.mu.Unlock()
	s.LogError(ctx, err, "Export job failed", "job_id", jobID)
}

func (s *ExportService) GetJob(ctx context.Context, jobID string) (*domain.ExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	snapshot := *job
	return &snapshot, nil
}

package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// ReportingSvcFacade runs the report filter engine over current store
// contents. Filtering is pure: identical filters over unchanged data
// yield identical output sets and totals.
type ReportingSvcFacade interface {
	GenerateWorkerList(ctx context.Context) (*domain.WorkerListReport, error)
	GeneratePaymentHistory(ctx context.Context, filter domain.ReportFilter) (*domain.PaymentReport, error)
	GenerateAdvanceReport(ctx context.Context, filter domain.ReportFilter) (*domain.AdvanceReport, error)
	GenerateAttendanceReport(ctx context.Context, filter domain.ReportFilter) (*domain.AttendanceReport, error)
	GenerateSiteSummary(ctx context.Context, filter domain.ReportFilter) (*domain.SiteSummaryReport, error)

	// BuildDocument generates the report selected by the filter and lays
	// it out as a renderer-agnostic document.
	BuildDocument(ctx context.Context, filter domain.ReportFilter) (*domain.ReportDocument, error)
}

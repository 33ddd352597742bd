package services

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/config"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
)

// NewServiceContainer wires every service over the shared repositories,
// notifier and export renderers.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	notifier *notify.Notifier,
	renderers map[domain.ExportFormat]portssvc.DocumentRenderer,
) *portssvc.ServiceContainer {
	reporting := NewReportingService(repos)
	return &portssvc.ServiceContainer{
		Worker:     NewWorkerService(repos.WorkerRepo, notifier),
		Site:       NewSiteService(repos.SiteRepo, notifier),
		Assignment: NewAssignmentService(repos.AssignmentRepo, repos.WorkerRepo, repos.SiteRepo, notifier),
		Payment:    NewPaymentService(repos.PaymentRepo, repos.WorkerRepo, repos.SiteRepo, notifier),
		Advance:    NewAdvanceService(repos.AdvanceRepo, repos.WorkerRepo, notifier),
		Attendance: NewAttendanceService(repos.AttendanceRepo, repos.WorkerRepo, repos.SiteRepo, notifier),
		Reporting:  reporting,
		Dashboard:  NewDashboardService(repos),
		Export:     NewExportService(reporting, renderers, cfg.ExportDir),
		Auth:       NewAuthService(repos.AppUserRepo, cfg),
	}
}

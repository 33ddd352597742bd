package services

// ServiceContainer holds all service facades for dependency injection
// into the HTTP handlers.
type ServiceContainer struct {
	Worker     WorkerSvcFacade
	Site       SiteSvcFacade
	Assignment AssignmentSvcFacade
	Payment    PaymentSvcFacade
	Advance    AdvanceSvcFacade
	Attendance AttendanceSvcFacade
	Reporting  ReportingSvcFacade
	Dashboard  DashboardSvcFacade
	Export     ExportSvcFacade
	Auth       AuthSvcFacade
}

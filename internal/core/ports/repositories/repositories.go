package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	WorkerRepo     WorkerRepositoryFacade
	SiteRepo       SiteRepositoryFacade
	AssignmentRepo AssignmentRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	AdvanceRepo    AdvanceRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	AppUserRepo    AppUserRepositoryFacade
}

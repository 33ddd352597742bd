package pgsql

import (
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkerRepo:     newPgxWorkerRepository(pool),
		SiteRepo:       newPgxSiteRepository(pool),
		AssignmentRepo: newPgxAssignmentRepository(pool),
		PaymentRepo:    newPgxPaymentRepository(pool),
		AdvanceRepo:    newPgxAdvanceRepository(pool),
		AttendanceRepo: newPgxAttendanceRepository(pool),
		AppUserRepo:    newPgxAppUserRepository(pool),
	}
}

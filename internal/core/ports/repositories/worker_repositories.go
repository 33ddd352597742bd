package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data.
type WorkerReader interface {
	// FindWorkerByID retrieves a specific worker by ID.
	FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)

	// FindWorkers retrieves all workers ordered by name.
	FindWorkers(ctx context.Context) ([]domain.Worker, error)

	// FindActiveWorkers retrieves workers with the active flag set, ordered by name.
	FindActiveWorkers(ctx context.Context) ([]domain.Worker, error)

	// SearchWorkers retrieves workers whose name or phone number contains the query.
	SearchWorkers(ctx context.Context, query string) ([]domain.Worker, error)

	// FindWorkersBySite retrieves workers whose currently-active assignment targets the site.
	FindWorkersBySite(ctx context.Context, siteID int64) ([]domain.Worker, error)

	// CountActiveWorkers counts workers with the active flag set.
	CountActiveWorkers(ctx context.Context) (int, error)

	// CountWorkers counts all workers.
	CountWorkers(ctx context.Context) (int, error)
}

// WorkerWriter defines write operations for worker data.
type WorkerWriter interface {
	// SaveWorker persists a new worker and returns its generated ID.
	SaveWorker(ctx context.Context, worker domain.Worker) (int64, error)

	// UpdateWorker updates an existing worker's details.
	UpdateWorker(ctx context.Context, worker domain.Worker) error

	// DeleteWorker hard-deletes a worker; dependent payments, advances,
	// attendance and assignments cascade at the store level.
	DeleteWorker(ctx context.Context, workerID int64) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}

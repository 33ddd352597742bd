package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
	"github.com/buildcrew/construction_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workerColumns = `worker_id, name, phone_number, address, role, national_id, join_date, is_active, profile_image_path, created_at, last_updated_at`

type PgxWorkerRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkerRepository(db *pgxpool.Pool) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{db: db}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

func scanWorker(row pgx.Row) (*models.Worker, error) {
	var m models.Worker
	err := row.Scan(
		&m.WorkerID,
		&m.Name,
		&m.PhoneNumber,
		&m.Address,
		&m.Role,
		&m.NationalID,
		&m.JoinDate,
		&m.IsActive,
		&m.ProfileImagePath,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectWorkers(rows pgx.Rows) ([]domain.Worker, error) {
	defer rows.Close()
	ms := []models.Worker{}
	for rows.Next() {
		m, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", rows.Err())
	}
	return mapping.ToDomainWorkerSlice(ms), nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (int64, error) {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (name, phone_number, address, role, national_id, join_date, is_active, profile_image_path, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING worker_id;
	`
	var workerID int64
	err := r.db.QueryRow(ctx, query,
		m.Name,
		m.PhoneNumber,
		m.Address,
		m.Role,
		m.NationalID,
		m.JoinDate,
		m.IsActive,
		m.ProfileImagePath,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&workerID)
	if err != nil {
		return 0, fmt.Errorf("failed to save worker: %w", err)
	}
	return workerID, nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1;`
	m, err := scanWorker(r.db.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find worker by ID %d: %w", workerID, err)
	}
	d := mapping.ToDomainWorker(*m)
	return &d, nil
}

func (r *PgxWorkerRepository) FindWorkers(ctx context.Context) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	return collectWorkers(rows)
}

func (r *PgxWorkerRepository) FindActiveWorkers(ctx context.Context) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE is_active ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active workers: %w", err)
	}
	return collectWorkers(rows)
}

func (r *PgxWorkerRepository) SearchWorkers(ctx context.Context, searchQuery string) ([]domain.Worker, error) {
	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE name ILIKE '%' || $1 || '%' OR phone_number LIKE '%' || $1 || '%'
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to search workers: %w", err)
	}
	return collectWorkers(rows)
}

func (r *PgxWorkerRepository) FindWorkersBySite(ctx context.Context, siteID int64) ([]domain.Worker, error) {
	query := `
		SELECT w.worker_id, w.name, w.phone_number, w.address, w.role, w.national_id, w.join_date, w.is_active, w.profile_image_path, w.created_at, w.last_updated_at
		FROM workers w
		INNER JOIN worker_site_assignments wsa ON w.worker_id = wsa.worker_id
		WHERE wsa.site_id = $1 AND wsa.is_active;
	`
	rows, err := r.db.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers for site %d: %w", siteID, err)
	}
	return collectWorkers(rows)
}

func (r *PgxWorkerRepository) CountActiveWorkers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workers WHERE is_active;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active workers: %w", err)
	}
	return count, nil
}

func (r *PgxWorkerRepository) CountWorkers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workers;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return count, nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers
		SET name = $1, phone_number = $2, address = $3, role = $4, national_id = $5, join_date = $6, is_active = $7, profile_image_path = $8, last_updated_at = $9
		WHERE worker_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.PhoneNumber,
		m.Address,
		m.Role,
		m.NationalID,
		m.JoinDate,
		m.IsActive,
		m.ProfileImagePath,
		m.LastUpdatedAt,
		m.WorkerID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update worker query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("worker not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxWorkerRepository) DeleteWorker(ctx context.Context, workerID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM workers WHERE worker_id = $1;`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("worker not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

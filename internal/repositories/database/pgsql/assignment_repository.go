package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
	"github.com/buildcrew/construction_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assignmentColumns = `assignment_id, worker_id, site_id, assignment_date, end_date, is_active, created_at, last_updated_at`

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(db *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

func scanAssignment(row pgx.Row) (*models.WorkerSiteAssignment, error) {
	var m models.WorkerSiteAssignment
	err := row.Scan(
		&m.AssignmentID,
		&m.WorkerID,
		&m.SiteID,
		&m.AssignmentDate,
		&m.EndDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectAssignments(rows pgx.Rows) ([]domain.WorkerSiteAssignment, error) {
	defer rows.Close()
	ms := []models.WorkerSiteAssignment{}
	for rows.Next() {
		m, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", rows.Err())
	}
	return mapping.ToDomainAssignmentSlice(ms), nil
}

func (r *PgxAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID int64) (*domain.WorkerSiteAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM worker_site_assignments WHERE assignment_id = $1;`
	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment by ID %d: %w", assignmentID, err)
	}
	d := mapping.ToDomainAssignment(*m)
	return &d, nil
}

func (r *PgxAssignmentRepository) FindActiveAssignmentForWorker(ctx context.Context, workerID int64) (*domain.WorkerSiteAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM worker_site_assignments WHERE worker_id = $1 AND is_active;`
	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active assignment for worker %d: %w", workerID, err)
	}
	d := mapping.ToDomainAssignment(*m)
	return &d, nil
}

func (r *PgxAssignmentRepository) FindAssignmentsForWorker(ctx context.Context, workerID int64) ([]domain.WorkerSiteAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM worker_site_assignments WHERE worker_id = $1 ORDER BY assignment_date DESC, assignment_id DESC;`
	rows, err := r.Pool.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for worker %d: %w", workerID, err)
	}
	return collectAssignments(rows)
}

func (r *PgxAssignmentRepository) FindAssignmentsForSite(ctx context.Context, siteID int64) ([]domain.WorkerSiteAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM worker_site_assignments WHERE site_id = $1 ORDER BY assignment_date DESC, assignment_id DESC;`
	rows, err := r.Pool.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for site %d: %w", siteID, err)
	}
	return collectAssignments(rows)
}

// AssignWorkerToSite closes out the worker's current assignment and opens
// the new one inside a single transaction, so a crash between the two
// statements can never leave the worker with zero or two active rows.
func (r *PgxAssignmentRepository) AssignWorkerToSite(ctx context.Context, workerID, siteID int64, date string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now()
	deactivate := `
		UPDATE worker_site_assignments
		SET is_active = FALSE, end_date = $1, last_updated_at = $2
		WHERE worker_id = $3 AND is_active;
	`
	if _, err := tx.Exec(ctx, deactivate, date, now, workerID); err != nil {
		return 0, fmt.Errorf("failed to deactivate current assignment for worker %d: %w", workerID, err)
	}

	insert := `
		INSERT INTO worker_site_assignments (worker_id, site_id, assignment_date, end_date, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, NULL, TRUE, $4, $4)
		RETURNING assignment_id;
	`
	var assignmentID int64
	if err := tx.QueryRow(ctx, insert, workerID, siteID, date, now).Scan(&assignmentID); err != nil {
		return 0, fmt.Errorf("failed to insert assignment for worker %d: %w", workerID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return assignmentID, nil
}

func (r *PgxAssignmentRepository) DeactivateCurrentAssignments(ctx context.Context, workerID int64, endDate string) error {
	query := `
		UPDATE worker_site_assignments
		SET is_active = FALSE, end_date = $1, last_updated_at = $2
		WHERE worker_id = $3 AND is_active;
	`
	// Zero rows affected just means the worker had no active assignment.
	if _, err := r.Pool.Exec(ctx, query, endDate, time.Now(), workerID); err != nil {
		return fmt.Errorf("failed to deactivate assignments for worker %d: %w", workerID, err)
	}
	return nil
}

func (r *PgxAssignmentRepository) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM worker_site_assignments WHERE assignment_id = $1;`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

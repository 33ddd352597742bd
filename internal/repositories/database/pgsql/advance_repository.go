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
	"github.com/shopspring/decimal"
)

const advanceColumns = `advance_id, worker_id, amount, advance_date, reason, notes, payment_mode, reference_number, is_recovered, created_at, last_updated_at`

type PgxAdvanceRepository struct {
	db *pgxpool.Pool
}

func newPgxAdvanceRepository(db *pgxpool.Pool) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{db: db}
}

var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

func scanAdvance(row pgx.Row) (*models.Advance, error) {
	var m models.Advance
	err := row.Scan(
		&m.AdvanceID,
		&m.WorkerID,
		&m.Amount,
		&m.AdvanceDate,
		&m.Reason,
		&m.Notes,
		&m.PaymentMode,
		&m.ReferenceNumber,
		&m.IsRecovered,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectAdvances(rows pgx.Rows) ([]domain.Advance, error) {
	defer rows.Close()
	ms := []models.Advance{}
	for rows.Next() {
		m, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating advance rows: %w", rows.Err())
	}
	return mapping.ToDomainAdvanceSlice(ms), nil
}

func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.Advance) (int64, error) {
	m := mapping.ToModelAdvance(advance)
	query := `
		INSERT INTO advances (worker_id, amount, advance_date, reason, notes, payment_mode, reference_number, is_recovered, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING advance_id;
	`
	var advanceID int64
	err := r.db.QueryRow(ctx, query,
		m.WorkerID,
		m.Amount,
		m.AdvanceDate,
		m.Reason,
		m.Notes,
		m.PaymentMode,
		m.ReferenceNumber,
		m.IsRecovered,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&advanceID)
	if err != nil {
		return 0, fmt.Errorf("failed to save advance: %w", err)
	}
	return advanceID, nil
}

func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE advance_id = $1;`
	m, err := scanAdvance(r.db.QueryRow(ctx, query, advanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance by ID %d: %w", advanceID, err)
	}
	d := mapping.ToDomainAdvance(*m)
	return &d, nil
}

func (r *PgxAdvanceRepository) FindAdvances(ctx context.Context) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances ORDER BY advance_date DESC, advance_id DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	return collectAdvances(rows)
}

func (r *PgxAdvanceRepository) FindAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE worker_id = $1 ORDER BY advance_date DESC, advance_id DESC;`
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances for worker %d: %w", workerID, err)
	}
	return collectAdvances(rows)
}

func (r *PgxAdvanceRepository) FindUnsettledAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE worker_id = $1 AND NOT is_recovered ORDER BY advance_date DESC, advance_id DESC;`
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unsettled advances for worker %d: %w", workerID, err)
	}
	return collectAdvances(rows)
}

func (r *PgxAdvanceRepository) FindAdvancesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE advance_date BETWEEN $1 AND $2 ORDER BY advance_date DESC, advance_id DESC;`
	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances by date range: %w", err)
	}
	return collectAdvances(rows)
}

func (r *PgxAdvanceRepository) SumUnsettledAdvancesForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM advances WHERE worker_id = $1 AND NOT is_recovered;`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, workerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum unsettled advances for worker %d: %w", workerID, err)
	}
	return total, nil
}

func (r *PgxAdvanceRepository) UpdateAdvance(ctx context.Context, advance domain.Advance) error {
	m := mapping.ToModelAdvance(advance)
	query := `
		UPDATE advances
		SET worker_id = $1, amount = $2, advance_date = $3, reason = $4, notes = $5, payment_mode = $6, reference_number = $7, is_recovered = $8, last_updated_at = $9
		WHERE advance_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.WorkerID,
		m.Amount,
		m.AdvanceDate,
		m.Reason,
		m.Notes,
		m.PaymentMode,
		m.ReferenceNumber,
		m.IsRecovered,
		m.LastUpdatedAt,
		m.AdvanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update advance query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("advance not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAdvanceRepository) SettleAdvances(ctx context.Context, advanceIDs []int64) error {
	if len(advanceIDs) == 0 {
		return nil
	}
	query := `
		UPDATE advances
		SET is_recovered = TRUE, last_updated_at = $1
		WHERE advance_id = ANY($2);
	`
	if _, err := r.db.Exec(ctx, query, time.Now(), advanceIDs); err != nil {
		return fmt.Errorf("failed to settle advances: %w", err)
	}
	return nil
}

func (r *PgxAdvanceRepository) DeleteAdvance(ctx context.Context, advanceID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM advances WHERE advance_id = $1;`, advanceID)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("advance not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

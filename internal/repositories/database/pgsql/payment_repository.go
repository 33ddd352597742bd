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
	"github.com/shopspring/decimal"
)

const paymentColumns = `payment_id, worker_id, site_id, payment_date, amount, description, payment_mode, reference_number, for_month, for_year, notes, created_at, last_updated_at`

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.WorkerID,
		&m.SiteID,
		&m.PaymentDate,
		&m.Amount,
		&m.Description,
		&m.PaymentMode,
		&m.ReferenceNumber,
		&m.ForMonth,
		&m.ForYear,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()
	ms := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *PgxPaymentRepository) sumPayments(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (worker_id, site_id, payment_date, amount, description, payment_mode, reference_number, for_month, for_year, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING payment_id;
	`
	var paymentID int64
	err := r.db.QueryRow(ctx, query,
		m.WorkerID,
		m.SiteID,
		m.PaymentDate,
		m.Amount,
		m.Description,
		m.PaymentMode,
		m.ReferenceNumber,
		m.ForMonth,
		m.ForYear,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&paymentID)
	if err != nil {
		return 0, fmt.Errorf("failed to save payment: %w", err)
	}
	return paymentID, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %d: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(*m)
	return &d, nil
}

func (r *PgxPaymentRepository) FindPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentsForWorker(ctx context.Context, workerID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE worker_id = $1 ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for worker %d: %w", workerID, err)
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentsForSite(ctx context.Context, siteID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE site_id = $1 ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.db.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for site %d: %w", siteID, err)
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentsForMonthYear(ctx context.Context, month, year int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE for_month = $1 AND for_year = $2 ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.db.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for period %d/%d: %w", month, year, err)
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentsByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_date BETWEEN $1 AND $2 ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by date range: %w", err)
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) SumPaymentsForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	total, err := r.sumPayments(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE worker_id = $1;`, workerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for worker %d: %w", workerID, err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) SumPaymentsForSite(ctx context.Context, siteID int64) (decimal.Decimal, error) {
	total, err := r.sumPayments(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE site_id = $1;`, siteID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for site %d: %w", siteID, err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) SumPaymentsForMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error) {
	total, err := r.sumPayments(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE for_month = $1 AND for_year = $2;`, month, year)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for period %d/%d: %w", month, year, err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET worker_id = $1, site_id = $2, payment_date = $3, amount = $4, description = $5, payment_mode = $6, reference_number = $7, for_month = $8, for_year = $9, notes = $10, last_updated_at = $11
		WHERE payment_id = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.WorkerID,
		m.SiteID,
		m.PaymentDate,
		m.Amount,
		m.Description,
		m.PaymentMode,
		m.ReferenceNumber,
		m.ForMonth,
		m.ForYear,
		m.Notes,
		m.LastUpdatedAt,
		m.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

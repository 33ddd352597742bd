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

const attendanceColumns = `attendance_id, worker_id, site_id, date, status, hours_worked, notes, created_at, last_updated_at`

type PgxAttendanceRepository struct {
	db *pgxpool.Pool
}

func newPgxAttendanceRepository(db *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{db: db}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var m models.Attendance
	err := row.Scan(
		&m.AttendanceID,
		&m.WorkerID,
		&m.SiteID,
		&m.Date,
		&m.Status,
		&m.HoursWorked,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectAttendance(rows pgx.Rows) ([]domain.Attendance, error) {
	defer rows.Close()
	ms := []models.Attendance{}
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", rows.Err())
	}
	return mapping.ToDomainAttendanceSlice(ms), nil
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) (int64, error) {
	m := mapping.ToModelAttendance(attendance)
	query := `
		INSERT INTO attendance (worker_id, site_id, date, status, hours_worked, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING attendance_id;
	`
	var attendanceID int64
	err := r.db.QueryRow(ctx, query,
		m.WorkerID,
		m.SiteID,
		m.Date,
		m.Status,
		m.HoursWorked,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&attendanceID)
	if err != nil {
		return 0, fmt.Errorf("failed to save attendance: %w", err)
	}
	return attendanceID, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE attendance_id = $1;`
	m, err := scanAttendance(r.db.QueryRow(ctx, query, attendanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance by ID %d: %w", attendanceID, err)
	}
	d := mapping.ToDomainAttendance(*m)
	return &d, nil
}

func (r *PgxAttendanceRepository) FindAttendance(ctx context.Context) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance ORDER BY date DESC, attendance_id DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceForWorker(ctx context.Context, workerID int64) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE worker_id = $1 ORDER BY date DESC, attendance_id DESC;`
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for worker %d: %w", workerID, err)
	}
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceForSite(ctx context.Context, siteID int64) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE site_id = $1 ORDER BY date DESC, attendance_id DESC;`
	rows, err := r.db.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for site %d: %w", siteID, err)
	}
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceForDate(ctx context.Context, date string) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE date = $1 ORDER BY attendance_id;`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for date %s: %w", date, err)
	}
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceForWorkerInDateRange(ctx context.Context, workerID int64, startDate, endDate string) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE worker_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date DESC, attendance_id DESC;`
	rows, err := r.db.Query(ctx, query, workerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range for worker %d: %w", workerID, err)
	}
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) CountAttendanceByStatus(ctx context.Context, workerID int64, status domain.AttendanceStatus, startDate, endDate string) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE worker_id = $1 AND status = $2 AND date BETWEEN $3 AND $4;`
	var count int
	if err := r.db.QueryRow(ctx, query, workerID, string(status), startDate, endDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance by status for worker %d: %w", workerID, err)
	}
	return count, nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	m := mapping.ToModelAttendance(attendance)
	query := `
		UPDATE attendance
		SET worker_id = $1, site_id = $2, date = $3, status = $4, hours_worked = $5, notes = $6, last_updated_at = $7
		WHERE attendance_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.WorkerID,
		m.SiteID,
		m.Date,
		m.Status,
		m.HoursWorked,
		m.Notes,
		m.LastUpdatedAt,
		m.AttendanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update attendance query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAttendanceRepository) DeleteAttendance(ctx context.Context, attendanceID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE attendance_id = $1;`, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

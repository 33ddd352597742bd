package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data.
type AttendanceReader interface {
	// FindAttendanceByID retrieves a specific attendance record by ID.
	FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error)

	// FindAttendance retrieves all attendance records, date descending.
	FindAttendance(ctx context.Context) ([]domain.Attendance, error)

	// FindAttendanceForWorker retrieves a worker's records, date descending.
	FindAttendanceForWorker(ctx context.Context, workerID int64) ([]domain.Attendance, error)

	// FindAttendanceForSite retrieves a site's records, date descending.
	FindAttendanceForSite(ctx context.Context, siteID int64) ([]domain.Attendance, error)

	// FindAttendanceForDate retrieves all records for a single date.
	FindAttendanceForDate(ctx context.Context, date string) ([]domain.Attendance, error)

	// FindAttendanceForWorkerInDateRange retrieves a worker's records in
	// the inclusive range, date descending.
	FindAttendanceForWorkerInDateRange(ctx context.Context, workerID int64, startDate, endDate string) ([]domain.Attendance, error)

	// CountAttendanceByStatus counts a worker's records with the given
	// status inside the inclusive range.
	CountAttendanceByStatus(ctx context.Context, workerID int64, status domain.AttendanceStatus, startDate, endDate string) (int, error)
}

// AttendanceWriter defines write operations for attendance data.
type AttendanceWriter interface {
	// SaveAttendance persists a new record and returns its generated ID.
	SaveAttendance(ctx context.Context, attendance domain.Attendance) (int64, error)

	// UpdateAttendance updates an existing record.
	UpdateAttendance(ctx context.Context, attendance domain.Attendance) error

	// DeleteAttendance removes an attendance row.
	DeleteAttendance(ctx context.Context, attendanceID int64) error
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

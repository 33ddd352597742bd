package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// AttendanceSvcFacade exposes daily attendance operations.
type AttendanceSvcFacade interface {
	RecordAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*domain.Attendance, error)
	GetAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error)
	ListAttendanceForWorker(ctx context.Context, workerID int64) ([]domain.Attendance, error)
	ListAttendanceForSite(ctx context.Context, siteID int64) ([]domain.Attendance, error)
	ListAttendanceForDate(ctx context.Context, date string) ([]domain.Attendance, error)
	ListAttendanceForWorkerInDateRange(ctx context.Context, workerID int64, startDate, endDate string) ([]domain.Attendance, error)
	CountByStatus(ctx context.Context, workerID int64, status domain.AttendanceStatus, startDate, endDate string) (int, error)
	UpdateAttendance(ctx context.Context, attendanceID int64, req dto.UpdateAttendanceRequest) (*domain.Attendance, error)
	DeleteAttendance(ctx context.Context, attendanceID int64) error
}

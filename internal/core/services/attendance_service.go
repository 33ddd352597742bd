package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
)

type AttendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	workerRepo     portsrepo.WorkerRepositoryFacade
	siteRepo       portsrepo.SiteRepositoryFacade
	notifier       *notify.Notifier
}

func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	siteRepo portsrepo.SiteRepositoryFacade,
	notifier *notify.Notifier,
) portssvc.AttendanceSvcFacade {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		notifier:       notifier,
	}
}

var _ portssvc.AttendanceSvcFacade = (*AttendanceService)(nil)

func (s *AttendanceService) RecordAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	status := domain.AttendanceStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid attendance status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if _, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d: %w", req.WorkerID, err)
	}
	if _, err := s.siteRepo.FindSiteByID(ctx, req.SiteID); err != nil {
		return nil, fmt.Errorf("site %d: %w", req.SiteID, err)
	}

	now := time.Now()
	attendance := domain.Attendance{
		WorkerID:    req.WorkerID,
		SiteID:      req.SiteID,
		Date:        req.Date,
		Status:      status,
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	attendanceID, err := s.attendanceRepo.SaveAttendance(ctx, attendance)
	if err != nil {
		s.LogError(ctx, err, "Failed to record attendance", "worker_id", req.WorkerID)
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	attendance.AttendanceID = attendanceID

	s.LogInfo(ctx, "Attendance recorded", "attendance_id", attendanceID, "worker_id", req.WorkerID, "date", req.Date)
	s.notifier.Notify(notify.TableAttendance)
	return &attendance, nil
}

func (s *AttendanceService) GetAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	return s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
}

func (s *AttendanceService) ListAttendanceForWorker(ctx context.Context, workerID int64) ([]domain.Attendance, error) {
	return s.attendanceRepo.FindAttendanceForWorker(ctx, workerID)
}

func (s *AttendanceService) ListAttendanceForSite(ctx context.Context, siteID int64) ([]domain.Attendance, error) {
	return s.attendanceRepo.FindAttendanceForSite(ctx, siteID)
}

func (s *AttendanceService) ListAttendanceForDate(ctx context.Context, date string) ([]domain.Attendance, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, apperrors.ErrValidation)
	}
	return s.attendanceRepo.FindAttendanceForDate(ctx, date)
}

func (s *AttendanceService) ListAttendanceForWorkerInDateRange(ctx context.Context, workerID int64, startDate, endDate string) ([]domain.Attendance, error) {
	if _, err := domain.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, apperrors.ErrValidation)
	}
	if _, err := domain.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, apperrors.ErrValidation)
	}
	return s.attendanceRepo.FindAttendanceForWorkerInDateRange(ctx, workerID, startDate, endDate)
}

func (s *AttendanceService) CountByStatus(ctx context.Context, workerID int64, status domain.AttendanceStatus, startDate, endDate string) (int, error) {
	if !status.IsValid() {
		return 0, fmt.Errorf("invalid attendance status %q: %w", status, apperrors.ErrValidation)
	}
	return s.attendanceRepo.CountAttendanceByStatus(ctx, workerID, status, startDate, endDate)
}

func (s *AttendanceService) UpdateAttendance(ctx context.Context, attendanceID int64, req dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	attendance, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}

	if req.SiteID != nil {
		if _, err := s.siteRepo.FindSiteByID(ctx, *req.SiteID); err != nil {
			return nil, fmt.Errorf("site %d: %w", *req.SiteID, err)
		}
		attendance.SiteID = *req.SiteID
	}
	if req.Date != nil {
		attendance.Date = *req.Date
	}
	if req.Status != nil {
		status := domain.AttendanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid attendance status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		attendance.Status = status
	}
	if req.HoursWorked != nil {
		attendance.HoursWorked = req.HoursWorked
	}
	if req.Notes != nil {
		attendance.Notes = req.Notes
	}
	attendance.LastUpdatedAt = time.Now()

	if err := s.attendanceRepo.UpdateAttendance(ctx, *attendance); err != nil {
		s.LogError(ctx, err, "Failed to update attendance", "attendance_id", attendanceID)
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.notifier.Notify(notify.TableAttendance)
	return attendance, nil
}

func (s *AttendanceService) DeleteAttendance(ctx context.Context, attendanceID int64) error {
	if err := s.attendanceRepo.DeleteAttendance(ctx, attendanceID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Attendance deleted", "attendance_id", attendanceID)
	s.notifier.Notify(notify.TableAttendance)
	return nil
}

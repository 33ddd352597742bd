package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// CreateAttendanceRequest records one worker's presence for one date.
type CreateAttendanceRequest struct {
	WorkerID    int64    `json:"workerID" binding:"required"`
	SiteID      int64    `json:"siteID" binding:"required"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Status      string   `json:"status" binding:"required,oneof=PRESENT ABSENT HALF_DAY LEAVE"`
	HoursWorked *float64 `json:"hoursWorked" binding:"omitempty,min=0"`
	Notes       *string  `json:"notes"`
}

// UpdateAttendanceRequest uses pointers to distinguish omitted fields
// from zero-value fields.
type UpdateAttendanceRequest struct {
	SiteID      *int64   `json:"siteID"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string  `json:"status" binding:"omitempty,oneof=PRESENT ABSENT HALF_DAY LEAVE"`
	HoursWorked *float64 `json:"hoursWorked" binding:"omitempty,min=0"`
	Notes       *string  `json:"notes"`
}

// AttendanceResponse is the API shape of an attendance record.
type AttendanceResponse struct {
	AttendanceID int64    `json:"attendanceID"`
	WorkerID     int64    `json:"workerID"`
	SiteID       int64    `json:"siteID"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		WorkerID:     a.WorkerID,
		SiteID:       a.SiteID,
		Date:         a.Date,
		Status:       string(a.Status),
		HoursWorked:  a.HoursWorked,
		Notes:        a.Notes,
	}
}

// ListAttendanceResponse wraps a list of attendance records.
type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
}

func ToListAttendanceResponse(records []domain.Attendance) ListAttendanceResponse {
	out := make([]AttendanceResponse, len(records))
	for i := range records {
		out[i] = ToAttendanceResponse(&records[i])
	}
	return ListAttendanceResponse{Records: out}
}

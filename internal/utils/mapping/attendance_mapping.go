package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelAttendance(d domain.Attendance) models.Attendance {
	return models.Attendance{
		AttendanceID: d.AttendanceID,
		WorkerID:     d.WorkerID,
		SiteID:       d.SiteID,
		Date:         d.Date,
		Status:       string(d.Status),
		HoursWorked:  d.HoursWorked,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainAttendance(m models.Attendance) domain.Attendance {
	return domain.Attendance{
		AttendanceID: m.AttendanceID,
		WorkerID:     m.WorkerID,
		SiteID:       m.SiteID,
		Date:         m.Date,
		Status:       domain.AttendanceStatus(m.Status),
		HoursWorked:  m.HoursWorked,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAttendanceSlice(ms []models.Attendance) []domain.Attendance {
	ds := make([]domain.Attendance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendance(m)
	}
	return ds
}

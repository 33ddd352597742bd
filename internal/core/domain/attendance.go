package domain

// AttendanceStatus records a worker's presence for a day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceLeave   AttendanceStatus = "LEAVE"
)

// IsValid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceLeave:
		return true
	}
	return false
}

// Attendance is one worker's presence record for one date at a site.
type Attendance struct {
	AttendanceID int64            `json:"attendanceID"`
	WorkerID     int64            `json:"workerID"`
	SiteID       int64            `json:"siteID"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	HoursWorked  *float64         `json:"hoursWorked,omitempty"` // for hourly roles
	Notes        *string          `json:"notes,omitempty"`
	AuditFields
}

package models

// Attendance is the database representation of an attendance row.
type Attendance struct {
	AttendanceID int64    `db:"attendance_id"`
	WorkerID     int64    `db:"worker_id"`
	SiteID       int64    `db:"site_id"`
	Date         string   `db:"date"`
	Status       string   `db:"status"`
	HoursWorked  *float64 `db:"hours_worked"`
	Notes        *string  `db:"notes"`
	AuditFields
}

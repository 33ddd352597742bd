package models

// Worker is the database representation of a worker row.
type Worker struct {
	WorkerID         int64   `db:"worker_id"`
	Name             string  `db:"name"`
	PhoneNumber      string  `db:"phone_number"`
	Address          string  `db:"address"`
	Role             string  `db:"role"`
	NationalID       string  `db:"national_id"`
	JoinDate         string  `db:"join_date"`
	IsActive         bool    `db:"is_active"`
	ProfileImagePath *string `db:"profile_image_path"`
	AuditFields
}

package models

// AppUser is the database representation of a login user row.
type AppUser struct {
	UserID       int64  `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	AuditFields
}

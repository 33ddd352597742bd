package domain

// AppUser is a login identity for the application, typically the
// business owner or a site manager.
type AppUser struct {
	UserID       int64  `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
}

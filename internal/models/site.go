package models

// Site is the database representation of a site row.
type Site struct {
	SiteID          int64   `db:"site_id"`
	Name            string  `db:"name"`
	Address         string  `db:"address"`
	ClientName      string  `db:"client_name"`
	ClientContact   string  `db:"client_contact"`
	StartDate       string  `db:"start_date"`
	ExpectedEndDate *string `db:"expected_end_date"`
	Status          string  `db:"status"`
	Notes           *string `db:"notes"`
	AuditFields
}

package domain

import "time"

// DateLayout is the fixed calendar-date format used everywhere dates are
// exchanged as strings. No time-of-day component is modeled.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar-date string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

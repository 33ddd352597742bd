package domain

// SiteStatus is the lifecycle state of a construction site.
type SiteStatus string

const (
	SiteStatusActive    SiteStatus = "ACTIVE"
	SiteStatusCompleted SiteStatus = "COMPLETED"
	SiteStatusOnHold    SiteStatus = "ON_HOLD"
)

// IsValid reports whether s is one of the known site statuses.
func (s SiteStatus) IsValid() bool {
	switch s {
	case SiteStatusActive, SiteStatusCompleted, SiteStatusOnHold:
		return true
	}
	return false
}

// Site is a construction job site for a client.
type Site struct {
	SiteID          int64      `json:"siteID"`
	Name            string     `json:"name"`
	Address         string     `json:"address"`
	ClientName      string     `json:"clientName"`
	ClientContact   string     `json:"clientContact"`
	StartDate       string     `json:"startDate"`
	ExpectedEndDate *string    `json:"expectedEndDate,omitempty"`
	Status          SiteStatus `json:"status"`
	Notes           *string    `json:"notes,omitempty"`
	AuditFields
}

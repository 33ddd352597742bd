package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// CreateSiteRequest carries the add-site form fields.
type CreateSiteRequest struct {
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	ClientName      string  `json:"clientName" binding:"required"`
	ClientContact   string  `json:"clientContact" binding:"required"`
	StartDate       string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	ExpectedEndDate *string `json:"expectedEndDate" binding:"omitempty,datetime=2006-01-02"`
	Status          string  `json:"status" binding:"required,oneof=ACTIVE COMPLETED ON_HOLD"`
	Notes           *string `json:"notes"`
}

// UpdateSiteRequest uses pointers to distinguish omitted fields from
// zero-value fields.
type UpdateSiteRequest struct {
	Name            *string `json:"name"`
	Address         *string `json:"address"`
	ClientName      *string `json:"clientName"`
	ClientContact   *string `json:"clientContact"`
	StartDate       *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedEndDate *string `json:"expectedEndDate" binding:"omitempty,datetime=2006-01-02"`
	Status          *string `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED ON_HOLD"`
	Notes           *string `json:"notes"`
}

// SiteResponse is the API shape of a site.
type SiteResponse struct {
	SiteID          int64   `json:"siteID"`
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	ClientName      string  `json:"clientName"`
	ClientContact   string  `json:"clientContact"`
	StartDate       string  `json:"startDate"`
	ExpectedEndDate *string `json:"expectedEndDate,omitempty"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	WorkerCount     *int    `json:"workerCount,omitempty"`
}

func ToSiteResponse(s *domain.Site) SiteResponse {
	return SiteResponse{
		SiteID:          s.SiteID,
		Name:            s.Name,
		Address:         s.Address,
		ClientName:      s.ClientName,
		ClientContact:   s.ClientContact,
		StartDate:       s.StartDate,
		ExpectedEndDate: s.ExpectedEndDate,
		Status:          string(s.Status),
		Notes:           s.Notes,
	}
}

// ListSitesResponse wraps the list of sites.
type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
}

func ToListSitesResponse(sites []domain.Site) ListSitesResponse {
	out := make([]SiteResponse, len(sites))
	for i := range sites {
		out[i] = ToSiteResponse(&sites[i])
	}
	return ListSitesResponse{Sites: out}
}

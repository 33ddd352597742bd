package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// SiteReader defines read operations for site data.
type SiteReader interface {
	// FindSiteByID retrieves a specific site by ID.
	FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error)

	// FindSites retrieves all sites ordered by name.
	FindSites(ctx context.Context) ([]domain.Site, error)

	// FindSitesByStatus retrieves sites in the given status, ordered by name.
	FindSitesByStatus(ctx context.Context, status domain.SiteStatus) ([]domain.Site, error)

	// SearchSites retrieves sites whose name, address or client name contains the query.
	SearchSites(ctx context.Context, query string) ([]domain.Site, error)

	// FindSitesByStartDateRange retrieves sites whose start date falls in the inclusive range.
	FindSitesByStartDateRange(ctx context.Context, startDate, endDate string) ([]domain.Site, error)

	// CountWorkersForSite counts active assignments targeting the site.
	CountWorkersForSite(ctx context.Context, siteID int64) (int, error)

	// CountSitesByStatus counts sites in the given status.
	CountSitesByStatus(ctx context.Context, status domain.SiteStatus) (int, error)

	// CountSites counts all sites.
	CountSites(ctx context.Context) (int, error)
}

// SiteWriter defines write operations for site data.
type SiteWriter interface {
	// SaveSite persists a new site and returns its generated ID.
	SaveSite(ctx context.Context, site domain.Site) (int64, error)

	// UpdateSite updates an existing site's details.
	UpdateSite(ctx context.Context, site domain.Site) error

	// DeleteSite hard-deletes a site; assignments and attendance cascade,
	// payments keep the row but lose their site reference.
	DeleteSite(ctx context.Context, siteID int64) error
}

// SiteRepositoryFacade combines all site-related repository interfaces.
type SiteRepositoryFacade interface {
	SiteReader
	SiteWriter
}

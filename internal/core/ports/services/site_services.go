package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// SiteSvcFacade exposes site management operations.
type SiteSvcFacade interface {
	CreateSite(ctx context.Context, req dto.CreateSiteRequest) (*domain.Site, error)
	GetSiteByID(ctx context.Context, siteID int64) (*domain.Site, error)
	ListSites(ctx context.Context, status *domain.SiteStatus) ([]domain.Site, error)
	SearchSites(ctx context.Context, query string) ([]domain.Site, error)
	ListSitesByStartDateRange(ctx context.Context, startDate, endDate string) ([]domain.Site, error)
	UpdateSite(ctx context.Context, siteID int64, req dto.UpdateSiteRequest) (*domain.Site, error)
	DeleteSite(ctx context.Context, siteID int64) error
	WorkerCountForSite(ctx context.Context, siteID int64) (int, error)
}

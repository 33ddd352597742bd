package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
)

type SiteService struct {
	BaseService
	siteRepo portsrepo.SiteRepositoryFacade
	notifier *notify.Notifier
}

func NewSiteService(siteRepo portsrepo.SiteRepositoryFacade, notifier *notify.Notifier) portssvc.SiteSvcFacade {
	return &SiteService{siteRepo: siteRepo, notifier: notifier}
}

var _ portssvc.SiteSvcFacade = (*SiteService)(nil)

func (s *SiteService) CreateSite(ctx context.Context, req dto.CreateSiteRequest) (*domain.Site, error) {
	status := domain.SiteStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid site status %q: %w", req.Status, apperrors.ErrValidation)
	}

	now := time.Now()
	site := domain.Site{
		Name:            req.Name,
		Address:         req.Address,
		ClientName:      req.ClientName,
		ClientContact:   req.ClientContact,
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		Status:          status,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	siteID, err := s.siteRepo.SaveSite(ctx, site)
	if err != nil {
		s.LogError(ctx, err, "Failed to create site")
		return nil, fmt.Errorf("failed to create site: %w", err)
	}
	site.SiteID = siteID

	s.LogInfo(ctx, "Site created", "site_id", siteID)
	s.notifier.Notify(notify.TableSites)
	return &site, nil
}

func (s *SiteService) GetSiteByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	return s.siteRepo.FindSiteByID(ctx, siteID)
}

func (s *SiteService) ListSites(ctx context.Context, status *domain.SiteStatus) ([]domain.Site, error) {
	if status != nil {
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid site status %q: %w", *status, apperrors.ErrValidation)
		}
		return s.siteRepo.FindSitesByStatus(ctx, *status)
	}
	return s.siteRepo.FindSites(ctx)
}

func (s *SiteService) SearchSites(ctx context.Context, query string) ([]domain.Site, error) {
	return s.siteRepo.SearchSites(ctx, query)
}

func (s *SiteService) ListSitesByStartDateRange(ctx context.Context, startDate, endDate string) ([]domain.Site, error) {
	if _, err := domain.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, apperrors.ErrValidation)
	}
	if _, err := domain.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, apperrors.ErrValidation)
	}
	return s.siteRepo.FindSitesByStartDateRange(ctx, startDate, endDate)
}

func (s *SiteService) UpdateSite(ctx context.Context, siteID int64, req dto.UpdateSiteRequest) (*domain.Site, error) {
	site, err := s.siteRepo.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.Address != nil {
		site.Address = *req.Address
	}
	if req.ClientName != nil {
		site.ClientName = *req.ClientName
	}
	if req.ClientContact != nil {
		site.ClientContact = *req.ClientContact
	}
	if req.StartDate != nil {
		site.StartDate = *req.StartDate
	}
	if req.ExpectedEndDate != nil {
		site.ExpectedEndDate = req.ExpectedEndDate
	}
	if req.Status != nil {
		status := domain.SiteStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid site status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		site.Status = status
	}
	if req.Notes != nil {
		site.Notes = req.Notes
	}
	site.LastUpdatedAt = time.Now()

	if err := s.siteRepo.UpdateSite(ctx, *site); err != nil {
		s.LogError(ctx, err, "Failed to update site", "site_id", siteID)
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	s.notifier.Notify(notify.TableSites)
	return site, nil
}

func (s *SiteService) DeleteSite(ctx context.Context, siteID int64) error {
	if err := s.siteRepo.DeleteSite(ctx, siteID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Site deleted", "site_id", siteID)
	s.notifier.Notify(notify.TableSites)
	return nil
}

func (s *SiteService) WorkerCountForSite(ctx context.Context, siteID int64) (int, error) {
	return s.siteRepo.CountWorkersForSite(ctx, siteID)
}

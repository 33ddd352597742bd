package services_test

import (
	"context"
	"testing"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/core/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SiteServiceTestSuite struct {
	suite.Suite
	mockSiteRepo *MockSiteRepository
	service      portssvc.SiteSvcFacade
}

func (suite *SiteServiceTestSuite) SetupTest() {
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewSiteService(suite.mockSiteRepo, notify.NewNotifier())
}

func (suite *SiteServiceTestSuite) TestCreateSite_Success() {
	ctx := context.Background()
	suite.mockSiteRepo.On("SaveSite", ctx, mock.MatchedBy(func(s domain.Site) bool {
		return s.Name == "Riverside Apartments" && s.Status == domain.SiteStatusActive
	})).Return(int64(10), nil).Once()

	site, err := suite.service.CreateSite(ctx, dto.CreateSiteRequest{
		Name:          "Riverside Apartments",
		Address:       "4 River Road",
		ClientName:    "Mehta Builders",
		ClientContact: "9123456780",
		StartDate:     "2024-01-15",
		Status:        "ACTIVE",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(10), site.SiteID)
	suite.mockSiteRepo.AssertExpectations(suite.T())
}

func (suite *SiteServiceTestSuite) TestCreateSite_InvalidStatus() {
	_, err := suite.service.CreateSite(context.Background(), dto.CreateSiteRequest{
		Name:          "Riverside Apartments",
		Address:       "4 River Road",
		ClientName:    "Mehta Builders",
		ClientContact: "9123456780",
		StartDate:     "2024-01-15",
		Status:        "CANCELLED",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "SaveSite", mock.Anything, mock.Anything)
}

func (suite *SiteServiceTestSuite) TestListSites_StatusFilterRouting() {
	ctx := context.Background()
	completed := []domain.Site{{SiteID: 2, Status: domain.SiteStatusCompleted}}
	suite.mockSiteRepo.On("FindSitesByStatus", ctx, domain.SiteStatusCompleted).
		Return(completed, nil).Once()

	status := domain.SiteStatusCompleted
	sites, err := suite.service.ListSites(ctx, &status)

	suite.Require().NoError(err)
	suite.Equal(completed, sites)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "FindSites", mock.Anything)
}

func (suite *SiteServiceTestSuite) TestListSitesByStartDateRange_InvalidDates() {
	_, err := suite.service.ListSitesByStartDateRange(context.Background(), "2024-01-01", "31-12-2024")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "FindSitesByStartDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SiteServiceTestSuite) TestUpdateSite_MarkCompleted() {
	ctx := context.Background()
	existing := &domain.Site{SiteID: 10, Name: "Riverside Apartments", Status: domain.SiteStatusActive}
	suite.mockSiteRepo.On("FindSiteByID", ctx, int64(10)).Return(existing, nil).Once()
	suite.mockSiteRepo.On("UpdateSite", ctx, mock.MatchedBy(func(s domain.Site) bool {
		return s.SiteID == 10 && s.Status == domain.SiteStatusCompleted
	})).Return(nil).Once()

	status := "COMPLETED"
	site, err := suite.service.UpdateSite(ctx, 10, dto.UpdateSiteRequest{Status: &status})

	suite.Require().NoError(err)
	suite.Equal(domain.SiteStatusCompleted, site.Status)
	suite.mockSiteRepo.AssertExpectations(suite.T())
}

func TestSiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}

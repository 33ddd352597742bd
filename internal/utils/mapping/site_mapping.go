package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelSite(d domain.Site) models.Site {
	return models.Site{
		SiteID:          d.SiteID,
		Name:            d.Name,
		Address:         d.Address,
		ClientName:      d.ClientName,
		ClientContact:   d.ClientContact,
		StartDate:       d.StartDate,
		ExpectedEndDate: d.ExpectedEndDate,
		Status:          string(d.Status),
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSite(m models.Site) domain.Site {
	return domain.Site{
		SiteID:          m.SiteID,
		Name:            m.Name,
		Address:         m.Address,
		ClientName:      m.ClientName,
		ClientContact:   m.ClientContact,
		StartDate:       m.StartDate,
		ExpectedEndDate: m.ExpectedEndDate,
		Status:          domain.SiteStatus(m.Status),
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSiteSlice(ms []models.Site) []domain.Site {
	ds := make([]domain.Site, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSite(m)
	}
	return ds
}

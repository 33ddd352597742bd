package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelAssignment(d domain.WorkerSiteAssignment) models.WorkerSiteAssignment {
	return models.WorkerSiteAssignment{
		AssignmentID:   d.AssignmentID,
		WorkerID:       d.WorkerID,
		SiteID:         d.SiteID,
		AssignmentDate: d.AssignmentDate,
		EndDate:        d.EndDate,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainAssignment(m models.WorkerSiteAssignment) domain.WorkerSiteAssignment {
	return domain.WorkerSiteAssignment{
		AssignmentID:   m.AssignmentID,
		WorkerID:       m.WorkerID,
		SiteID:         m.SiteID,
		AssignmentDate: m.AssignmentDate,
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAssignmentSlice(ms []models.WorkerSiteAssignment) []domain.WorkerSiteAssignment {
	ds := make([]domain.WorkerSiteAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignment(m)
	}
	return ds
}

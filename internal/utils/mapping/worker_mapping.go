package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:         d.WorkerID,
		Name:             d.Name,
		PhoneNumber:      d.PhoneNumber,
		Address:          d.Address,
		Role:             d.Role,
		NationalID:       d.NationalID,
		JoinDate:         d.JoinDate,
		IsActive:         d.IsActive,
		ProfileImagePath: d.ProfileImagePath,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:         m.WorkerID,
		Name:             m.Name,
		PhoneNumber:      m.PhoneNumber,
		Address:          m.Address,
		Role:             m.Role,
		NationalID:       m.NationalID,
		JoinDate:         m.JoinDate,
		IsActive:         m.IsActive,
		ProfileImagePath: m.ProfileImagePath,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}

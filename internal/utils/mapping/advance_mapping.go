package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelAdvance(d domain.Advance) models.Advance {
	return models.Advance{
		AdvanceID:       d.AdvanceID,
		WorkerID:        d.WorkerID,
		Amount:          d.Amount,
		AdvanceDate:     d.AdvanceDate,
		Reason:          d.Reason,
		Notes:           d.Notes,
		PaymentMode:     string(d.PaymentMode),
		ReferenceNumber: d.ReferenceNumber,
		IsRecovered:     d.IsRecovered,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainAdvance(m models.Advance) domain.Advance {
	return domain.Advance{
		AdvanceID:       m.AdvanceID,
		WorkerID:        m.WorkerID,
		Amount:          m.Amount,
		AdvanceDate:     m.AdvanceDate,
		Reason:          m.Reason,
		Notes:           m.Notes,
		PaymentMode:     domain.PaymentMode(m.PaymentMode),
		ReferenceNumber: m.ReferenceNumber,
		IsRecovered:     m.IsRecovered,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAdvanceSlice(ms []models.Advance) []domain.Advance {
	ds := make([]domain.Advance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvance(m)
	}
	return ds
}

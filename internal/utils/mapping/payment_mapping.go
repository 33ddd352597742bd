package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		WorkerID:        d.WorkerID,
		SiteID:          d.SiteID,
		PaymentDate:     d.PaymentDate,
		Amount:          d.Amount,
		Description:     d.Description,
		PaymentMode:     string(d.PaymentMode),
		ReferenceNumber: d.ReferenceNumber,
		ForMonth:        d.ForMonth,
		ForYear:         d.ForYear,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		WorkerID:        m.WorkerID,
		SiteID:          m.SiteID,
		PaymentDate:     m.PaymentDate,
		Amount:          m.Amount,
		Description:     m.Description,
		PaymentMode:     domain.PaymentMode(m.PaymentMode),
		ReferenceNumber: m.ReferenceNumber,
		ForMonth:        m.ForMonth,
		ForYear:         m.ForYear,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

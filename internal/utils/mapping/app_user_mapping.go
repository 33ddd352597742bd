package mapping

import (
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
)

func ToModelAppUser(d domain.AppUser) models.AppUser {
	return models.AppUser{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainAppUser(m models.AppUser) domain.AppUser {
	return domain.AppUser{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

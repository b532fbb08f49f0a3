package mapping

import (
	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/acculab/vpledger/internal/models"
)

// ToModelVPDisbursement converts a domain VPDisbursement to a model VPDisbursement
func ToModelVPDisbursement(d domain.VPDisbursement) models.VPDisbursement {
	return models.VPDisbursement{
		DisbursementID: d.DisbursementID,
		SampleID:       d.SampleID,
		NurseID:        d.NurseID,
		NurseName:      d.NurseName,
		DriverID:       d.DriverID,
		DriverName:     d.DriverName,
		FloatID:        d.FloatID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Notes:          d.Notes,
		DisbursedAt:    d.DisbursedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVPDisbursement converts a model VPDisbursement to a domain VPDisbursement
func ToDomainVPDisbursement(m models.VPDisbursement) domain.VPDisbursement {
	return domain.VPDisbursement{
		DisbursementID: m.DisbursementID,
		SampleID:       m.SampleID,
		NurseID:        m.NurseID,
		NurseName:      m.NurseName,
		DriverID:       m.DriverID,
		DriverName:     m.DriverName,
		FloatID:        m.FloatID,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Notes:          m.Notes,
		DisbursedAt:    m.DisbursedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVPDisbursementSlice converts a slice of model VPDisbursements to domain VPDisbursements
func ToDomainVPDisbursementSlice(ms []models.VPDisbursement) []domain.VPDisbursement {
	ds := make([]domain.VPDisbursement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVPDisbursement(m)
	}
	return ds
}

// ToDomainVPSettings converts a model VPSettings to a domain VPSettings
func ToDomainVPSettings(m models.VPSettings) domain.VPSettings {
	return domain.VPSettings{
		SettingsID:             m.SettingsID,
		DefaultAmountPerSample: m.DefaultAmountPerSample,
		CurrencyCode:           m.CurrencyCode,
		UpdatedByUserID:        m.UpdatedByUserID,
		CreatedAt:              m.CreatedAt,
	}
}

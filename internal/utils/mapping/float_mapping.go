package mapping

import (
	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/acculab/vpledger/internal/models"
)

// ToModelDriverFloat converts a domain DriverFloat to a model DriverFloat
func ToModelDriverFloat(d domain.DriverFloat) models.DriverFloat {
	return models.DriverFloat{
		FloatID:          d.FloatID,
		DriverID:         d.DriverID,
		DriverName:       d.DriverName,
		AllocatedAmount:  d.AllocatedAmount,
		RemainingBalance: d.RemainingBalance,
		CurrencyCode:     d.CurrencyCode,
		Status:           models.FloatStatus(d.Status),
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDriverFloat converts a model DriverFloat to a domain DriverFloat
func ToDomainDriverFloat(m models.DriverFloat) domain.DriverFloat {
	return domain.DriverFloat{
		FloatID:          m.FloatID,
		DriverID:         m.DriverID,
		DriverName:       m.DriverName,
		AllocatedAmount:  m.AllocatedAmount,
		RemainingBalance: m.RemainingBalance,
		CurrencyCode:     m.CurrencyCode,
		Status:           domain.FloatStatus(m.Status),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDriverFloatSlice converts a slice of model DriverFloats to domain DriverFloats
func ToDomainDriverFloatSlice(ms []models.DriverFloat) []domain.DriverFloat {
	ds := make([]domain.DriverFloat, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDriverFloat(m)
	}
	return ds
}

// ToModelFloatTransaction converts a domain FloatTransaction to a model FloatTransaction
func ToModelFloatTransaction(d domain.FloatTransaction) models.FloatTransaction {
	return models.FloatTransaction{
		TransactionID:   d.TransactionID,
		FloatID:         d.FloatID,
		DriverID:        d.DriverID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		Reason:          string(d.Reason),
		ReferenceID:     d.ReferenceID,
		CurrencyCode:    d.CurrencyCode,
		Notes:           d.Notes,
		Seq:             d.Seq,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFloatTransaction converts a model FloatTransaction to a domain FloatTransaction
func ToDomainFloatTransaction(m models.FloatTransaction) domain.FloatTransaction {
	return domain.FloatTransaction{
		TransactionID:   m.TransactionID,
		FloatID:         m.FloatID,
		DriverID:        m.DriverID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Reason:          domain.TransactionReason(m.Reason),
		ReferenceID:     m.ReferenceID,
		CurrencyCode:    m.CurrencyCode,
		Notes:           m.Notes,
		Seq:             m.Seq,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFloatTransactionSlice converts a slice of model FloatTransactions to domain FloatTransactions
func ToDomainFloatTransactionSlice(ms []models.FloatTransaction) []domain.FloatTransaction {
	ds := make([]domain.FloatTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFloatTransaction(m)
	}
	return ds
}

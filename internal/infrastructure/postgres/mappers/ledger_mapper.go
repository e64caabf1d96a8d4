package mappers

import (
	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
)

func ToGORMLedgerEntry(entry *domain.CommissionLedgerEntry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		TransactionID:    entry.TransactionID,
		ReferrerID:       entry.ReferrerID,
		RuleID:           entry.RuleID,
		CommissionAmount: entry.CommissionAmount,
		PlatformAmount:   entry.PlatformAmount,
		Currency:         entry.Currency,
		TransferID:       entry.TransferID,
		TransferStatus:   string(entry.TransferStatus),
		ReversalOwed:     entry.ReversalOwed,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
}

func ToDomainLedgerEntry(model *models.LedgerEntryModel) *domain.CommissionLedgerEntry {
	return &domain.CommissionLedgerEntry{
		TransactionID:    model.TransactionID,
		ReferrerID:       model.ReferrerID,
		RuleID:           model.RuleID,
		CommissionAmount: model.CommissionAmount,
		PlatformAmount:   model.PlatformAmount,
		Currency:         model.Currency,
		TransferID:       model.TransferID,
		TransferStatus:   domain.TransferStatus(model.TransferStatus),
		ReversalOwed:     model.ReversalOwed,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

package usecase

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	publisher "github.com/LavaJover/shvark-referral-service/internal/infrastructure/kafka"
)

// RecordCommission writes the computed split for a transaction exactly once.
// If an entry already exists for the transaction the call returns the
// existing entry unchanged, even when called with different rule or split
// arguments: webhook redelivery is expected, not exceptional.
func (uc *DefaultLedgerUsecase) RecordCommission(
	tx *domain.Transaction,
	rule *domain.CommissionRule,
	split domain.Split) (*domain.CommissionLedgerEntry, error) {

	now := time.Now()
	entry, created, err := uc.LedgerRepo.CreateEntry(&domain.CommissionLedgerEntry{
		TransactionID:    tx.ID,
		ReferrerID:       rule.ReferrerID,
		RuleID:           rule.ID,
		CommissionAmount: split.CommissionAmount,
		PlatformAmount:   split.PlatformAmount,
		Currency:         tx.Currency,
		TransferStatus:   domain.TransferPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		return entry, nil
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordCommissionRecorded(entry.ReferrerID, entry.Currency, float64(entry.CommissionAmount))
	}

	if uc.Publisher != nil {
		go func(event publisher.CommissionEvent) {
			if err := uc.Publisher.Publish(event); err != nil {
				slog.Error("failed to publish kafka CommissionEvent", "stage", "recording", "error", err.Error())
			}
		}(publisher.CommissionEvent{
			TransactionID:    entry.TransactionID,
			ReferrerID:       entry.ReferrerID,
			RuleID:           entry.RuleID,
			CommissionAmount: entry.CommissionAmount,
			PlatformAmount:   entry.PlatformAmount,
			Currency:         entry.Currency,
			Status:           publisher.CommissionRecorded,
		})
	}

	return entry, nil
}

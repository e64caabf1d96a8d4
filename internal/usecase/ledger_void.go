package usecase

import (
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	publisher "github.com/LavaJover/shvark-referral-service/internal/infrastructure/kafka"
)

// VoidOnRefund voids the ledger entry for a refunded transaction without
// deleting history. If the payout was already transferred the entry keeps a
// reversal obligation; executing the reversal is the payment processor's
// job, the ledger only retains the fact that one is owed.
func (uc *DefaultLedgerUsecase) VoidOnRefund(transactionID string) error {
	entry, err := uc.LedgerRepo.GetEntryByTransactionID(transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Nothing was recorded for this transaction; nothing to void.
			return nil
		}
		return err
	}
	if entry.TransferStatus == domain.TransferVoided {
		return nil
	}

	reversalOwed := entry.TransferStatus == domain.TransferPaid
	if err := uc.LedgerRepo.UpdateTransferStatus(
		transactionID,
		entry.TransferStatus,
		domain.TransferVoided,
		nil,
		reversalOwed,
	); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordCommissionVoided(entry.ReferrerID, entry.Currency, float64(entry.CommissionAmount), reversalOwed)
	}
	if uc.Publisher != nil {
		go func(event publisher.CommissionEvent) {
			if err := uc.Publisher.Publish(event); err != nil {
				slog.Error("failed to publish kafka CommissionEvent", "stage", "voiding", "error", err.Error())
			}
		}(publisher.CommissionEvent{
			TransactionID:    entry.TransactionID,
			ReferrerID:       entry.ReferrerID,
			RuleID:           entry.RuleID,
			CommissionAmount: entry.CommissionAmount,
			PlatformAmount:   entry.PlatformAmount,
			Currency:         entry.Currency,
			Status:           publisher.CommissionVoided,
			ReversalOwed:     reversalOwed,
		})
	}
	return nil
}

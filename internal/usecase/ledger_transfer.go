package usecase

import (
	"log/slog"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	publisher "github.com/LavaJover/shvark-referral-service/internal/infrastructure/kafka"
)

// MarkTransferred records the transfer id reported by the external payout
// service and moves the entry PENDING -> PAID.
func (uc *DefaultLedgerUsecase) MarkTransferred(transactionID, transferID string) error {
	entry, err := uc.LedgerRepo.GetEntryByTransactionID(transactionID)
	if err != nil {
		return err
	}
	if entry.TransferStatus == domain.TransferVoided {
		return domain.ErrEntryVoided
	}

	if err := uc.LedgerRepo.UpdateTransferStatus(
		transactionID,
		domain.TransferPending,
		domain.TransferPaid,
		&transferID,
		false,
	); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransferStatus(string(domain.TransferPaid))
	}
	if uc.Publisher != nil {
		go func(event publisher.CommissionEvent) {
			if err := uc.Publisher.Publish(event); err != nil {
				slog.Error("failed to publish kafka CommissionEvent", "stage", "transfer", "error", err.Error())
			}
		}(publisher.CommissionEvent{
			TransactionID:    entry.TransactionID,
			ReferrerID:       entry.ReferrerID,
			RuleID:           entry.RuleID,
			CommissionAmount: entry.CommissionAmount,
			PlatformAmount:   entry.PlatformAmount,
			Currency:         entry.Currency,
			Status:           publisher.CommissionPaid,
		})
	}
	return nil
}

// MarkTransferFailed moves the entry PENDING -> FAILED after the payout
// service reports a failed transfer. No internal retry: retry policy belongs
// to the caller.
func (uc *DefaultLedgerUsecase) MarkTransferFailed(transactionID string) error {
	entry, err := uc.LedgerRepo.GetEntryByTransactionID(transactionID)
	if err != nil {
		return err
	}
	if entry.TransferStatus == domain.TransferVoided {
		return domain.ErrEntryVoided
	}

	if err := uc.LedgerRepo.UpdateTransferStatus(
		transactionID,
		domain.TransferPending,
		domain.TransferFailed,
		nil,
		false,
	); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransferStatus(string(domain.TransferFailed))
	}
	return nil
}

// RetryTransfer is the manual FAILED -> PENDING transition. PAID -> PENDING
// is never allowed.
func (uc *DefaultLedgerUsecase) RetryTransfer(transactionID string) error {
	entry, err := uc.LedgerRepo.GetEntryByTransactionID(transactionID)
	if err != nil {
		return err
	}
	if entry.TransferStatus == domain.TransferVoided {
		return domain.ErrEntryVoided
	}

	if err := uc.LedgerRepo.UpdateTransferStatus(
		transactionID,
		domain.TransferFailed,
		domain.TransferPending,
		nil,
		false,
	); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransferStatus(string(domain.TransferPending))
	}
	return nil
}

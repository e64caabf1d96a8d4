package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
)

// HandleTransactionEvent processes a payment-processor status webhook.
// SUCCEEDED with a referrer resolves and records a commission; REFUNDED
// voids any recorded entry. The whole path is idempotent so redelivered
// webhooks are harmless.
func (uc *DefaultLedgerUsecase) HandleTransactionEvent(event *domain.TransactionEvent) error {
	if event.TransactionID == "" {
		return fmt.Errorf("%w: transaction id is required", domain.ErrValidation)
	}

	tx := &domain.Transaction{
		ID:         event.TransactionID,
		Amount:     event.Amount,
		Currency:   event.Currency,
		CustomerID: event.CustomerID,
		ProductID:  event.ProductID,
		ReferrerID: event.ReferrerID,
		Status:     event.Status,
		CreatedAt:  event.CreatedAt,
	}
	if err := uc.TransactionRepo.UpsertTransaction(tx); err != nil {
		if !errors.Is(err, domain.ErrTerminalTransaction) {
			return err
		}
		// Redelivery of a terminal status; continue so the ledger side
		// still converges.
	}

	switch event.Status {
	case domain.TxStatusSucceeded:
		return uc.processSucceeded(tx)
	case domain.TxStatusRefunded:
		return uc.VoidOnRefund(tx.ID)
	default:
		return nil
	}
}

func (uc *DefaultLedgerUsecase) processSucceeded(tx *domain.Transaction) error {
	if tx.ReferrerID == nil || *tx.ReferrerID == "" {
		return nil
	}
	referrerID := *tx.ReferrerID

	rule, err := uc.CommissionUsecase.Resolve(referrerID, tx.ProductID, tx.CreatedAt)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatchingRule) {
			// Meaningful absence: the transaction is recorded with no
			// commission and flagged for manual review.
			slog.Warn("no commission rule for attributed transaction",
				"transaction_id", tx.ID,
				"referrer_id", referrerID,
			)
			if uc.Metrics != nil {
				uc.Metrics.RecordUnresolvedTransaction(referrerID)
			}
			return uc.TransactionRepo.MarkNeedsReview(tx.ID)
		}
		return err
	}

	split, err := uc.CommissionUsecase.ComputeSplit(tx.Amount, rule)
	if err != nil {
		return err
	}

	_, err = uc.RecordCommission(tx, rule, split)
	return err
}

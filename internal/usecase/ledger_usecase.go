package usecase

import (
	"github.com/LavaJover/shvark-referral-service/internal/domain"
	publisher "github.com/LavaJover/shvark-referral-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/metrics"
)

type DefaultLedgerUsecase struct {
	LedgerRepo        domain.LedgerRepository
	TransactionRepo   domain.TransactionRepository
	CommissionUsecase domain.CommissionUsecase
	Publisher         *publisher.CommissionPublisher
	Metrics           *metrics.ReferralMetrics
}

func NewDefaultLedgerUsecase(
	ledgerRepo domain.LedgerRepository,
	transactionRepo domain.TransactionRepository,
	commissionUsecase domain.CommissionUsecase,
	kafkaPublisher *publisher.CommissionPublisher,
	referralMetrics *metrics.ReferralMetrics) *DefaultLedgerUsecase {

	return &DefaultLedgerUsecase{
		LedgerRepo:        ledgerRepo,
		TransactionRepo:   transactionRepo,
		CommissionUsecase: commissionUsecase,
		Publisher:         kafkaPublisher,
		Metrics:           referralMetrics,
	}
}

func (uc *DefaultLedgerUsecase) GetEntryByTransactionID(transactionID string) (*domain.CommissionLedgerEntry, error) {
	return uc.LedgerRepo.GetEntryByTransactionID(transactionID)
}

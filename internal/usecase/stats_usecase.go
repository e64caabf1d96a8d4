package usecase

import (
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
)

type DefaultStatsUsecase struct {
	ClickRepo       domain.ClickRepository
	AttributionRepo domain.AttributionRepository
	LedgerRepo      domain.LedgerRepository
}

func NewDefaultStatsUsecase(
	clickRepo domain.ClickRepository,
	attributionRepo domain.AttributionRepository,
	ledgerRepo domain.LedgerRepository) *DefaultStatsUsecase {

	return &DefaultStatsUsecase{
		ClickRepo:       clickRepo,
		AttributionRepo: attributionRepo,
		LedgerRepo:      ledgerRepo,
	}
}

// AggregateByReferrer folds clicks, captured attributions and non-voided
// ledger amounts for one referrer. Recomputed on every call so the ledger
// stays the single source of truth.
func (uc *DefaultStatsUsecase) AggregateByReferrer(referrerID string, from, to time.Time) (*domain.ReferrerStats, error) {
	clicks, err := uc.ClickRepo.CountByReferrer(referrerID, from, to)
	if err != nil {
		return nil, err
	}

	signups, err := uc.AttributionRepo.CountByReferrer(referrerID, from, to)
	if err != nil {
		return nil, err
	}

	earned, err := uc.LedgerRepo.SumCommission(referrerID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.ReferrerStats{
		ReferrerID:       referrerID,
		Clicks:           clicks,
		Signups:          signups,
		CommissionEarned: earned,
	}, nil
}

func (uc *DefaultStatsUsecase) AggregateByPlatform(referrerID string, from, to time.Time) ([]*domain.PlatformStats, error) {
	counts, err := uc.ClickRepo.CountByPlatform(referrerID, from, to)
	if err != nil {
		return nil, err
	}

	stats := make([]*domain.PlatformStats, 0, len(counts))
	for platformKey, clicks := range counts {
		stats = append(stats, &domain.PlatformStats{
			PlatformKey: platformKey,
			Clicks:      clicks,
		})
	}
	return stats, nil
}

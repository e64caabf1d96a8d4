package usecase

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/metrics"
)

type DefaultClickUsecase struct {
	ClickRepo domain.ClickRepository
	Metrics   *metrics.ReferralMetrics
}

func NewDefaultClickUsecase(clickRepo domain.ClickRepository, referralMetrics *metrics.ReferralMetrics) *DefaultClickUsecase {
	return &DefaultClickUsecase{
		ClickRepo: clickRepo,
		Metrics:   referralMetrics,
	}
}

// RecordClick is append-only. Double-counting a genuine double click is
// acceptable; the aggregator decides how to read volume. A store failure
// propagates to the caller untouched.
func (uc *DefaultClickUsecase) RecordClick(contentID, referrerCode, platformKey string, at time.Time) error {
	if referrerCode == "" {
		return fmt.Errorf("%w: referrer code is required", domain.ErrValidation)
	}
	if at.IsZero() {
		at = time.Now()
	}

	if err := uc.ClickRepo.CreateClick(&domain.Click{
		ContentID:    contentID,
		ReferrerCode: referrerCode,
		PlatformKey:  platformKey,
		CreatedAt:    at,
	}); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordClick(platformKey)
	}
	return nil
}

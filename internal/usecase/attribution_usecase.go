package usecase

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/metrics"
)

type DefaultAttributionUsecase struct {
	AttributionRepo domain.AttributionRepository
	Window          time.Duration
	Metrics         *metrics.ReferralMetrics
}

func NewDefaultAttributionUsecase(
	attributionRepo domain.AttributionRepository,
	window time.Duration,
	referralMetrics *metrics.ReferralMetrics) *DefaultAttributionUsecase {

	return &DefaultAttributionUsecase{
		AttributionRepo: attributionRepo,
		Window:          window,
		Metrics:         referralMetrics,
	}
}

// Capture fixes first-touch attribution for a visitor. A later referral
// signal for a visitor with a live attribution is a no-op, not an error:
// duplicate page loads and internal navigation carrying a ref parameter are
// expected traffic.
func (uc *DefaultAttributionUsecase) Capture(visitorID, referrerCode string) error {
	if visitorID == "" || referrerCode == "" {
		return nil
	}

	now := time.Now()
	stored, err := uc.AttributionRepo.CreateIfAbsent(&domain.Attribution{
		VisitorID:    visitorID,
		ReferrerCode: referrerCode,
		CapturedAt:   now,
		ExpiresAt:    now.Add(uc.Window),
	})
	if err != nil {
		return err
	}

	if uc.Metrics != nil && stored.ReferrerCode == referrerCode && stored.CapturedAt.Equal(now) {
		uc.Metrics.RecordAttributionCaptured(referrerCode)
	}
	return nil
}

// CurrentReferrer is a pure read. Expiry is evaluated here, lazily, instead
// of by a sweeping job.
func (uc *DefaultAttributionUsecase) CurrentReferrer(visitorID string) (string, error) {
	attribution, err := uc.AttributionRepo.GetByVisitorID(visitorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	if !attribution.Active(time.Now()) {
		return "", nil
	}
	return attribution.ReferrerCode, nil
}

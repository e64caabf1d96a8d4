package domain

import "time"

// Click is an append-only record of one attributed CTA interaction.
// The tracker never deduplicates; interpretation of volume belongs to the
// aggregator.
type Click struct {
	ID           string
	ContentID    string
	ReferrerCode string
	PlatformKey  string
	CreatedAt    time.Time
}

type ClickUsecase interface {
	RecordClick(contentID, referrerCode, platformKey string, at time.Time) error
}

type ClickRepository interface {
	CreateClick(click *Click) error
	CountByReferrer(referrerCode string, from, to time.Time) (int64, error)
	CountByPlatform(referrerCode string, from, to time.Time) (map[string]int64, error)
}

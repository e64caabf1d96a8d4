package domain

import "time"

// ReferrerStats is a read-only fold over clicks, attributions and the
// ledger. Recomputed on demand; never maintained incrementally.
type ReferrerStats struct {
	ReferrerID       string
	Clicks           int64
	Signups          int64
	CommissionEarned int64
}

type PlatformStats struct {
	PlatformKey string
	Clicks      int64
}

type StatsUsecase interface {
	AggregateByReferrer(referrerID string, from, to time.Time) (*ReferrerStats, error)
	AggregateByPlatform(referrerID string, from, to time.Time) ([]*PlatformStats, error)
}

type LinkUsecase interface {
	Resolve(userID, destinationURL, platformKey, referrerCode string) (string, error)
	SetLink(link *ReferralLink) error
	GetLinksByUserID(userID string) ([]*ReferralLink, error)
}

package domain

import "time"

// Attribution fixes which referrer brought a visitor. First-touch: once an
// active attribution exists for a visitor it is never overwritten until it
// expires.
type Attribution struct {
	VisitorID    string
	ReferrerCode string
	CapturedAt   time.Time
	ExpiresAt    time.Time
}

func (a *Attribution) Active(now time.Time) bool {
	return now.Before(a.ExpiresAt)
}

type AttributionUsecase interface {
	Capture(visitorID, referrerCode string) error
	CurrentReferrer(visitorID string) (string, error)
}

type AttributionRepository interface {
	// CreateIfAbsent races safely to a single winner: it inserts the
	// attribution unless an active one already exists for the visitor.
	// Returns the attribution that ended up stored.
	CreateIfAbsent(attribution *Attribution) (*Attribution, error)
	GetByVisitorID(visitorID string) (*Attribution, error)
	CountByReferrer(referrerCode string, from, to time.Time) (int64, error)
}

package domain

import "time"

// CommissionRule is a time-bounded, optionally product-scoped percent split
// for one referrer. Overlapping rules for a referrer are allowed and are
// disambiguated at resolution time, never merged.
type CommissionRule struct {
	ID                string
	ReferrerID        string
	ProductID         *string // nil means the rule applies to all products
	CommissionPercent float64
	StartDate         time.Time
	EndDate           *time.Time // nil means open-ended
	Priority          int32
	CreatedBy         string
	CreatedAt         time.Time
}

// ActiveAt reports whether the rule covers the given transaction date.
func (r *CommissionRule) ActiveAt(at time.Time) bool {
	if at.Before(r.StartDate) {
		return false
	}
	if r.EndDate != nil && at.After(*r.EndDate) {
		return false
	}
	return true
}

// Split is an exact division of a transaction amount in minor units.
// Commission + Platform always equals the original amount.
type Split struct {
	CommissionAmount int64
	PlatformAmount   int64
}

type CommissionUsecase interface {
	CreateRule(rule *CommissionRule) error
	UpdateRule(rule *CommissionRule) error
	DeleteRule(ruleID string) error
	GetRuleByID(ruleID string) (*CommissionRule, error)
	GetRulesByReferrerID(referrerID string, page, limit int32) ([]*CommissionRule, int64, error)
	Resolve(referrerID, productID string, transactionDate time.Time) (*CommissionRule, error)
	ComputeSplit(amount int64, rule *CommissionRule) (Split, error)
}

type CommissionRuleRepository interface {
	CreateRule(rule *CommissionRule) error
	UpdateRule(rule *CommissionRule) error
	DeleteRule(ruleID string) error
	GetRuleByID(ruleID string) (*CommissionRule, error)
	GetRulesByReferrerID(referrerID string, page, limit int32) ([]*CommissionRule, int64, error)
	// GetActiveRules returns every rule for the referrer whose date window
	// covers the given moment.
	GetActiveRules(referrerID string, at time.Time) ([]*CommissionRule, error)
}

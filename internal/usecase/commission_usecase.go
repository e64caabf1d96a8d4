package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
)

type DefaultCommissionUsecase struct {
	RuleRepo domain.CommissionRuleRepository
}

func NewDefaultCommissionUsecase(ruleRepo domain.CommissionRuleRepository) *DefaultCommissionUsecase {
	return &DefaultCommissionUsecase{RuleRepo: ruleRepo}
}

// validateRule rejects malformed rule data at write time so that the
// resolver can assume a pre-validated rule set.
func validateRule(rule *domain.CommissionRule) error {
	if rule.ReferrerID == "" {
		return fmt.Errorf("%w: referrer_id is required", domain.ErrValidation)
	}
	if rule.CommissionPercent < 0 || rule.CommissionPercent > 100 {
		return fmt.Errorf("%w: commission percent %.2f outside [0,100]", domain.ErrValidation, rule.CommissionPercent)
	}
	if rule.ProductID != nil && *rule.ProductID == "" {
		return fmt.Errorf("%w: product_id must be null or non-empty", domain.ErrValidation)
	}
	if rule.EndDate != nil && rule.EndDate.Before(rule.StartDate) {
		return fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}
	return nil
}

func (uc *DefaultCommissionUsecase) CreateRule(rule *domain.CommissionRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return uc.RuleRepo.CreateRule(rule)
}

func (uc *DefaultCommissionUsecase) UpdateRule(rule *domain.CommissionRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return uc.RuleRepo.UpdateRule(rule)
}

func (uc *DefaultCommissionUsecase) DeleteRule(ruleID string) error {
	return uc.RuleRepo.DeleteRule(ruleID)
}

func (uc *DefaultCommissionUsecase) GetRuleByID(ruleID string) (*domain.CommissionRule, error) {
	return uc.RuleRepo.GetRuleByID(ruleID)
}

func (uc *DefaultCommissionUsecase) GetRulesByReferrerID(referrerID string, page, limit int32) ([]*domain.CommissionRule, int64, error) {
	return uc.RuleRepo.GetRulesByReferrerID(referrerID, page, limit)
}

// Resolve selects the single applicable rule for a transaction.
// Product-specific rules beat catch-all rules regardless of priority; within
// a tier the highest priority wins, ties broken by most recent created_at.
// Absence of a rule is meaningful (no commission, not 0%), reported as
// ErrNoMatchingRule.
func (uc *DefaultCommissionUsecase) Resolve(referrerID, productID string, transactionDate time.Time) (*domain.CommissionRule, error) {
	rules, err := uc.RuleRepo.GetActiveRules(referrerID, transactionDate)
	if err != nil {
		return nil, err
	}

	var best *domain.CommissionRule
	bestSpecific := false

	for _, rule := range rules {
		if !rule.ActiveAt(transactionDate) {
			continue
		}
		specific := rule.ProductID != nil && *rule.ProductID == productID
		if rule.ProductID != nil && !specific {
			continue
		}

		if best == nil {
			best, bestSpecific = rule, specific
			continue
		}
		if specific != bestSpecific {
			if specific {
				best, bestSpecific = rule, specific
			}
			continue
		}
		if rule.Priority != best.Priority {
			if rule.Priority > best.Priority {
				best = rule
			}
			continue
		}
		if rule.CreatedAt.After(best.CreatedAt) {
			best = rule
		}
	}

	if best == nil {
		return nil, domain.ErrNoMatchingRule
	}
	// Write-time validation should have made this impossible; observing it
	// here means the rule set was corrupted upstream.
	if best.CommissionPercent < 0 || best.CommissionPercent > 100 {
		return nil, fmt.Errorf("%w: rule %s has percent %.2f", domain.ErrIntegrityViolation, best.ID, best.CommissionPercent)
	}
	return best, nil
}

// ComputeSplit divides amount exactly. The percent is converted to basis
// points once so the whole computation stays in integers: the commission
// rounds down to the nearest minor unit and the platform share takes the
// remainder, so CommissionAmount + PlatformAmount == amount always holds.
func (uc *DefaultCommissionUsecase) ComputeSplit(amount int64, rule *domain.CommissionRule) (domain.Split, error) {
	if amount < 0 {
		return domain.Split{}, fmt.Errorf("%w: negative amount %d", domain.ErrValidation, amount)
	}
	if rule.CommissionPercent < 0 || rule.CommissionPercent > 100 {
		return domain.Split{}, fmt.Errorf("%w: rule %s has percent %.2f", domain.ErrIntegrityViolation, rule.ID, rule.CommissionPercent)
	}

	basisPoints := int64(math.Round(rule.CommissionPercent * 100))
	commission := amount * basisPoints / 10000

	return domain.Split{
		CommissionAmount: commission,
		PlatformAmount:   amount - commission,
	}, nil
}

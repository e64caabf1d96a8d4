package mappers

import (
	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
)

func ToGORMRule(rule *domain.CommissionRule) *models.CommissionRuleModel {
	return &models.CommissionRuleModel{
		ID:                rule.ID,
		ReferrerID:        rule.ReferrerID,
		ProductID:         rule.ProductID,
		CommissionPercent: rule.CommissionPercent,
		StartDate:         rule.StartDate,
		EndDate:           rule.EndDate,
		Priority:          rule.Priority,
		CreatedBy:         rule.CreatedBy,
		CreatedAt:         rule.CreatedAt,
	}
}

func ToDomainRule(model *models.CommissionRuleModel) *domain.CommissionRule {
	return &domain.CommissionRule{
		ID:                model.ID,
		ReferrerID:        model.ReferrerID,
		ProductID:         model.ProductID,
		CommissionPercent: model.CommissionPercent,
		StartDate:         model.StartDate,
		EndDate:           model.EndDate,
		Priority:          model.Priority,
		CreatedBy:         model.CreatedBy,
		CreatedAt:         model.CreatedAt,
	}
}

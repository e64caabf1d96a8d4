package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultCommissionRuleRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionRuleRepository(db *gorm.DB) *DefaultCommissionRuleRepository {
	return &DefaultCommissionRuleRepository{DB: db}
}

func (r *DefaultCommissionRuleRepository) CreateRule(rule *domain.CommissionRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}

	ruleModel := mappers.ToGORMRule(rule)
	if err := r.DB.Create(ruleModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCommissionRuleRepository) UpdateRule(rule *domain.CommissionRule) error {
	updateData := map[string]interface{}{
		"product_id":         rule.ProductID,
		"commission_percent": rule.CommissionPercent,
		"start_date":         rule.StartDate,
		"end_date":           rule.EndDate,
		"priority":           rule.Priority,
	}

	res := r.DB.Model(&models.CommissionRuleModel{}).
		Where("id = ?", rule.ID).
		Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultCommissionRuleRepository) DeleteRule(ruleID string) error {
	res := r.DB.Delete(&models.CommissionRuleModel{ID: ruleID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultCommissionRuleRepository) GetRuleByID(ruleID string) (*domain.CommissionRule, error) {
	var ruleModel models.CommissionRuleModel
	if err := r.DB.First(&ruleModel, "id = ?", ruleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRule(&ruleModel), nil
}

func (r *DefaultCommissionRuleRepository) GetRulesByReferrerID(referrerID string, page, limit int32) ([]*domain.CommissionRule, int64, error) {
	var ruleModels []models.CommissionRuleModel
	var total int64

	base := r.DB.Model(&models.CommissionRuleModel{}).Where("referrer_id = ?", referrerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := base.Offset(int(offset)).Limit(int(limit)).Order("created_at DESC").Find(&ruleModels).Error; err != nil {
		return nil, 0, err
	}

	rules := make([]*domain.CommissionRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = mappers.ToDomainRule(&ruleModels[i])
	}
	return rules, total, nil
}

func (r *DefaultCommissionRuleRepository) GetActiveRules(referrerID string, at time.Time) ([]*domain.CommissionRule, error) {
	var ruleModels []models.CommissionRuleModel
	if err := r.DB.
		Where("referrer_id = ?", referrerID).
		Where("start_date <= ?", at).
		Where("end_date IS NULL OR end_date >= ?", at).
		Find(&ruleModels).Error; err != nil {
		return nil, err
	}

	rules := make([]*domain.CommissionRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = mappers.ToDomainRule(&ruleModels[i])
	}
	return rules, nil
}

package models

import "time"

type CommissionRuleModel struct {
	ID                string     `gorm:"primaryKey;type:uuid"`
	ReferrerID        string     `gorm:"index:idx_rule_referrer;not null"`
	ProductID         *string    `gorm:"index"`
	CommissionPercent float64    `gorm:"not null"`
	StartDate         time.Time  `gorm:"index:idx_rule_dates"`
	EndDate           *time.Time `gorm:"index:idx_rule_dates"`
	Priority          int32
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CommissionRuleModel) TableName() string {
	return "commission_rules"
}

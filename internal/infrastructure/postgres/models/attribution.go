package models

import "time"

type AttributionModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	VisitorID    string    `gorm:"uniqueIndex:idx_attribution_visitor;not null"`
	ReferrerCode string    `gorm:"index;not null"`
	CapturedAt   time.Time `gorm:"not null"`
	ExpiresAt    time.Time `gorm:"not null"`
}

func (AttributionModel) TableName() string {
	return "attributions"
}

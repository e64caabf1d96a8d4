package models

import "time"

type ClickModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	ContentID    string    `gorm:"index"`
	ReferrerCode string    `gorm:"index:idx_click_referrer;not null"`
	PlatformKey  string    `gorm:"index:idx_click_platform"`
	CreatedAt    time.Time `gorm:"index"`
}

func (ClickModel) TableName() string {
	return "clicks"
}

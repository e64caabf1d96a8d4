package models

import "time"

type ReferralProgramModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	PlatformKey  string `gorm:"uniqueIndex:idx_program_platform;not null"`
	Name         string
	LinkTemplate string
	IsActive     bool `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ReferralProgramModel) TableName() string {
	return "referral_programs"
}

type ReferralLinkModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      string `gorm:"uniqueIndex:idx_link_user_platform;not null"`
	PlatformKey string `gorm:"uniqueIndex:idx_link_user_platform;not null"`
	URL         string
	IsSet       bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ReferralLinkModel) TableName() string {
	return "referral_links"
}

package repository

import (
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultClickRepository struct {
	DB *gorm.DB
}

func NewDefaultClickRepository(db *gorm.DB) *DefaultClickRepository {
	return &DefaultClickRepository{DB: db}
}

// CreateClick is strictly append-only.
func (r *DefaultClickRepository) CreateClick(click *domain.Click) error {
	clickModel := models.ClickModel{
		ID:           uuid.New().String(),
		ContentID:    click.ContentID,
		ReferrerCode: click.ReferrerCode,
		PlatformKey:  click.PlatformKey,
		CreatedAt:    click.CreatedAt,
	}

	if err := r.DB.Create(&clickModel).Error; err != nil {
		return err
	}

	click.ID = clickModel.ID
	return nil
}

func (r *DefaultClickRepository) CountByReferrer(referrerCode string, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ClickModel{}).
		Where("referrer_code = ?", referrerCode).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultClickRepository) CountByPlatform(referrerCode string, from, to time.Time) (map[string]int64, error) {
	type platformCount struct {
		PlatformKey string
		Clicks      int64
	}

	var rows []platformCount
	err := r.DB.Model(&models.ClickModel{}).
		Select("platform_key, COUNT(*) AS clicks").
		Where("referrer_code = ?", referrerCode).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("platform_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PlatformKey] = row.Clicks
	}
	return counts, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultReferralLinkRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralLinkRepository(db *gorm.DB) *DefaultReferralLinkRepository {
	return &DefaultReferralLinkRepository{DB: db}
}

// UpsertLink keeps at most one link per user and platform.
func (r *DefaultReferralLinkRepository) UpsertLink(link *domain.ReferralLink) error {
	linkModel := models.ReferralLinkModel{
		ID:          uuid.New().String(),
		UserID:      link.UserID,
		PlatformKey: link.PlatformKey,
		URL:         link.URL,
		IsSet:       link.IsSet,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"url":        link.URL,
			"is_set":     link.IsSet,
			"updated_at": time.Now(),
		}),
	}).Create(&linkModel).Error
}

func (r *DefaultReferralLinkRepository) GetLink(userID, platformKey string) (*domain.ReferralLink, error) {
	var linkModel models.ReferralLinkModel
	if err := r.DB.Where("user_id = ? AND platform_key = ?", userID, platformKey).First(&linkModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.ReferralLink{
		UserID:      linkModel.UserID,
		PlatformKey: linkModel.PlatformKey,
		URL:         linkModel.URL,
		IsSet:       linkModel.IsSet,
	}, nil
}

func (r *DefaultReferralLinkRepository) GetLinksByUserID(userID string) ([]*domain.ReferralLink, error) {
	var linkModels []models.ReferralLinkModel
	if err := r.DB.Where("user_id = ?", userID).Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]*domain.ReferralLink, len(linkModels))
	for i, linkModel := range linkModels {
		links[i] = &domain.ReferralLink{
			UserID:      linkModel.UserID,
			PlatformKey: linkModel.PlatformKey,
			URL:         linkModel.URL,
			IsSet:       linkModel.IsSet,
		}
	}
	return links, nil
}

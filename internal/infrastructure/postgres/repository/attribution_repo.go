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

type DefaultAttributionRepository struct {
	DB *gorm.DB
}

func NewDefaultAttributionRepository(db *gorm.DB) *DefaultAttributionRepository {
	return &DefaultAttributionRepository{DB: db}
}

// CreateIfAbsent implements first-touch capture as a compare-and-set write.
// The unique index on visitor_id makes concurrent captures race safely to a
// single winner; an expired attribution is taken over in place, guarded by
// the expires_at predicate so two racing takeovers cannot both win.
func (r *DefaultAttributionRepository) CreateIfAbsent(attribution *domain.Attribution) (*domain.Attribution, error) {
	attributionModel := models.AttributionModel{
		ID:           uuid.New().String(),
		VisitorID:    attribution.VisitorID,
		ReferrerCode: attribution.ReferrerCode,
		CapturedAt:   attribution.CapturedAt,
		ExpiresAt:    attribution.ExpiresAt,
	}

	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}},
		DoNothing: true,
	}).Create(&attributionModel)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		takeover := r.DB.Model(&models.AttributionModel{}).
			Where("visitor_id = ? AND expires_at <= ?", attribution.VisitorID, attribution.CapturedAt).
			Updates(map[string]interface{}{
				"referrer_code": attribution.ReferrerCode,
				"captured_at":   attribution.CapturedAt,
				"expires_at":    attribution.ExpiresAt,
			})
		if takeover.Error != nil {
			return nil, takeover.Error
		}
	}

	return r.GetByVisitorID(attribution.VisitorID)
}

func (r *DefaultAttributionRepository) GetByVisitorID(visitorID string) (*domain.Attribution, error) {
	var attributionModel models.AttributionModel
	if err := r.DB.Where("visitor_id = ?", visitorID).First(&attributionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.Attribution{
		VisitorID:    attributionModel.VisitorID,
		ReferrerCode: attributionModel.ReferrerCode,
		CapturedAt:   attributionModel.CapturedAt,
		ExpiresAt:    attributionModel.ExpiresAt,
	}, nil
}

func (r *DefaultAttributionRepository) CountByReferrer(referrerCode string, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.AttributionModel{}).
		Where("referrer_code = ?", referrerCode).
		Where("captured_at >= ? AND captured_at <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultProgramRepository struct {
	DB *gorm.DB
}

func NewDefaultProgramRepository(db *gorm.DB) *DefaultProgramRepository {
	return &DefaultProgramRepository{DB: db}
}

func (r *DefaultProgramRepository) CreateProgram(program *domain.ReferralProgram) error {
	programModel := models.ReferralProgramModel{
		ID:           uuid.New().String(),
		PlatformKey:  program.PlatformKey,
		Name:         program.Name,
		LinkTemplate: program.LinkTemplate,
		IsActive:     program.IsActive,
	}

	if err := r.DB.Create(&programModel).Error; err != nil {
		return err
	}

	program.ID = programModel.ID
	return nil
}

// platform_key is immutable: it is deliberately absent from the update map.
func (r *DefaultProgramRepository) UpdateProgram(program *domain.ReferralProgram) error {
	updateData := map[string]interface{}{
		"name":          program.Name,
		"link_template": program.LinkTemplate,
		"is_active":     program.IsActive,
		"updated_at":    time.Now(),
	}

	res := r.DB.Model(&models.ReferralProgramModel{}).
		Where("platform_key = ?", program.PlatformKey).
		Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultProgramRepository) GetProgramByPlatformKey(platformKey string) (*domain.ReferralProgram, error) {
	var programModel models.ReferralProgramModel
	if err := r.DB.Where("platform_key = ?", platformKey).First(&programModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.ReferralProgram{
		ID:           programModel.ID,
		PlatformKey:  programModel.PlatformKey,
		Name:         programModel.Name,
		LinkTemplate: programModel.LinkTemplate,
		IsActive:     programModel.IsActive,
	}, nil
}

func (r *DefaultProgramRepository) GetPrograms(page, limit int32) ([]*domain.ReferralProgram, int64, error) {
	var programModels []models.ReferralProgramModel
	var total int64

	r.DB.Model(&models.ReferralProgramModel{}).Count(&total)

	offset := (page - 1) * limit
	if err := r.DB.Offset(int(offset)).Limit(int(limit)).Order("created_at DESC").Find(&programModels).Error; err != nil {
		return nil, 0, err
	}

	programs := make([]*domain.ReferralProgram, len(programModels))
	for i, programModel := range programModels {
		programs[i] = &domain.ReferralProgram{
			ID:           programModel.ID,
			PlatformKey:  programModel.PlatformKey,
			Name:         programModel.Name,
			LinkTemplate: programModel.LinkTemplate,
			IsActive:     programModel.IsActive,
		}
	}

	return programs, total, nil
}

package usecase

import (
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type DefaultProgramUsecase struct {
	ProgramRepo domain.ProgramRepository
	generate    func() string
}

func NewDefaultProgramUsecase(programRepo domain.ProgramRepository) (*DefaultProgramUsecase, error) {
	generate, err := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 10)
	if err != nil {
		return nil, fmt.Errorf("failed to init referrer code generator: %w", err)
	}
	return &DefaultProgramUsecase{
		ProgramRepo: programRepo,
		generate:    generate,
	}, nil
}

func validateProgram(program *domain.ReferralProgram) error {
	if program.PlatformKey == "" {
		return fmt.Errorf("%w: platform_key is required", domain.ErrValidation)
	}
	if program.LinkTemplate != "" && strings.Count(program.LinkTemplate, domain.CodePlaceholder) != 1 {
		return fmt.Errorf("%w: link template must contain exactly one %s placeholder", domain.ErrValidation, domain.CodePlaceholder)
	}
	return nil
}

func (uc *DefaultProgramUsecase) CreateProgram(program *domain.ReferralProgram) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return uc.ProgramRepo.CreateProgram(program)
}

// UpdateProgram never touches PlatformKey: it is immutable after creation.
func (uc *DefaultProgramUsecase) UpdateProgram(program *domain.ReferralProgram) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return uc.ProgramRepo.UpdateProgram(program)
}

func (uc *DefaultProgramUsecase) GetProgramByPlatformKey(platformKey string) (*domain.ReferralProgram, error) {
	return uc.ProgramRepo.GetProgramByPlatformKey(platformKey)
}

func (uc *DefaultProgramUsecase) GetPrograms(page, limit int32) ([]*domain.ReferralProgram, int64, error) {
	return uc.ProgramRepo.GetPrograms(page, limit)
}

func (uc *DefaultProgramUsecase) DeactivateProgram(platformKey string) error {
	program, err := uc.ProgramRepo.GetProgramByPlatformKey(platformKey)
	if err != nil {
		return err
	}
	program.IsActive = false
	return uc.ProgramRepo.UpdateProgram(program)
}

// GenerateReferrerCode issues a short code for a new affiliate.
func (uc *DefaultProgramUsecase) GenerateReferrerCode() (string, error) {
	return uc.generate(), nil
}

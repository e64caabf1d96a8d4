package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
)

type DefaultLinkUsecase struct {
	LinkRepo    domain.ReferralLinkRepository
	ProgramRepo domain.ProgramRepository
}

func NewDefaultLinkUsecase(
	linkRepo domain.ReferralLinkRepository,
	programRepo domain.ProgramRepository) *DefaultLinkUsecase {

	return &DefaultLinkUsecase{
		LinkRepo:    linkRepo,
		ProgramRepo: programRepo,
	}
}

// Resolve builds the outbound affiliate link. Precedence: the user's own
// stored link for the platform, then the platform's program template, then
// the generic ref= query parameter. An unknown platform never fails link
// generation; it degrades to the generic fallback.
func (uc *DefaultLinkUsecase) Resolve(userID, destinationURL, platformKey, referrerCode string) (string, error) {
	if userID != "" {
		link, err := uc.LinkRepo.GetLink(userID, platformKey)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		if link != nil && link.IsSet {
			return link.URL, nil
		}
	}

	program, err := uc.ProgramRepo.GetProgramByPlatformKey(platformKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	if program != nil && program.IsActive && program.LinkTemplate != "" {
		return program.BuildLink(referrerCode), nil
	}

	return appendRefParam(destinationURL, referrerCode), nil
}

// appendRefParam keeps the destination byte-for-byte and only appends the
// ref parameter; re-encoding through net/url would reorder an existing
// query string.
func appendRefParam(destinationURL, referrerCode string) string {
	sep := "?"
	if strings.Contains(destinationURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sref=%s", destinationURL, sep, url.QueryEscape(referrerCode))
}

func (uc *DefaultLinkUsecase) SetLink(link *domain.ReferralLink) error {
	if link.UserID == "" || link.PlatformKey == "" {
		return fmt.Errorf("%w: user_id and platform_key are required", domain.ErrValidation)
	}
	link.IsSet = link.URL != ""
	return uc.LinkRepo.UpsertLink(link)
}

func (uc *DefaultLinkUsecase) GetLinksByUserID(userID string) ([]*domain.ReferralLink, error) {
	return uc.LinkRepo.GetLinksByUserID(userID)
}

package domain

import "strings"

// CodePlaceholder is the single substitution slot in a program link template.
const CodePlaceholder = "{code}"

// ReferralProgram describes one affiliate platform and its link format.
// PlatformKey is unique and immutable after creation.
type ReferralProgram struct {
	ID           string
	PlatformKey  string
	Name         string
	LinkTemplate string
	IsActive     bool
}

func (p *ReferralProgram) BuildLink(referrerCode string) string {
	return strings.Replace(p.LinkTemplate, CodePlaceholder, referrerCode, 1)
}

// ReferralLink is a user-owned, per-platform override. At most one link per
// user and platform; mutated only by its owner.
type ReferralLink struct {
	UserID      string
	PlatformKey string
	URL         string
	IsSet       bool
}

type ProgramUsecase interface {
	CreateProgram(program *ReferralProgram) error
	UpdateProgram(program *ReferralProgram) error
	GetProgramByPlatformKey(platformKey string) (*ReferralProgram, error)
	GetPrograms(page, limit int32) ([]*ReferralProgram, int64, error)
	DeactivateProgram(platformKey string) error
	GenerateReferrerCode() (string, error)
}

type ProgramRepository interface {
	CreateProgram(program *ReferralProgram) error
	UpdateProgram(program *ReferralProgram) error
	GetProgramByPlatformKey(platformKey string) (*ReferralProgram, error)
	GetPrograms(page, limit int32) ([]*ReferralProgram, int64, error)
}

type ReferralLinkRepository interface {
	UpsertLink(link *ReferralLink) error
	GetLink(userID, platformKey string) (*ReferralLink, error)
	GetLinksByUserID(userID string) ([]*ReferralLink, error)
}

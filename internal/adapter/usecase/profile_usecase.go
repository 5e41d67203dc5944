package usecase

import (
	"context"
	"maps"
	"strings"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

// ProfileUseCase manages the single business profile of a user.
type ProfileUseCase struct {
	repo port.BusinessRepository
}

func NewProfileUseCase(repo port.BusinessRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

var _ port.ProfileUseCase = (*ProfileUseCase)(nil)

// Get returns the user's profile, creating an empty one on first access.
func (u *ProfileUseCase) Get(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	return u.repo.GetOrCreate(ctx, userID)
}

// Update overwrites the descriptive fields and contact info of the user's
// profile with upd. Identity fields of upd are ignored.
func (u *ProfileUseCase) Update(ctx context.Context, userID string, upd domain.BusinessProfile) (*domain.BusinessProfile, error) {
	profile, err := u.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.BusinessContext = domain.BusinessContext{
		BusinessName:   strings.TrimSpace(upd.BusinessName),
		BusinessType:   strings.TrimSpace(upd.BusinessType),
		Description:    strings.TrimSpace(upd.Description),
		TargetAudience: strings.TrimSpace(upd.TargetAudience),
		Location:       strings.TrimSpace(upd.Location),
	}
	profile.ContactInfo = maps.Clone(upd.ContactInfo)
	if profile.ContactInfo == nil {
		profile.ContactInfo = map[string]string{}
	}
	if err = u.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

// ExecuteGetOwnProfile returns the caller's profile with owner name/avatar
// joined. A missing profile answers 400, not 404.
func (uc *ProfileUseCase) ExecuteGetOwnProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNoProfile(userID.String())
		}
		return nil, apperror.NewInternal("failed to load own profile", err)
	}
	return p, nil
}

// ExecuteGetProfileByUserID resolves a profile by the raw user id path
// segment. A malformed id and a well-formed-but-absent id answer the same
// 404.
func (uc *ProfileUseCase) ExecuteGetProfileByUserID(ctx context.Context, rawUserID string) (*profile.Profile, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, apperror.NewNotFound("Profile", rawUserID)
	}

	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("Profile", rawUserID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}
	return p, nil
}

// ExecuteListProfiles returns every profile with its owner joined in.
func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context) ([]*profile.Profile, error) {
	profiles, err := uc.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profiles", err)
	}
	return profiles, nil
}

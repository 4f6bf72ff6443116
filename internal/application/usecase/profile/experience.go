package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// ExecuteAddExperience prepends a new experience entry with a fresh id and
// returns the whole updated profile. No existence pre-check happens: a
// missing profile surfaces as an internal error.
func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*profile.Profile, error) {
	fields := make([]apperror.FieldError, 0, 4)
	if input.Title == "" {
		fields = append(fields, apperror.FieldError{Msg: "Title is required", Param: "title"})
	}
	if input.Company == "" {
		fields = append(fields, apperror.FieldError{Msg: "Company is required", Param: "company"})
	}
	if input.From.IsZero() {
		fields = append(fields, apperror.FieldError{Msg: "From date is required", Param: "from"})
	}
	if input.To != nil && !input.From.Before(*input.To) {
		fields = append(fields, apperror.FieldError{Msg: "From date must be before to date", Param: "to"})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load profile for experience add", err)
	}

	p.PrependExperience(profile.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save experience", err)
	}

	uc.publish(ctx, event.ProfileEventPayload{
		EventType:      event.EventExperienceAdded,
		UserID:         input.UserID,
		GithubUsername: p.GithubUsername,
	})

	return p, nil
}

// ExecuteRemoveExperience drops the entry with the given id; an unknown id
// leaves the list as-is and still succeeds.
func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load profile for experience remove", err)
	}

	if id, err := uuid.Parse(entryID); err == nil {
		p.RemoveExperience(id)
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save profile after experience remove", err)
	}
	return p, nil
}

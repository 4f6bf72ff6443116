package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ExecuteAddEducation prepends a new education entry with a fresh id and
// returns the whole updated profile.
func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*profile.Profile, error) {
	fields := make([]apperror.FieldError, 0, 5)
	if input.School == "" {
		fields = append(fields, apperror.FieldError{Msg: "School is required", Param: "school"})
	}
	if input.Degree == "" {
		fields = append(fields, apperror.FieldError{Msg: "Degree is required", Param: "degree"})
	}
	if input.FieldOfStudy == "" {
		fields = append(fields, apperror.FieldError{Msg: "Field of study is required", Param: "fieldofstudy"})
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
		return nil, apperror.NewInternal("failed to load profile for education add", err)
	}

	p.PrependEducation(profile.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save education", err)
	}

	uc.publish(ctx, event.ProfileEventPayload{
		EventType:      event.EventEducationAdded,
		UserID:         input.UserID,
		GithubUsername: p.GithubUsername,
	})

	return p, nil
}

// ExecuteRemoveEducation drops the entry with the given id; an unknown id
// leaves the list as-is and still succeeds.
func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load profile for education remove", err)
	}

	if id, err := uuid.Parse(entryID); err == nil {
		p.RemoveEducation(id)
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save profile after education remove", err)
	}
	return p, nil
}

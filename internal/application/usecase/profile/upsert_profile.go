package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

type UpsertProfileInput struct {
	UserID         uuid.UUID
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GithubUsername string
	Social         profile.Social
}

var tracer = otel.Tracer("profile_usecase")

// ExecuteUpsertProfile writes the caller's profile, inserting with defaults
// on first write and replacing the top-level fields afterwards. Experience
// and education survive the replace. The stored document is read back and
// returned.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	fields := make([]apperror.FieldError, 0, 2)
	if input.Status == "" {
		fields = append(fields, apperror.FieldError{Msg: "Status is required", Param: "status"})
	}
	if len(input.Skills) == 0 {
		fields = append(fields, apperror.FieldError{Msg: "Skills is required", Param: "skills"})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	p := &profile.Profile{
		UserID:         input.UserID,
		Company:        input.Company,
		Website:        profile.NormalizeURL(input.Website),
		Location:       input.Location,
		Status:         input.Status,
		Skills:         input.Skills,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Social:         profile.NormalizeSocial(input.Social),
		Date:           time.Now().UTC(),
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}

	stored, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to reload upserted profile", err)
	}

	uc.publish(ctx, event.ProfileEventPayload{
		EventType:      event.EventProfileUpdated,
		UserID:         input.UserID,
		GithubUsername: stored.GithubUsername,
	})

	return stored, nil
}

package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

// ExecuteDeleteAccount removes the caller's posts, profile and user document
// as three independent deletions, in that order. Each outcome is logged on
// its own; a failed step does not roll back the ones before it.
func (uc *ProfileUseCase) ExecuteDeleteAccount(ctx context.Context, userID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	l := uc.logger.With(zap.String("user_id", userID.String()))
	var failures []error

	removed, err := uc.postRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		l.Error("Account delete: posts step failed", err)
		failures = append(failures, err)
	} else {
		l.Info("Account delete: posts removed", zap.Int64("count", removed))
	}

	if err := uc.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		l.Error("Account delete: profile step failed", err)
		failures = append(failures, err)
	} else {
		l.Info("Account delete: profile removed")
	}

	if err := uc.userRepo.DeleteByID(ctx, userID); err != nil {
		l.Error("Account delete: user step failed", err)
		failures = append(failures, err)
	} else {
		l.Info("Account delete: user removed")
	}

	if len(failures) > 0 {
		err := errors.Join(failures...)
		span.RecordError(err)
		return apperror.NewInternal("account deletion incomplete", err)
	}

	uc.publish(ctx, event.ProfileEventPayload{
		EventType: event.EventAccountDeleted,
		UserID:    userID,
	})
	return nil
}

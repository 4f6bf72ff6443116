package profile

import (
	"context"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/internal/domain/post"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/internal/domain/user"
	"github.com/HPainhas/DevConnector/pkg/logger"
	"go.uber.org/zap"
)

// EventPublisher emits profile lifecycle events. Event failures never fail
// the request; they are logged and dropped.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}

type ProfileUseCase struct {
	profileRepo profile.Repository
	postRepo    post.Repository
	userRepo    user.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(
	pr profile.Repository,
	postRepo post.Repository,
	ur user.Repository,
	events EventPublisher,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: pr,
		postRepo:    postRepo,
		userRepo:    ur,
		events:      events,
		logger:      log,
	}
}

func (uc *ProfileUseCase) publish(ctx context.Context, payload event.ProfileEventPayload) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishProfileEvent(ctx, payload); err != nil {
		uc.logger.Warn("Failed to publish profile event",
			zap.String("event_type", payload.EventType),
			zap.String("user_id", payload.UserID.String()),
			zap.Error(err))
	}
}

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/HPainhas/DevConnector/internal/config"
)

const (
	TopicProfileEvents = "profile.events"

	EventProfileUpdated  = "profile.updated"
	EventExperienceAdded = "experience.added"
	EventEducationAdded  = "education.added"
	EventAccountDeleted  = "account.deleted"
)

// ProfileEventPayload is the message published on profile.events. The worker
// uses GithubUsername to invalidate the cached GitHub repo listing.
type ProfileEventPayload struct {
	EventType      string    `json:"event_type"`
	UserID         uuid.UUID `json:"user_id"`
	GithubUsername string    `json:"github_username,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
	}, nil
}

// PublishProfileEvent writes the payload keyed by user id so events for one
// user stay ordered within a partition.
func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	}
	if err := c.ProfileEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish profile event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}

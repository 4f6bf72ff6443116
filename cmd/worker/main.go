package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/adapters/persistence"
	githubUC "github.com/HPainhas/DevConnector/internal/application/usecase/github"
	"github.com/HPainhas/DevConnector/internal/config"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

// The worker tails profile.events and keeps the GitHub repo cache honest:
// whenever a profile changes or an account goes away, the cached listing for
// that github username is dropped.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevConnector worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.ByteString("value", msg.Value))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		appLogger.Info("Processing profile event",
			zap.String("event_type", payload.EventType),
			zap.String("user_id", payload.UserID.String()))

		if payload.GithubUsername != "" {
			key := githubUC.CacheKey(payload.GithubUsername)
			if err := redisClient.Del(ctx, key).Err(); err != nil {
				appLogger.Error("Failed to invalidate github cache", err, zap.String("key", key))
				continue
			}
			appLogger.Info("Invalidated github cache", zap.String("key", key))
		}

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}

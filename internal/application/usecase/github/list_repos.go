package github

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/internal/application/service"
	"github.com/HPainhas/DevConnector/pkg/apperror"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

// RepoLimit caps the passthrough listing at five repositories.
const RepoLimit = 5

type ListReposUseCase struct {
	github service.GitHubService
	cache  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewListReposUseCase builds the listing use case. cache may be nil, in
// which case every call goes straight to GitHub.
func NewListReposUseCase(gh service.GitHubService, cache *redis.Client, ttl time.Duration, log logger.Logger) *ListReposUseCase {
	return &ListReposUseCase{
		github: gh,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

// CacheKey is exported so the worker can invalidate entries on profile
// events.
func CacheKey(username string) string {
	return fmt.Sprintf("github:repos:%s", username)
}

// Execute returns up to RepoLimit repositories for username, oldest first.
// Any upstream failure collapses to a generic error; the cause is only
// logged.
func (uc *ListReposUseCase) Execute(ctx context.Context, username string) ([]service.Repo, error) {
	key := CacheKey(username)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key).Bytes()
		if err == nil {
			var repos []service.Repo
			if err := json.Unmarshal(cached, &repos); err == nil {
				return repos, nil
			}
			uc.logger.Warn("Discarding unreadable github cache entry", zap.String("key", key))
		}
	}

	repos, err := uc.github.ListRepos(ctx, username, RepoLimit)
	if err != nil {
		uc.logger.Error("GitHub repo listing failed", err, zap.String("username", username))
		return nil, apperror.NewUpstream("No Github profile found", "github listing failed", err)
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(repos); err == nil {
			if err := uc.cache.Set(ctx, key, encoded, uc.ttl).Err(); err != nil {
				uc.logger.Warn("Failed to cache github repos", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return repos, nil
}

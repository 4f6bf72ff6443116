package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v55/github"

	"github.com/HPainhas/DevConnector/internal/application/service"
	"github.com/HPainhas/DevConnector/internal/config"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

type githubAdapter struct {
	client *gh.Client
	log    logger.Logger
}

// NewGitHubAdapter builds the outbound GitHub client. The token is injected
// configuration; without one the adapter still works against the public API
// at a lower rate limit.
func NewGitHubAdapter(cfg config.Config, log logger.Logger) service.GitHubService {
	client := gh.NewClient(nil)
	if cfg.GitHub.Token != "" {
		client = client.WithAuthToken(cfg.GitHub.Token)
	}

	log.Info("GitHub adapter initialized")
	return &githubAdapter{client: client, log: log}
}

func (a *githubAdapter) ListRepos(ctx context.Context, username string, limit int) ([]service.Repo, error) {
	opts := &gh.RepositoryListOptions{
		Type:        "owner",
		Sort:        "created",
		Direction:   "asc",
		ListOptions: gh.ListOptions{PerPage: limit},
	}

	repos, _, err := a.client.Repositories.List(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("github repo listing failed for %q: %w", username, err)
	}

	out := make([]service.Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, service.Repo{
			ID:          r.GetID(),
			Name:        r.GetName(),
			FullName:    r.GetFullName(),
			HTMLURL:     r.GetHTMLURL(),
			Description: r.GetDescription(),
			Stargazers:  r.GetStargazersCount(),
			Watchers:    r.GetWatchersCount(),
			Forks:       r.GetForksCount(),
			CreatedAt:   r.GetCreatedAt().Time,
		})
	}
	return out, nil
}

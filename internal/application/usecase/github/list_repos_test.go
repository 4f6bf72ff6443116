package github_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/HPainhas/DevConnector/internal/application/service"
	githubUC "github.com/HPainhas/DevConnector/internal/application/usecase/github"
	"github.com/HPainhas/DevConnector/pkg/apperror"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

// MockGitHubService is a mock implementation of service.GitHubService.
type MockGitHubService struct {
	mock.Mock
}

func (m *MockGitHubService) ListRepos(ctx context.Context, username string, limit int) ([]service.Repo, error) {
	args := m.Called(ctx, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Repo), args.Error(1)
}

func TestListRepos_Passthrough(t *testing.T) {
	gh := new(MockGitHubService)
	uc := githubUC.NewListReposUseCase(gh, nil, time.Minute, logger.NewNop())

	expected := []service.Repo{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
	}
	gh.On("ListRepos", mock.Anything, "someone", githubUC.RepoLimit).Return(expected, nil).Once()

	repos, err := uc.Execute(context.Background(), "someone")

	assert.NoError(t, err)
	assert.Equal(t, expected, repos)
	gh.AssertExpectations(t)
}

func TestListRepos_UpstreamFailureIsGeneric(t *testing.T) {
	gh := new(MockGitHubService)
	uc := githubUC.NewListReposUseCase(gh, nil, time.Minute, logger.NewNop())

	gh.On("ListRepos", mock.Anything, "ghost", githubUC.RepoLimit).
		Return(nil, errors.New("403 rate limited")).Once()

	_, err := uc.Execute(context.Background(), "ghost")

	assert.True(t, errors.Is(err, apperror.ErrUpstream))

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No Github profile found", appErr.Message)
	// upstream detail never reaches the message shown to clients
	assert.NotContains(t, appErr.Message, "rate limited")
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "github:repos:octocat", githubUC.CacheKey("octocat"))
}

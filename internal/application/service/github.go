package service

import (
	"context"
	"time"
)

// Repo is the repository summary passed through to clients.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description,omitempty"`
	Stargazers  int       `json:"stargazers_count"`
	Watchers    int       `json:"watchers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// GitHubService lists a user's public repositories, oldest first.
type GitHubService interface {
	ListRepos(ctx context.Context, username string, limit int) ([]Repo, error)
}

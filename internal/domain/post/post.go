package post

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Post is owned by the posts collaborator; this service only touches posts
// when cascading an account deletion.
type Post struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type Repository interface {
	// DeleteByOwner removes every post owned by userID and reports how many
	// were removed.
	DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}

package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HPainhas/DevConnector/internal/domain/post"
)

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

func (r *postgresPostRepo) DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts by owner: %w", err)
	}
	return tag.RowsAffected(), nil
}

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

func profileSelect() sq.SelectBuilder {
	return psql.Select(
		"p.user_id", "u.name", "u.avatar",
		"p.company", "p.website", "p.location", "p.status", "p.bio", "p.github_username",
		"p.skills", "p.experience", "p.education", "p.social",
		"p.created_at",
	).
		From("profiles p").
		Join("users u ON u.id = p.user_id")
}

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{User: &profile.Owner{}}
	var skillsBytes, experienceBytes, educationBytes, socialBytes []byte

	err := row.Scan(
		&p.UserID,
		&p.User.Name,
		&p.User.Avatar,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Status,
		&p.Bio,
		&p.GithubUsername,
		&skillsBytes,
		&experienceBytes,
		&educationBytes,
		&socialBytes,
		&p.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile row: %w", err)
	}

	// Unmarshal JSONB
	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal social", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Social = profile.Social{}
	}

	return p, nil
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query, args, err := profileSelect().Where(sq.Eq{"p.user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}
	return r.scanProfile(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresProfileRepo) GetAll(ctx context.Context) ([]*profile.Profile, error) {
	query, args, err := profileSelect().OrderBy("p.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return profiles, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	socialBytes, err := json.Marshal(p.Social)
	if err != nil {
		return fmt.Errorf("failed to marshal social: %w", err)
	}

	// Top-level fields are replaced on conflict; experience and education
	// keep whatever the existing document holds.
	query := `
		INSERT INTO profiles (user_id, company, website, location, status, bio, github_username,
			skills, experience, education, social, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '[]', '[]', $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social
	`
	_, err = r.db.Exec(ctx, query,
		p.UserID, p.Company, p.Website, p.Location, p.Status, p.Bio, p.GithubUsername,
		skillsBytes, socialBytes, p.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	experienceBytes, err := json.Marshal(p.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}
	socialBytes, err := json.Marshal(p.Social)
	if err != nil {
		return fmt.Errorf("failed to marshal social: %w", err)
	}

	query := `
		UPDATE profiles SET
			company = $2,
			website = $3,
			location = $4,
			status = $5,
			bio = $6,
			github_username = $7,
			skills = $8,
			experience = $9,
			education = $10,
			social = $11
		WHERE user_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		p.UserID, p.Company, p.Website, p.Location, p.Status, p.Bio, p.GithubUsername,
		skillsBytes, experienceBytes, educationBytes, socialBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func (r *postgresProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

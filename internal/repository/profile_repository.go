package repository

import (
	"context"
	"database/sql"
	"errors"

	"swipehire/internal/database"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (profile.CandidateProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.CandidateProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, display_name, skills, years_experience, work_values, work_style, location, created_at, updated_at`

func (r *PostgresProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (profile.CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE id = $1`,
		id,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (profile.CandidateProfile, error) {
	var p profile.CandidateProfile
	var workStyle string
	err := row.Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Skills, &p.YearsExperience,
		&p.Values, &workStyle, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.CandidateProfile{}, ErrNotFound
		}
		return profile.CandidateProfile{}, err
	}
	if ws, ok := matching.ParseWorkStyle(workStyle); ok {
		p.WorkStyle = ws
	}
	return p, nil
}

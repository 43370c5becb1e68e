package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"swipehire/internal/database"
	"swipehire/internal/domain/swipe"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MatchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (swipe.Match, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]swipe.Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (swipe.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, status, score, created_at FROM matches WHERE id = $1`,
		id,
	)

	m, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return swipe.Match{}, ErrNotFound
		}
		return swipe.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]swipe.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, job_id, status, score, created_at
		 FROM matches
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		candidateID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swipe.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatch(row scanner) (swipe.Match, error) {
	var m swipe.Match
	var status string
	var scoreJSON []byte
	if err := row.Scan(&m.ID, &m.CandidateID, &m.JobID, &status, &scoreJSON, &m.CreatedAt); err != nil {
		return swipe.Match{}, err
	}
	m.Status = swipe.MatchStatus(status)
	if len(scoreJSON) > 0 {
		if err := json.Unmarshal(scoreJSON, &m.Score); err != nil {
			return swipe.Match{}, err
		}
	}
	return m, nil
}

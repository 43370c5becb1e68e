package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"swipehire/internal/database"
	"swipehire/internal/domain/swipe"

	"github.com/google/uuid"
)

type SwipeRepository interface {
	// Create appends a single swipe record. Used for left swipes.
	Create(ctx context.Context, s swipe.Swipe) (swipe.Swipe, error)
	// CreateWithMatch records a right swipe as one transaction: the match
	// row, the atomic applications counter bump, and the swipe row commit
	// together or not at all.
	CreateWithMatch(ctx context.Context, s swipe.Swipe, m swipe.Match) (swipe.Swipe, swipe.Match, error)
	// ListTargetIDsByActor returns every target the actor has already
	// swiped on, for feed exclusion.
	ListTargetIDsByActor(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresSwipeRepository struct {
	db database.DB
}

func NewPostgresSwipeRepository(db database.DB) *PostgresSwipeRepository {
	return &PostgresSwipeRepository{db: db}
}

func (r *PostgresSwipeRepository) Create(ctx context.Context, s swipe.Swipe) (swipe.Swipe, error) {
	s = fillSwipeDefaults(s)
	_, err := r.db.Exec(ctx,
		`INSERT INTO swipes (id, actor_id, target_id, direction, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.ActorID, s.TargetID, string(s.Direction), s.CreatedAt,
	)
	if err != nil {
		return swipe.Swipe{}, fmt.Errorf("insert swipe: %w", err)
	}
	return s, nil
}

func (r *PostgresSwipeRepository) CreateWithMatch(ctx context.Context, s swipe.Swipe, m swipe.Match) (swipe.Swipe, swipe.Match, error) {
	s = fillSwipeDefaults(s)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = swipe.MatchStatusPending
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.CreatedAt
	}

	scoreJSON, err := json.Marshal(m.Score)
	if err != nil {
		return swipe.Swipe{}, swipe.Match{}, fmt.Errorf("encode match score: %w", err)
	}

	err = database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO matches (id, candidate_id, job_id, status, score, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			m.ID, m.CandidateID, m.JobID, string(m.Status), scoreJSON, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}

		// Atomic increment; a read-modify-write here would lose updates
		// under concurrent right swipes on the same listing.
		affected, err := tx.Exec(ctx,
			`UPDATE job_listings SET applications_count = applications_count + 1, updated_at = NOW() WHERE id = $1`,
			m.JobID,
		)
		if err != nil {
			return fmt.Errorf("increment applications: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO swipes (id, actor_id, target_id, direction, created_at)
			 VALUES ($1,$2,$3,$4,$5)`,
			s.ID, s.ActorID, s.TargetID, string(s.Direction), s.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert swipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return swipe.Swipe{}, swipe.Match{}, err
	}
	return s, m, nil
}

func (r *PostgresSwipeRepository) ListTargetIDsByActor(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT target_id FROM swipes WHERE actor_id = $1`,
		actorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func fillSwipeDefaults(s swipe.Swipe) swipe.Swipe {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return s
}

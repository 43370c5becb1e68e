package repository

import (
	"context"

	"swipehire/internal/database"
)

// RelatedSkillRepository loads the skill adjacency table. The engine falls
// back to its built-in table when the store has no rows.
type RelatedSkillRepository interface {
	LoadAll(ctx context.Context) (map[string][]string, error)
}

type PostgresRelatedSkillRepository struct {
	db database.DB
}

func NewPostgresRelatedSkillRepository(db database.DB) *PostgresRelatedSkillRepository {
	return &PostgresRelatedSkillRepository{db: db}
}

func (r *PostgresRelatedSkillRepository) LoadAll(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.Query(ctx, `SELECT skill, related FROM related_skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var skill string
		var related []string
		if err := rows.Scan(&skill, &related); err != nil {
			return nil, err
		}
		out[skill] = related
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"swipehire/internal/database"
	"swipehire/internal/domain/job"
	"swipehire/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Listing, error)
	// ListActive returns active listings excluding the given ids, in a
	// deterministic recency order.
	ListActive(ctx context.Context, limit int, exclude []uuid.UUID) ([]job.Listing, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const listingColumns = `id, employer_id, title, company, required_skills, required_experience, company_values, work_style, location, applications_count, active, created_at, updated_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE id = $1`,
		id,
	)
	l, err := scanListingRow(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, ErrNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit int, exclude []uuid.UUID) ([]job.Listing, error) {
	if limit <= 0 {
		limit = 100
	}
	if exclude == nil {
		exclude = []uuid.UUID{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM job_listings
		 WHERE active AND NOT (id = ANY($1))
		 ORDER BY created_at DESC, id
		 LIMIT $2`,
		exclude, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListingRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListingRow(row scanner) (job.Listing, error) {
	var l job.Listing
	var workStyle string
	err := row.Scan(
		&l.ID, &l.EmployerID, &l.Title, &l.Company, &l.RequiredSkills,
		&l.RequiredExperience, &l.CompanyValues, &workStyle, &l.Location,
		&l.ApplicationsCount, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return job.Listing{}, err
	}
	if ws, ok := matching.ParseWorkStyle(workStyle); ok {
		l.WorkStyle = ws
	}
	return l, nil
}

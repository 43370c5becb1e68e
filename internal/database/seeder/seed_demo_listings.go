package seeder

import (
	"context"
	"fmt"

	"swipehire/internal/database"
)

// DemoListingsSeeder inserts a handful of active job listings so a fresh
// install has a feed to recommend from. Listings are keyed by title+company
// to keep the seeder idempotent.
type DemoListingsSeeder struct{}

func (DemoListingsSeeder) Name() string { return "demo_listings" }

func (DemoListingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_listings",
		"id", "employer_id", "title", "company", "required_skills", "required_experience",
		"company_values", "work_style", "location", "applications_count", "active",
		"created_at", "updated_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title      string
		Company    string
		Skills     []string
		Experience int
		Values     []string
		WorkStyle  string
		Location   string
	}{
		{
			Title: "Backend Engineer", Company: "Northwind Labs",
			Skills: []string{"go", "postgresql", "docker"}, Experience: 3,
			Values: []string{"ownership", "craftsmanship"}, WorkStyle: "remote", Location: "Remote",
		},
		{
			Title: "Frontend Engineer", Company: "Brightline",
			Skills: []string{"react", "typescript"}, Experience: 2,
			Values: []string{"collaboration", "growth"}, WorkStyle: "hybrid", Location: "Jakarta",
		},
		{
			Title: "Platform Engineer", Company: "Cloudbase",
			Skills: []string{"kubernetes", "aws", "go"}, Experience: 4,
			Values: []string{"reliability", "ownership"}, WorkStyle: "remote", Location: "Remote",
		},
		{
			Title: "Data Engineer", Company: "Signalworks",
			Skills: []string{"python", "postgresql"}, Experience: 2,
			Values: []string{"curiosity", "impact"}, WorkStyle: "onsite", Location: "Bandung",
		},
	}

	for _, it := range items {
		exists := 0
		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(1) FROM job_listings WHERE title = $1 AND company = $2`,
			it.Title, it.Company,
		).Scan(&exists); err != nil {
			return err
		}
		if exists > 0 {
			continue
		}

		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_listings
			   (id, employer_id, title, company, required_skills, required_experience,
			    company_values, work_style, location, active)
			 VALUES (gen_random_uuid(), gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, TRUE)`,
			it.Title, it.Company, it.Skills, it.Experience, it.Values, it.WorkStyle, it.Location,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

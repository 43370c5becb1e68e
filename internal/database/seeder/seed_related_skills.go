package seeder

import (
	"context"
	"fmt"

	"swipehire/internal/database"
)

type RelatedSkillsSeeder struct{}

func (RelatedSkillsSeeder) Name() string { return "related_skills" }

func (RelatedSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "related_skills", "skill", "related", "created_at"); err != nil {
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
		Skill   string
		Related []string
	}{
		{Skill: "react", Related: []string{"javascript", "typescript", "frontend", "web development"}},
		{Skill: "vue", Related: []string{"javascript", "typescript", "frontend", "web development"}},
		{Skill: "angular", Related: []string{"javascript", "typescript", "frontend", "web development"}},
		{Skill: "node.js", Related: []string{"javascript", "typescript", "backend"}},
		{Skill: "typescript", Related: []string{"javascript"}},
		{Skill: "javascript", Related: []string{"typescript"}},
		{Skill: "go", Related: []string{"backend", "microservices"}},
		{Skill: "python", Related: []string{"django", "flask", "data science", "machine learning"}},
		{Skill: "java", Related: []string{"spring", "kotlin", "backend"}},
		{Skill: "postgresql", Related: []string{"sql", "mysql", "database"}},
		{Skill: "mysql", Related: []string{"sql", "postgresql", "database"}},
		{Skill: "kubernetes", Related: []string{"docker", "devops", "cloud"}},
		{Skill: "docker", Related: []string{"kubernetes", "devops", "ci/cd"}},
		{Skill: "aws", Related: []string{"cloud", "gcp", "azure", "devops"}},
		{Skill: "gcp", Related: []string{"cloud", "aws", "azure", "devops"}},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO related_skills (skill, related) VALUES ($1, $2) ON CONFLICT (skill) DO NOTHING`,
			it.Skill,
			it.Related,
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

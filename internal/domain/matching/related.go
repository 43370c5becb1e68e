package matching

import "strings"

// RelatedSkills resolves a required skill to the set of skills considered
// adjacent to it. Implementations must be safe for concurrent use.
type RelatedSkills interface {
	Related(skill string) []string
}

type StaticRelatedSkills struct {
	table map[string][]string
}

func NewStaticRelatedSkills(table map[string][]string) *StaticRelatedSkills {
	normalized := make(map[string][]string, len(table))
	for k, vals := range table {
		key := normalizeSkill(k)
		if key == "" {
			continue
		}
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			v = normalizeSkill(v)
			if v == "" {
				continue
			}
			out = append(out, v)
		}
		normalized[key] = out
	}
	return &StaticRelatedSkills{table: normalized}
}

func (s *StaticRelatedSkills) Related(skill string) []string {
	if s == nil {
		return nil
	}
	return s.table[normalizeSkill(skill)]
}

func (s *StaticRelatedSkills) Len() int {
	if s == nil {
		return 0
	}
	return len(s.table)
}

// DefaultRelatedSkills is the built-in adjacency table used when no external
// source is configured.
func DefaultRelatedSkills() *StaticRelatedSkills {
	return NewStaticRelatedSkills(map[string][]string{
		"react":      {"javascript", "typescript", "frontend", "web development"},
		"vue":        {"javascript", "typescript", "frontend", "web development"},
		"angular":    {"javascript", "typescript", "frontend", "web development"},
		"node.js":    {"javascript", "typescript", "backend"},
		"typescript": {"javascript"},
		"javascript": {"typescript"},
		"go":         {"backend", "microservices"},
		"python":     {"django", "flask", "data science", "machine learning"},
		"java":       {"spring", "kotlin", "backend"},
		"postgresql": {"sql", "mysql", "database"},
		"mysql":      {"sql", "postgresql", "database"},
		"kubernetes": {"docker", "devops", "cloud"},
		"docker":     {"kubernetes", "devops", "ci/cd"},
		"aws":        {"cloud", "gcp", "azure", "devops"},
		"gcp":        {"cloud", "aws", "azure", "devops"},
	})
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

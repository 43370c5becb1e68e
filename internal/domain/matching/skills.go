package matching

import "strings"

// Per-requirement award tiers. An exact (case-insensitive) hit counts in
// full, a substring overlap such as "React" vs "React.js" counts as similar,
// and a hit through the related-skill table counts as adjacent knowledge.
const (
	skillWeightExact   = 1.0
	skillWeightSimilar = 0.7
	skillWeightRelated = 0.4
)

type SkillMatchResult struct {
	Score         float64
	MatchedSkills []string
	MissingSkills []string
}

// MatchSkills grades every required skill against the candidate's skill set.
// Requirements keep their input order and original casing in the matched and
// missing lists. An empty requirement list is trivially satisfied.
func MatchSkills(candidateSkills, requiredSkills []string, related RelatedSkills) SkillMatchResult {
	res := SkillMatchResult{
		MatchedSkills: make([]string, 0, len(requiredSkills)),
		MissingSkills: make([]string, 0),
	}
	if len(requiredSkills) == 0 {
		res.Score = 100
		return res
	}

	candSet := make(map[string]struct{}, len(candidateSkills))
	candNorm := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		n := normalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := candSet[n]; ok {
			continue
		}
		candSet[n] = struct{}{}
		candNorm = append(candNorm, n)
	}

	// Blank requirements are skipped entirely: they carry no weight and do
	// not dilute the denominator.
	var sum float64
	graded := 0
	for _, req := range requiredSkills {
		reqNorm := normalizeSkill(req)
		if reqNorm == "" {
			continue
		}
		graded++

		w := 0.0
		if _, ok := candSet[reqNorm]; ok {
			w = skillWeightExact
		} else if anySimilar(reqNorm, candNorm) {
			w = skillWeightSimilar
		} else if related != nil && anyRelated(related.Related(reqNorm), candSet) {
			w = skillWeightRelated
		}

		sum += w
		if w > 0 {
			res.MatchedSkills = append(res.MatchedSkills, req)
		} else {
			res.MissingSkills = append(res.MissingSkills, req)
		}
	}

	if graded == 0 {
		res.Score = 100
		return res
	}
	res.Score = clampScore(sum / float64(graded) * 100)
	return res
}

func anySimilar(req string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, req) || strings.Contains(req, c) {
			return true
		}
	}
	return false
}

func anyRelated(related []string, candSet map[string]struct{}) bool {
	for _, r := range related {
		if _, ok := candSet[r]; ok {
			return true
		}
	}
	return false
}

package matching

const (
	cultureValueWeight = 0.6
	cultureStyleWeight = 0.4
)

var workStyleCompat = map[WorkStyle]map[WorkStyle]float64{
	WorkStyleRemote: {
		WorkStyleRemote: 100,
		WorkStyleHybrid: 80,
		WorkStyleOnsite: 60,
	},
	WorkStyleHybrid: {
		WorkStyleRemote: 80,
		WorkStyleHybrid: 100,
		WorkStyleOnsite: 80,
	},
	WorkStyleOnsite: {
		WorkStyleRemote: 60,
		WorkStyleHybrid: 80,
		WorkStyleOnsite: 100,
	},
}

// MatchCulture blends value-set overlap with work-style compatibility.
func MatchCulture(candidateValues, companyValues []string, candidateStyle, listingStyle WorkStyle) float64 {
	valueMatch := jaccardValues(candidateValues, companyValues)
	styleMatch := workStyleScore(candidateStyle, listingStyle)
	return clampScore(cultureValueWeight*valueMatch + cultureStyleWeight*styleMatch)
}

// jaccardValues is |A ∩ B| / |A ∪ B| on a 0-100 scale. An empty union means
// neither side declared values, which is treated as no mismatch.
func jaccardValues(a, b []string) float64 {
	setA := normalizeValueSet(a)
	setB := normalizeValueSet(b)

	union := make(map[string]struct{}, len(setA)+len(setB))
	for v := range setA {
		union[v] = struct{}{}
	}
	for v := range setB {
		union[v] = struct{}{}
	}
	if len(union) == 0 {
		return 100
	}

	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	return float64(intersection) / float64(len(union)) * 100
}

func workStyleScore(a, b WorkStyle) float64 {
	if row, ok := workStyleCompat[a]; ok {
		if score, ok := row[b]; ok {
			return score
		}
	}
	return 50
}

func normalizeValueSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := normalizeSkill(v)
		if n == "" {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}

package matching

// MatchExperience compares candidate years against the listing's threshold.
// A shortfall costs 20 points per missing year, floored at 0. Meeting the
// threshold scores 100, with a 10-point deduction when the candidate exceeds
// it by more than two years.
func MatchExperience(candidateYears, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 100
	}
	if candidateYears < 0 {
		candidateYears = 0
	}

	if candidateYears >= requiredYears {
		if candidateYears-requiredYears > 2 {
			return 90
		}
		return 100
	}

	score := 100 - 20*float64(requiredYears-candidateYears)
	if score < 0 {
		return 0
	}
	return score
}

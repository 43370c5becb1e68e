package matching

import "strings"

// MatchLocation compares declared locations. A remote listing makes location
// immaterial. A partial hit covers "Jakarta" against "Jakarta, Indonesia".
func MatchLocation(candidateLocation, listingLocation string, listingStyle WorkStyle) float64 {
	if listingStyle == WorkStyleRemote {
		return 100
	}

	cand := normalizeLocation(candidateLocation)
	listing := normalizeLocation(listingLocation)
	if cand == "" || listing == "" {
		return 50
	}
	if cand == listing {
		return 100
	}
	if strings.Contains(cand, listing) || strings.Contains(listing, cand) {
		return 70
	}
	return 30
}

func normalizeLocation(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

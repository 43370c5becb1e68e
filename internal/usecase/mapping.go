package usecase

import (
	"swipehire/internal/domain/job"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/profile"
)

func candidateInput(p profile.CandidateProfile) matching.Candidate {
	return matching.Candidate{
		Skills:          p.Skills,
		YearsExperience: p.YearsExperience,
		Values:          p.Values,
		WorkStyle:       p.WorkStyle,
		Location:        p.Location,
	}
}

func listingInput(l job.Listing) matching.Listing {
	return matching.Listing{
		RequiredSkills:     l.RequiredSkills,
		RequiredExperience: l.RequiredExperience,
		CompanyValues:      l.CompanyValues,
		WorkStyle:          l.WorkStyle,
		Location:           l.Location,
	}
}

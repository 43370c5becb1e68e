package dto

type ProfileInsightsResponse struct {
	Suggestions []string `json:"suggestions"`
}

package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swipehire/internal/config"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/swipe"
	"swipehire/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Action endpoints exposed by the external scoring service.
const (
	actionMatch    = "match"
	actionAnalyze  = "analyze"
	actionFeedback = "feedback"
)

const maxRetryElapsed = 10 * time.Second

// Client talks to the external scoring service. Every failure surfaces as
// usecase.ErrScoringUnavailable so callers can tell an upstream outage from
// a validation problem. Transient failures are retried with capped
// exponential backoff before giving up.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.ScoringConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		c.SetAuthToken(cfg.APIKey)
	}

	return &Client{http: c, logger: logger}
}

type scorePayload struct {
	Candidate candidatePayload `json:"candidate"`
	Job       listingPayload   `json:"job"`
}

type candidatePayload struct {
	Skills          []string `json:"skills"`
	YearsExperience int      `json:"years_experience"`
	Values          []string `json:"values"`
	WorkStyle       string   `json:"work_style"`
	Location        string   `json:"location"`
}

type listingPayload struct {
	RequiredSkills     []string `json:"required_skills"`
	RequiredExperience int      `json:"required_experience"`
	CompanyValues      []string `json:"company_values"`
	WorkStyle          string   `json:"work_style"`
	Location           string   `json:"location"`
}

// Score implements usecase.ScoringBackend via the "match" action.
func (c *Client) Score(ctx context.Context, cand matching.Candidate, l matching.Listing) (matching.Score, error) {
	body, err := c.doAction(ctx, actionMatch, scorePayload{
		Candidate: candidatePayload{
			Skills:          cand.Skills,
			YearsExperience: cand.YearsExperience,
			Values:          cand.Values,
			WorkStyle:       string(cand.WorkStyle),
			Location:        cand.Location,
		},
		Job: listingPayload{
			RequiredSkills:     l.RequiredSkills,
			RequiredExperience: l.RequiredExperience,
			CompanyValues:      l.CompanyValues,
			WorkStyle:          string(l.WorkStyle),
			Location:           l.Location,
		},
	})
	if err != nil {
		return matching.Score{}, err
	}
	return parseScore(body), nil
}

// Analyze returns the service's improvement suggestions for a candidate.
func (c *Client) Analyze(ctx context.Context, cand matching.Candidate) ([]string, error) {
	body, err := c.doAction(ctx, actionAnalyze, candidatePayload{
		Skills:          cand.Skills,
		YearsExperience: cand.YearsExperience,
		Values:          cand.Values,
		WorkStyle:       string(cand.WorkStyle),
		Location:        cand.Location,
	})
	if err != nil {
		return nil, err
	}
	return stringSlice(gjson.GetBytes(body, "suggestions")), nil
}

type feedbackPayload struct {
	MatchID     string  `json:"match_id"`
	CandidateID string  `json:"candidate_id"`
	JobID       string  `json:"job_id"`
	Overall     float64 `json:"overall"`
	Status      string  `json:"status"`
}

// SubmitFeedback reports a committed match back to the scoring service.
func (c *Client) SubmitFeedback(ctx context.Context, m swipe.Match) error {
	_, err := c.doAction(ctx, actionFeedback, feedbackPayload{
		MatchID:     m.ID.String(),
		CandidateID: m.CandidateID.String(),
		JobID:       m.JobID.String(),
		Overall:     m.Score.Overall,
		Status:      string(m.Status),
	})
	return err
}

func (c *Client) doAction(ctx context.Context, action string, payload any) ([]byte, error) {
	var body []byte

	op := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(payload).
			Post("/" + action)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 500 {
			return fmt.Errorf("scoring %s: status=%d", action, resp.StatusCode())
		}
		if resp.IsError() {
			// 4xx responses will not improve on retry.
			return backoff.Permanent(fmt.Errorf("scoring %s: status=%d body=%s",
				action, resp.StatusCode(), truncate(resp.String(), 256)))
		}
		body = resp.Body()
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetryElapsed
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		c.logger.Warn("scoring action failed", zap.String("action", action), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", usecase.ErrScoringUnavailable, err)
	}
	return body, nil
}

func parseScore(body []byte) matching.Score {
	root := gjson.ParseBytes(body)
	s := matching.Score{
		Overall:          clamp(root.Get("overall").Float()),
		SkillMatch:       clamp(root.Get("skill_match").Float()),
		ExperienceMatch:  clamp(root.Get("experience_match").Float()),
		CulturalFit:      clamp(root.Get("cultural_fit").Float()),
		LocationFit:      clamp(root.Get("location_fit").Float()),
		MatchedSkills:    stringSlice(root.Get("matched_skills")),
		MissingSkills:    stringSlice(root.Get("missing_skills")),
		StrengthAreas:    stringSlice(root.Get("strength_areas")),
		ImprovementAreas: stringSlice(root.Get("improvement_areas")),
	}
	return s
}

func stringSlice(v gjson.Result) []string {
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		s := strings.TrimSpace(it.String())
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

package handler

import (
	"errors"

	"swipehire/internal/delivery/http/dto"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/swipe"
	"swipehire/internal/pkg/response"
	"swipehire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func toScoreResponse(s matching.Score) dto.MatchScoreResponse {
	return dto.MatchScoreResponse{
		Overall:          s.Overall,
		SkillMatch:       s.SkillMatch,
		ExperienceMatch:  s.ExperienceMatch,
		CulturalFit:      s.CulturalFit,
		LocationFit:      s.LocationFit,
		MatchedSkills:    s.MatchedSkills,
		MissingSkills:    s.MissingSkills,
		StrengthAreas:    s.StrengthAreas,
		ImprovementAreas: s.ImprovementAreas,
	}
}

func toMatchResponse(m swipe.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		JobID:       m.JobID,
		Status:      string(m.Status),
		Score:       toScoreResponse(m.Score),
		CreatedAt:   m.CreatedAt,
	}
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job listing not found", nil, err)
	case errors.Is(err, usecase.ErrScoringUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, "Scoring service unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

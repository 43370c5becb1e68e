package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrProfileNotFound    = errors.New("candidate profile not found")
	ErrJobNotFound        = errors.New("job listing not found")
	ErrScoringUnavailable = errors.New("upstream scoring unavailable")
	ErrInternal           = errors.New("internal error")
)

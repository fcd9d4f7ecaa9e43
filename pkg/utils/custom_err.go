package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrLocationNotFound      = errors.New("location not found")
	ErrUnparsableResponse    = errors.New("could not parse AI response")
	ErrGenerationUnavailable = errors.New("AI service unavailable")
	ErrShareNotFound         = errors.New("shared itinerary not found")
	ErrShareExpired          = errors.New("shared itinerary has expired")
	ErrDatabaseError         = errors.New("database error")
)

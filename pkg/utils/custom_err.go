package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrTripNotFound       = errors.New("trip not found")

	ErrDestinationNotFound  = errors.New("destination not found")
	ErrWeatherUnavailable   = errors.New("weather forecast unavailable")
	ErrAIGenerationFailed   = errors.New("itinerary generation failed")
	ErrUnparsableAIResponse = errors.New("could not parse itinerary from the AI response")
)

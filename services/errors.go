package services

import "errors"

// Validation and business-rule errors shared across services and the HTTP
// error mapping.
var (
	ErrValidationFailed = errors.New("validation failed")

	// Tournament lifecycle
	ErrTournamentNotOpen        = errors.New("tournament must be open for this operation")
	ErrTournamentNotActive      = errors.New("tournament must be active for this operation")
	ErrInsufficientParticipants = errors.New("at least 2 participants are required")
	ErrUnknownFormat            = errors.New("unknown tournament format")

	// Signup
	ErrDuplicateSignup   = errors.New("player is already signed up for this tournament")
	ErrInvalidSelfRating = errors.New("self rating must be between 1 and 10")

	// Player references
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerArchived = errors.New("player is archived")

	// Game recording
	ErrSamePlayer       = errors.New("winner and loser must be different players")
	ErrDuplicatePlayers = errors.New("all four doubles players must be distinct")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
)

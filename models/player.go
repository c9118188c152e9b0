package models

import "time"

// DefaultEloRating is the rating assigned to every new player.
const DefaultEloRating = 1200

type Player struct {
	ID          int       `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Nickname    *string   `json:"nickname,omitempty" db:"nickname"`
	EloRating   int       `json:"elo_rating" db:"elo_rating"`
	GamesPlayed int       `json:"games_played" db:"games_played"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

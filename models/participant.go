package models

import "time"

// Participant is a player's entry in a single tournament. SelfRating is the
// 1-10 skill the player declared at signup. Seed is assigned once at
// activation; Placement only once the tournament completes.
type Participant struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	PlayerID     int       `json:"player_id" db:"player_id"`
	SelfRating   int       `json:"self_rating" db:"self_rating"`
	Seed         *int      `json:"seed,omitempty" db:"seed"`
	Placement    *int      `json:"placement,omitempty" db:"placement"`
	Eliminated   bool      `json:"eliminated" db:"eliminated"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

package models

import "time"

// GameType mirrors the game_type ENUM in the database.
type GameType string

const (
	GameTypeSingles GameType = "singles"
	GameTypeDoubles GameType = "doubles"
)

// Game is a recorded ladder game. Singles games fill only the first slot of
// each side; doubles fill both. EloChange is the (positive) rating swing the
// winning side received.
type Game struct {
	ID        int       `json:"id" db:"id"`
	Type      GameType  `json:"type" db:"type"`
	Winner1ID int       `json:"winner1_id" db:"winner1_id"`
	Winner2ID *int      `json:"winner2_id,omitempty" db:"winner2_id"`
	Loser1ID  int       `json:"loser1_id" db:"loser1_id"`
	Loser2ID  *int      `json:"loser2_id,omitempty" db:"loser2_id"`
	EloChange int       `json:"elo_change" db:"elo_change"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

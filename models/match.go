package models

import "time"

// BracketTag identifies which match tree a tournament match belongs to.
type BracketTag string

const (
	BracketMain        BracketTag = "main"
	BracketWinners     BracketTag = "winners"
	BracketLosers      BracketTag = "losers"
	BracketGrandFinals BracketTag = "grand_finals"
)

// Match is a single tournament match. Player slots reference participants by
// ID and stay nil until filled by bracket construction or advancement.
// GameID links the match to the ladder game that decided it.
type Match struct {
	ID           int        `json:"id" db:"id"`
	TournamentID int        `json:"tournament_id" db:"tournament_id"`
	Round        int        `json:"round" db:"round"`
	MatchNumber  int        `json:"match_number" db:"match_number"`
	Bracket      BracketTag `json:"bracket" db:"bracket"`
	Player1ID    *int       `json:"player1_id,omitempty" db:"player1_id"`
	Player2ID    *int       `json:"player2_id,omitempty" db:"player2_id"`
	WinnerID     *int       `json:"winner_id,omitempty" db:"winner_id"`
	GameID       *int       `json:"game_id,omitempty" db:"game_id"`
	Completed    bool       `json:"completed" db:"completed"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// IsReady reports whether both player slots are assigned and the match has
// not been completed yet.
func (m *Match) IsReady() bool {
	return m.Player1ID != nil && m.Player2ID != nil && !m.Completed
}

// HasPlayer reports whether the given participant occupies one of the slots.
func (m *Match) HasPlayer(participantID int) bool {
	return (m.Player1ID != nil && *m.Player1ID == participantID) ||
		(m.Player2ID != nil && *m.Player2ID == participantID)
}

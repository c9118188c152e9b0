package models

import "time"

// TournamentStatus mirrors the tournament_status ENUM in the database.
// Transitions are monotonic: open -> active -> completed.
type TournamentStatus string

const (
	TournamentStatusOpen      TournamentStatus = "open"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
)

// TournamentFormat mirrors the tournament_format ENUM in the database.
type TournamentFormat string

const (
	FormatSingleElimination TournamentFormat = "single_elim"
	FormatDoubleElimination TournamentFormat = "double_elim"
	FormatRoundRobin        TournamentFormat = "round_robin"
)

type Tournament struct {
	ID          int              `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description,omitempty" db:"description"`
	Format      TournamentFormat `json:"format" db:"format"`
	Status      TournamentStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`

	// Optional related entities, populated by services (not mapped directly).
	Participants []Participant `json:"participants,omitempty" db:"-"`
	Matches      []Match       `json:"matches,omitempty" db:"-"`
}

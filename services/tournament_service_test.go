package services

import (
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	activePlayer := &models.Player{ID: 1, IsActive: true}
	archivedPlayer := &models.Player{ID: 2, IsActive: false}
	openTournament := &models.Tournament{ID: 1, Status: models.TournamentStatusOpen}
	activeTournament := &models.Tournament{ID: 2, Status: models.TournamentStatusActive}
	completedTournament := &models.Tournament{ID: 3, Status: models.TournamentStatusCompleted}

	tests := []struct {
		name       string
		tournament *models.Tournament
		player     *models.Player
		selfRating int
		wantErr    error
	}{
		{name: "valid signup", tournament: openTournament, player: activePlayer, selfRating: 5},
		{name: "rating at lower bound", tournament: openTournament, player: activePlayer, selfRating: 1},
		{name: "rating at upper bound", tournament: openTournament, player: activePlayer, selfRating: 10},
		{name: "tournament active", tournament: activeTournament, player: activePlayer, selfRating: 5, wantErr: ErrTournamentNotOpen},
		{name: "tournament completed", tournament: completedTournament, player: activePlayer, selfRating: 5, wantErr: ErrTournamentNotOpen},
		{name: "rating too low", tournament: openTournament, player: activePlayer, selfRating: 0, wantErr: ErrInvalidSelfRating},
		{name: "rating too high", tournament: openTournament, player: activePlayer, selfRating: 11, wantErr: ErrInvalidSelfRating},
		{name: "archived player", tournament: openTournament, player: archivedPlayer, selfRating: 5, wantErr: ErrPlayerArchived},
		{name: "closed tournament reported before bad rating", tournament: activeTournament, player: archivedPlayer, selfRating: 0, wantErr: ErrTournamentNotOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSignup(tt.tournament, tt.player, tt.selfRating)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, validFormat(models.FormatSingleElimination))
	assert.True(t, validFormat(models.FormatDoubleElimination))
	assert.True(t, validFormat(models.FormatRoundRobin))
	assert.False(t, validFormat(models.TournamentFormat("swiss")))
	assert.False(t, validFormat(models.TournamentFormat("")))
}

package elo

import (
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1200, 1200), 1e-9)
	assert.InDelta(t, 0.909, ExpectedScore(1400, 1000), 0.001)

	// Expectations for the two sides of a game always sum to 1.
	assert.InDelta(t, 1.0, ExpectedScore(1337, 1105)+ExpectedScore(1105, 1337), 1e-9)
}

func TestRatingDelta(t *testing.T) {
	tests := []struct {
		name         string
		winnerRating int
		loserRating  int
		wantWinner   int
		wantLoser    int
	}{
		{name: "equal ratings", winnerRating: 1200, loserRating: 1200, wantWinner: 16, wantLoser: -16},
		{name: "heavy favorite wins", winnerRating: 1400, loserRating: 1000, wantWinner: 3, wantLoser: -3},
		{name: "underdog wins", winnerRating: 1000, loserRating: 1400, wantWinner: 29, wantLoser: -29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winnerDelta, loserDelta := RatingDelta(tt.winnerRating, tt.loserRating, DefaultKFactor)
			assert.Equal(t, tt.wantWinner, winnerDelta)
			assert.Equal(t, tt.wantLoser, loserDelta)
		})
	}
}

func TestApplySinglesResult(t *testing.T) {
	winner := &models.Player{ID: 1, EloRating: 1200}
	loser := &models.Player{ID: 2, EloRating: 1200}

	change := ApplySinglesResult(winner, loser, DefaultKFactor)

	assert.Equal(t, 16, change)
	assert.Equal(t, 1216, winner.EloRating)
	assert.Equal(t, 1184, loser.EloRating)
}

func TestTeamAverage(t *testing.T) {
	assert.Equal(t, 1250, TeamAverage(1200, 1300))
	// Half ratings round away from zero.
	assert.Equal(t, 1201, TeamAverage(1200, 1201))
}

func TestApplyDoublesResult(t *testing.T) {
	t.Run("rejects malformed teams", func(t *testing.T) {
		pair := []*models.Player{{EloRating: 1200}, {EloRating: 1200}}
		solo := []*models.Player{{EloRating: 1200}}

		_, err := ApplyDoublesResult(solo, pair, 1, DefaultKFactor)
		assert.ErrorIs(t, err, ErrInvalidTeamSize)

		_, err = ApplyDoublesResult(pair, solo, 1, DefaultKFactor)
		assert.ErrorIs(t, err, ErrInvalidTeamSize)
	})

	t.Run("rejects bad team selector", func(t *testing.T) {
		team1 := []*models.Player{{EloRating: 1200}, {EloRating: 1200}}
		team2 := []*models.Player{{EloRating: 1200}, {EloRating: 1200}}

		_, err := ApplyDoublesResult(team1, team2, 0, DefaultKFactor)
		assert.ErrorIs(t, err, ErrInvalidTeamSelector)

		_, err = ApplyDoublesResult(team1, team2, 3, DefaultKFactor)
		assert.ErrorIs(t, err, ErrInvalidTeamSelector)
	})

	t.Run("applies one delta per team member", func(t *testing.T) {
		team1 := []*models.Player{{EloRating: 1200}, {EloRating: 1200}}
		team2 := []*models.Player{{EloRating: 1200}, {EloRating: 1200}}

		change, err := ApplyDoublesResult(team1, team2, 1, DefaultKFactor)
		require.NoError(t, err)

		assert.Equal(t, 16, change)
		assert.Equal(t, 1216, team1[0].EloRating)
		assert.Equal(t, 1216, team1[1].EloRating)
		assert.Equal(t, 1184, team2[0].EloRating)
		assert.Equal(t, 1184, team2[1].EloRating)
	})

	t.Run("delta comes from team averages", func(t *testing.T) {
		// Averages 1400 vs 1000; the weaker team wins as a heavy underdog.
		team1 := []*models.Player{{EloRating: 1300}, {EloRating: 1500}}
		team2 := []*models.Player{{EloRating: 900}, {EloRating: 1100}}

		change, err := ApplyDoublesResult(team1, team2, 2, DefaultKFactor)
		require.NoError(t, err)

		assert.Equal(t, 29, change)
		assert.Equal(t, 929, team2[0].EloRating)
		assert.Equal(t, 1129, team2[1].EloRating)
		assert.Equal(t, 1271, team1[0].EloRating)
		assert.Equal(t, 1471, team1[1].EloRating)
	})
}

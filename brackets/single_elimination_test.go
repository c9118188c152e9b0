package brackets

import (
	"context"
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleEliminationGenerateBracket(t *testing.T) {
	g := NewSingleEliminationGenerator()
	tournament := &models.Tournament{ID: 42, Format: models.FormatSingleElimination}

	t.Run("requires at least two participants", func(t *testing.T) {
		_, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(1),
		})
		assert.ErrorIs(t, err, ErrInsufficientParticipants)
	})

	t.Run("requires seeded participants", func(t *testing.T) {
		_, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: []*models.Participant{{ID: 1}, {ID: 2}},
		})
		assert.ErrorIs(t, err, ErrParticipantsNotSeeded)
	})

	t.Run("five entrants pad to an eight bracket", func(t *testing.T) {
		matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(5),
		})
		require.NoError(t, err)
		require.Len(t, matches, 7)

		byRound := map[int][]*models.Match{}
		for _, m := range matches {
			assert.Equal(t, 42, m.TournamentID)
			assert.Equal(t, models.BracketMain, m.Bracket)
			assert.False(t, m.Completed)
			byRound[m.Round] = append(byRound[m.Round], m)
		}
		assert.Len(t, byRound[1], 4)
		assert.Len(t, byRound[2], 2)
		assert.Len(t, byRound[3], 1)

		// Seed order for 8 is [1 8 4 5 2 7 3 6]; seeds 6-8 have no
		// entrant, so three round-1 matches carry an empty slot (a bye).
		round1 := byRound[1]
		assert.Equal(t, 1, *round1[0].Player1ID)
		assert.Nil(t, round1[0].Player2ID)
		assert.Equal(t, 4, *round1[1].Player1ID)
		assert.Equal(t, 5, *round1[1].Player2ID)
		assert.Equal(t, 2, *round1[2].Player1ID)
		assert.Nil(t, round1[2].Player2ID)
		assert.Equal(t, 3, *round1[3].Player1ID)
		assert.Nil(t, round1[3].Player2ID)

		// Later rounds start empty; advancement fills them.
		for _, m := range append(byRound[2], byRound[3]...) {
			assert.Nil(t, m.Player1ID)
			assert.Nil(t, m.Player2ID)
		}
	})

	t.Run("full bracket has no byes", func(t *testing.T) {
		matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(8),
		})
		require.NoError(t, err)
		require.Len(t, matches, 7)
		for _, m := range matches {
			if m.Round == 1 {
				assert.NotNil(t, m.Player1ID)
				assert.NotNil(t, m.Player2ID)
			}
		}
	})
}

package brackets

import (
	"context"
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleEliminationGenerateBracket(t *testing.T) {
	g := NewDoubleEliminationGenerator()
	tournament := &models.Tournament{ID: 7, Format: models.FormatDoubleElimination}

	t.Run("requires at least two participants", func(t *testing.T) {
		_, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(1),
		})
		assert.ErrorIs(t, err, ErrInsufficientParticipants)
	})

	t.Run("eight entrants", func(t *testing.T) {
		matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(8),
		})
		require.NoError(t, err)

		byBracket := map[models.BracketTag][]*models.Match{}
		for _, m := range matches {
			byBracket[m.Bracket] = append(byBracket[m.Bracket], m)
		}

		// Winners bracket is a plain 8-entrant elimination tree.
		assert.Len(t, byBracket[models.BracketWinners], 7)

		// Losers rounds span 2*rounds-1 = 5 rounds.
		losersRounds := map[int]int{}
		for _, m := range byBracket[models.BracketLosers] {
			losersRounds[m.Round]++
			assert.Nil(t, m.Player1ID)
			assert.Nil(t, m.Player2ID)
		}
		assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 1, 4: 1, 5: 1}, losersRounds)

		require.Len(t, byBracket[models.BracketGrandFinals], 1)
		gf := byBracket[models.BracketGrandFinals][0]
		assert.Equal(t, 1, gf.Round)
		assert.Equal(t, 1, gf.MatchNumber)
		assert.Nil(t, gf.Player1ID)
		assert.Nil(t, gf.Player2ID)
	})

	t.Run("always exactly one grand finals", func(t *testing.T) {
		for _, n := range []int{2, 3, 4, 8, 16} {
			matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
				Tournament:   tournament,
				Participants: seededField(n),
			})
			require.NoError(t, err)

			finals := 0
			for _, m := range matches {
				if m.Bracket == models.BracketGrandFinals {
					finals++
				}
			}
			assert.Equal(t, 1, finals, "n=%d", n)
		}
	})
}

func TestLosersRoundSize(t *testing.T) {
	// bracketSize 8: round 1 holds half the round-1 losers, later rounds
	// shrink but never empty.
	assert.Equal(t, 2, losersRoundSize(8, 1))
	assert.Equal(t, 1, losersRoundSize(8, 2))
	assert.Equal(t, 1, losersRoundSize(8, 5))

	assert.Equal(t, 4, losersRoundSize(16, 1))
	assert.Equal(t, 2, losersRoundSize(16, 2))
	assert.Equal(t, 2, losersRoundSize(16, 3))
	assert.Equal(t, 1, losersRoundSize(16, 4))
}

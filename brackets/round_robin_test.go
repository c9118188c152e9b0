package brackets

import (
	"context"
	"fmt"
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinGenerateBracket(t *testing.T) {
	g := NewRoundRobinGenerator()
	tournament := &models.Tournament{ID: 3, Format: models.FormatRoundRobin}

	t.Run("requires at least two participants", func(t *testing.T) {
		_, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(1),
		})
		assert.ErrorIs(t, err, ErrInsufficientParticipants)
	})

	t.Run("five entrants play every pair once", func(t *testing.T) {
		matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(5),
		})
		require.NoError(t, err)
		require.Len(t, matches, 10)

		pairs := map[string]bool{}
		for i, m := range matches {
			assert.Equal(t, 1, m.Round)
			assert.Equal(t, i+1, m.MatchNumber)
			assert.Equal(t, models.BracketMain, m.Bracket)
			require.NotNil(t, m.Player1ID)
			require.NotNil(t, m.Player2ID)
			assert.NotEqual(t, *m.Player1ID, *m.Player2ID)

			lo, hi := *m.Player1ID, *m.Player2ID
			if lo > hi {
				lo, hi = hi, lo
			}
			key := fmt.Sprintf("%d-%d", lo, hi)
			assert.False(t, pairs[key], "pair %s repeated", key)
			pairs[key] = true
		}
		assert.Len(t, pairs, 10)
	})

	t.Run("two entrants is a single match", func(t *testing.T) {
		matches, err := g.GenerateBracket(context.Background(), GenerateBracketParams{
			Tournament:   tournament,
			Participants: seededField(2),
		})
		require.NoError(t, err)
		require.Len(t, matches, 1)
	})
}

package brackets

import (
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {8, 8}, {9, 16}, {17, 32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPowerOfTwo(tt.n), "NextPowerOfTwo(%d)", tt.n)
	}
}

func TestStandardSeedOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2}, StandardSeedOrder(2))
	assert.Equal(t, []int{1, 4, 2, 3}, StandardSeedOrder(4))
	assert.Equal(t, []int{1, 8, 4, 5, 2, 7, 3, 6}, StandardSeedOrder(8))

	order16 := StandardSeedOrder(16)
	assert.Len(t, order16, 16)
	assert.Equal(t, []int{1, 16, 8, 9}, order16[:4])

	// Every pairing sums to bracketSize+1, the defining property of the
	// layout: seed s always opens against its complement.
	for i := 0; i < len(order16); i += 2 {
		assert.Equal(t, 17, order16[i]+order16[i+1])
	}
}

func TestNewGenerator(t *testing.T) {
	for _, format := range []models.TournamentFormat{
		models.FormatSingleElimination,
		models.FormatDoubleElimination,
		models.FormatRoundRobin,
	} {
		g, err := NewGenerator(format)
		assert.NoError(t, err)
		assert.NotNil(t, g)
	}

	_, err := NewGenerator(models.TournamentFormat("swiss"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// seededField builds n participants with IDs and seeds 1..n, the shape
// generators receive from the seeding step.
func seededField(n int) []*models.Participant {
	participants := make([]*models.Participant, n)
	for i := 0; i < n; i++ {
		seed := i + 1
		participants[i] = &models.Participant{ID: i + 1, Seed: &seed}
	}
	return participants
}

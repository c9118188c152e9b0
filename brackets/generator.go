package brackets

import (
	"context"
	"errors"

	"github.com/cueclub/tournament-system/models"
)

var (
	ErrInsufficientParticipants = errors.New("not enough participants to generate a bracket (minimum 2)")
	ErrUnknownFormat            = errors.New("unknown tournament format")
	ErrParticipantsNotSeeded    = errors.New("participants must be seeded before bracket generation")
)

// GenerateBracketParams carries the seeded entrants a generator pairs up.
// Participants must arrive in seed order with Seed assigned.
type GenerateBracketParams struct {
	Tournament   *models.Tournament
	Participants []*models.Participant
}

// BracketGenerator builds the initial match graph for one tournament format.
// Generators only construct matches; they never persist anything.
type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*models.Match, error)

	GetName() string
}

// NewGenerator returns the generator for the given format.
func NewGenerator(format models.TournamentFormat) (BracketGenerator, error) {
	switch format {
	case models.FormatSingleElimination:
		return NewSingleEliminationGenerator(), nil
	case models.FormatDoubleElimination:
		return NewDoubleEliminationGenerator(), nil
	case models.FormatRoundRobin:
		return NewRoundRobinGenerator(), nil
	default:
		return nil, ErrUnknownFormat
	}
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// StandardSeedOrder generates the canonical bracket ordering in which the
// top seed meets the bottom seed: size 8 yields [1 8 4 5 2 7 3 6].
// Starting from [1 2], each pass doubles the bracket size and interleaves
// every seed s with its complement size+1-s. bracketSize must be a power of
// two >= 2.
func StandardSeedOrder(bracketSize int) []int {
	seeds := []int{1, 2}
	for size := 2; size < bracketSize; {
		size *= 2
		next := make([]int, 0, len(seeds)*2)
		for _, s := range seeds {
			next = append(next, s, size+1-s)
		}
		seeds = next
	}
	return seeds
}

// numRounds returns log2(bracketSize) for a power-of-two bracket.
func numRounds(bracketSize int) int {
	rounds := 0
	for size := 1; size < bracketSize; size <<= 1 {
		rounds++
	}
	return rounds
}

// participantsBySeed indexes seeded participants by their assigned seed.
func participantsBySeed(participants []*models.Participant) (map[int]*models.Participant, error) {
	bySeed := make(map[int]*models.Participant, len(participants))
	for _, p := range participants {
		if p.Seed == nil {
			return nil, ErrParticipantsNotSeeded
		}
		bySeed[*p.Seed] = p
	}
	return bySeed, nil
}

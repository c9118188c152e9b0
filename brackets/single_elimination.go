package brackets

import (
	"context"

	"github.com/cueclub/tournament-system/models"
)

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() BracketGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket pairs round 1 by the standard seed order and creates empty
// placeholder matches for every later round. A seed with no real entrant
// (bracket padding for non-power-of-two fields) leaves its slot nil: that is
// a bye, and the slot stays empty until resolved outside the engine.
func (g *SingleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*models.Match, error) {
	if len(params.Participants) < 2 {
		return nil, ErrInsufficientParticipants
	}
	return buildEliminationTree(params.Tournament, params.Participants, models.BracketMain)
}

// buildEliminationTree constructs a full single-elimination match tree under
// the given bracket tag. Shared with the double-elimination generator, whose
// winners bracket is identical apart from the tag.
func buildEliminationTree(t *models.Tournament, participants []*models.Participant, tag models.BracketTag) ([]*models.Match, error) {
	bySeed, err := participantsBySeed(participants)
	if err != nil {
		return nil, err
	}

	bracketSize := NextPowerOfTwo(len(participants))
	rounds := numRounds(bracketSize)
	order := StandardSeedOrder(bracketSize)

	matches := make([]*models.Match, 0, bracketSize-1)

	for i := 0; i < len(order); i += 2 {
		m := &models.Match{
			TournamentID: t.ID,
			Round:        1,
			MatchNumber:  i/2 + 1,
			Bracket:      tag,
		}
		if p, ok := bySeed[order[i]]; ok {
			id := p.ID
			m.Player1ID = &id
		}
		if p, ok := bySeed[order[i+1]]; ok {
			id := p.ID
			m.Player2ID = &id
		}
		matches = append(matches, m)
	}

	// Later rounds start with both slots empty; advancement fills them.
	for round := 2; round <= rounds; round++ {
		matchesInRound := bracketSize >> uint(round)
		for number := 1; number <= matchesInRound; number++ {
			matches = append(matches, &models.Match{
				TournamentID: t.ID,
				Round:        round,
				MatchNumber:  number,
				Bracket:      tag,
			})
		}
	}

	return matches, nil
}

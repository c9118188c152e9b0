package brackets

import (
	"context"

	"github.com/cueclub/tournament-system/models"
)

type DoubleEliminationGenerator struct{}

func NewDoubleEliminationGenerator() BracketGenerator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

// GenerateBracket builds a winners bracket identical to single elimination,
// a losers bracket, and one grand-finals match.
//
// The losers bracket uses a best-effort sizing rule rather than a
// structurally derived layout: round 1 gets bracketSize/4 matches and round
// r > 1 gets max(1, bracketSize/2^(r/2+2)), for 2*rounds-1 rounds. Players
// dropping from the winners bracket are placed by a first-free-slot scan at
// advancement time, so every winners-bracket loser has a landing slot even
// though slots are not pre-linked to source matches.
func (g *DoubleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*models.Match, error) {
	if len(params.Participants) < 2 {
		return nil, ErrInsufficientParticipants
	}

	matches, err := buildEliminationTree(params.Tournament, params.Participants, models.BracketWinners)
	if err != nil {
		return nil, err
	}

	bracketSize := NextPowerOfTwo(len(params.Participants))
	rounds := numRounds(bracketSize)

	for round := 1; round <= 2*rounds-1; round++ {
		matchesInRound := losersRoundSize(bracketSize, round)
		for number := 1; number <= matchesInRound; number++ {
			matches = append(matches, &models.Match{
				TournamentID: params.Tournament.ID,
				Round:        round,
				MatchNumber:  number,
				Bracket:      models.BracketLosers,
			})
		}
	}

	matches = append(matches, &models.Match{
		TournamentID: params.Tournament.ID,
		Round:        1,
		MatchNumber:  1,
		Bracket:      models.BracketGrandFinals,
	})

	return matches, nil
}

func losersRoundSize(bracketSize, round int) int {
	if round == 1 {
		return bracketSize / 4
	}
	size := bracketSize / (1 << uint(round/2+2))
	if size < 1 {
		return 1
	}
	return size
}

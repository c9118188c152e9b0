package brackets

import (
	"context"

	"github.com/cueclub/tournament-system/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() BracketGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateBracket creates one match for every pair of participants, in seed
// order. Round robin has no rounds in the elimination sense, so every match
// carries round 1 and match numbers follow pair insertion order.
func (g *RoundRobinGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*models.Match, error) {
	participants := params.Participants
	if len(participants) < 2 {
		return nil, ErrInsufficientParticipants
	}

	matches := make([]*models.Match, 0, len(participants)*(len(participants)-1)/2)
	matchNumber := 1

	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			p1ID := participants[i].ID
			p2ID := participants[j].ID
			matches = append(matches, &models.Match{
				TournamentID: params.Tournament.ID,
				Round:        1,
				MatchNumber:  matchNumber,
				Bracket:      models.BracketMain,
				Player1ID:    &p1ID,
				Player2ID:    &p2ID,
			})
			matchNumber++
		}
	}

	return matches, nil
}

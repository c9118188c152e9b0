// Package elo implements the club's rating system: standard Elo for singles
// and a team-average variant for doubles.
package elo

import (
	"errors"
	"math"

	"github.com/cueclub/tournament-system/models"
)

// DefaultKFactor controls the magnitude of rating swings per game.
const DefaultKFactor = 32

var (
	ErrInvalidTeamSize     = errors.New("doubles team must have exactly 2 players")
	ErrInvalidTeamSelector = errors.New("winning team must be 1 or 2")
)

// ExpectedScore returns the probability in (0, 1) that a player rated a
// beats a player rated b.
func ExpectedScore(a, b int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(b-a)/400.0))
}

// RatingDelta returns the rating change for the winner and the loser of a
// game. The loser's delta is always <= 0. Deltas are rounded half away from
// zero (math.Round).
func RatingDelta(winnerRating, loserRating, kFactor int) (winnerDelta, loserDelta int) {
	expectedWinner := ExpectedScore(winnerRating, loserRating)
	expectedLoser := ExpectedScore(loserRating, winnerRating)

	winnerDelta = int(math.Round(float64(kFactor) * (1 - expectedWinner)))
	loserDelta = int(math.Round(float64(kFactor) * (0 - expectedLoser)))
	return winnerDelta, loserDelta
}

// ApplySinglesResult updates both players' ratings in place and returns the
// winner's delta, which callers record as the game's elo_change.
func ApplySinglesResult(winner, loser *models.Player, kFactor int) int {
	winnerDelta, loserDelta := RatingDelta(winner.EloRating, loser.EloRating, kFactor)
	winner.EloRating += winnerDelta
	loser.EloRating += loserDelta
	return winnerDelta
}

// TeamAverage returns the rounded average rating of a two-player team.
func TeamAverage(r1, r2 int) int {
	return int(math.Round(float64(r1+r2) / 2))
}

// ApplyDoublesResult updates all four players' ratings after a doubles game.
// The delta is computed once from the team-average ratings and applied
// identically to both members of each team. Returns the absolute winner
// delta.
func ApplyDoublesResult(team1, team2 []*models.Player, winningTeam, kFactor int) (int, error) {
	if len(team1) != 2 || len(team2) != 2 {
		return 0, ErrInvalidTeamSize
	}
	if winningTeam != 1 && winningTeam != 2 {
		return 0, ErrInvalidTeamSelector
	}

	team1Avg := TeamAverage(team1[0].EloRating, team1[1].EloRating)
	team2Avg := TeamAverage(team2[0].EloRating, team2[1].EloRating)

	winners, losers := team1, team2
	winnersAvg, losersAvg := team1Avg, team2Avg
	if winningTeam == 2 {
		winners, losers = team2, team1
		winnersAvg, losersAvg = team2Avg, team1Avg
	}

	winnerDelta, loserDelta := RatingDelta(winnersAvg, losersAvg, kFactor)
	winners[0].EloRating += winnerDelta
	winners[1].EloRating += winnerDelta
	losers[0].EloRating += loserDelta
	losers[1].EloRating += loserDelta

	if winnerDelta < 0 {
		winnerDelta = -winnerDelta
	}
	return winnerDelta, nil
}

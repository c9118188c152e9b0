package brackets

import (
	"testing"

	"github.com/cueclub/tournament-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newMatch(id, round, number int, bracket models.BracketTag, p1, p2 *int) *models.Match {
	return &models.Match{
		ID:          id,
		Round:       round,
		MatchNumber: number,
		Bracket:     bracket,
		Player1ID:   p1,
		Player2ID:   p2,
	}
}

func participants(ids ...int) []*models.Participant {
	out := make([]*models.Participant, len(ids))
	for i, id := range ids {
		out[i] = &models.Participant{ID: id}
	}
	return out
}

// fourEntrantSingleElim builds the bracket a four-entrant single-elimination
// tournament starts with: seed 1 vs 4, seed 2 vs 3, and an empty final.
func fourEntrantSingleElim() (*models.Tournament, []*models.Match, []*models.Participant) {
	t := &models.Tournament{ID: 1, Format: models.FormatSingleElimination, Status: models.TournamentStatusActive}
	matches := []*models.Match{
		newMatch(101, 1, 1, models.BracketMain, intPtr(1), intPtr(4)),
		newMatch(102, 1, 2, models.BracketMain, intPtr(2), intPtr(3)),
		newMatch(103, 2, 1, models.BracketMain, nil, nil),
	}
	return t, matches, participants(1, 2, 3, 4)
}

func TestReportResultValidation(t *testing.T) {
	t.Run("unknown match", func(t *testing.T) {
		tournament, matches, field := fourEntrantSingleElim()
		_, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: 999, WinnerID: 1,
		})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("already completed", func(t *testing.T) {
		tournament, matches, field := fourEntrantSingleElim()
		_, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: 101, WinnerID: 1,
		})
		require.NoError(t, err)

		_, err = ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: 101, WinnerID: 4,
		})
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
		// The recorded winner is untouched by the rejected report.
		assert.Equal(t, 1, *matches[0].WinnerID)
	})

	t.Run("not ready", func(t *testing.T) {
		tournament, matches, field := fourEntrantSingleElim()
		_, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: 103, WinnerID: 1,
		})
		assert.ErrorIs(t, err, ErrMatchNotReady)
	})

	t.Run("winner not in match", func(t *testing.T) {
		tournament, matches, field := fourEntrantSingleElim()
		_, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: 101, WinnerID: 2,
		})
		assert.ErrorIs(t, err, ErrInvalidWinner)
		assert.False(t, matches[0].Completed)
		assert.Nil(t, matches[0].WinnerID)
	})
}

func TestSingleEliminationAdvancement(t *testing.T) {
	tournament, matches, field := fourEntrantSingleElim()
	final := matches[2]

	outcome, err := ReportResult(ReportParams{
		Tournament: tournament, Matches: matches, Participants: field,
		MatchID: 101, WinnerID: 1, GameID: intPtr(55),
	})
	require.NoError(t, err)

	assert.True(t, matches[0].Completed)
	assert.Equal(t, 55, *matches[0].GameID)
	assert.False(t, outcome.TournamentCompleted)

	// Odd match number feeds the final's first slot; the loser is out.
	require.NotNil(t, final.Player1ID)
	assert.Equal(t, 1, *final.Player1ID)
	assert.Nil(t, final.Player2ID)
	assert.True(t, field[3].Eliminated)

	outcome, err = ReportResult(ReportParams{
		Tournament: tournament, Matches: matches, Participants: field,
		MatchID: 102, WinnerID: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, final.Player2ID)
	assert.Equal(t, 3, *final.Player2ID)
	assert.True(t, field[1].Eliminated)
	assert.False(t, outcome.TournamentCompleted)

	outcome, err = ReportResult(ReportParams{
		Tournament: tournament, Matches: matches, Participants: field,
		MatchID: 103, WinnerID: 1,
	})
	require.NoError(t, err)

	assert.True(t, outcome.TournamentCompleted)
	assert.Equal(t, models.TournamentStatusCompleted, tournament.Status)
	assert.True(t, field[2].Eliminated)
	require.NotNil(t, field[0].Placement)
	assert.Equal(t, 1, *field[0].Placement)
}

func TestDoubleEliminationAdvancement(t *testing.T) {
	tournament := &models.Tournament{ID: 2, Format: models.FormatDoubleElimination, Status: models.TournamentStatusActive}
	matches := []*models.Match{
		newMatch(201, 1, 1, models.BracketWinners, intPtr(1), intPtr(4)),
		newMatch(202, 1, 2, models.BracketWinners, intPtr(2), intPtr(3)),
		newMatch(203, 2, 1, models.BracketWinners, nil, nil),
		newMatch(204, 1, 1, models.BracketLosers, nil, nil),
		newMatch(205, 2, 1, models.BracketLosers, nil, nil),
		newMatch(206, 3, 1, models.BracketLosers, nil, nil),
		newMatch(207, 1, 1, models.BracketGrandFinals, nil, nil),
	}
	field := participants(1, 2, 3, 4)
	losersR1, losersR2, losersR3 := matches[3], matches[4], matches[5]
	gf := matches[6]

	report := func(matchID, winnerID int) *ReportOutcome {
		outcome, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: matchID, WinnerID: winnerID,
		})
		require.NoError(t, err)
		return outcome
	}

	// Winners round 1: losers drop into the losers bracket, still alive.
	report(201, 1)
	require.NotNil(t, losersR1.Player1ID)
	assert.Equal(t, 4, *losersR1.Player1ID)
	assert.False(t, field[3].Eliminated)

	report(202, 2)
	require.NotNil(t, losersR1.Player2ID)
	assert.Equal(t, 3, *losersR1.Player2ID)
	assert.Equal(t, 1, *matches[2].Player1ID)
	assert.Equal(t, 2, *matches[2].Player2ID)

	// Winners final: winner claims the grand-finals hot seat; the loser
	// skips the full round-1 losers match and lands in round 2.
	report(203, 1)
	require.NotNil(t, gf.Player1ID)
	assert.Equal(t, 1, *gf.Player1ID)
	require.NotNil(t, losersR2.Player1ID)
	assert.Equal(t, 2, *losersR2.Player1ID)
	assert.False(t, field[1].Eliminated)

	// Losing in the losers bracket is terminal.
	report(204, 4)
	assert.True(t, field[2].Eliminated)
	require.NotNil(t, losersR2.Player2ID)
	assert.Equal(t, 4, *losersR2.Player2ID)

	report(205, 4)
	assert.True(t, field[1].Eliminated)
	require.NotNil(t, losersR3.Player1ID)
	assert.Equal(t, 4, *losersR3.Player1ID)
}

func TestLosersBracketWinnerReachesGrandFinals(t *testing.T) {
	tournament := &models.Tournament{ID: 3, Format: models.FormatDoubleElimination, Status: models.TournamentStatusActive}
	losersFinal := newMatch(301, 5, 1, models.BracketLosers, intPtr(2), intPtr(3))
	gf := newMatch(302, 1, 1, models.BracketGrandFinals, intPtr(1), nil)
	matches := []*models.Match{losersFinal, gf}
	field := participants(1, 2, 3)

	outcome, err := ReportResult(ReportParams{
		Tournament: tournament, Matches: matches, Participants: field,
		MatchID: 301, WinnerID: 2,
	})
	require.NoError(t, err)

	require.NotNil(t, gf.Player2ID)
	assert.Equal(t, 2, *gf.Player2ID)
	assert.True(t, field[2].Eliminated)
	assert.False(t, outcome.TournamentCompleted)

	outcome, err = ReportResult(ReportParams{
		Tournament: tournament, Matches: matches, Participants: field,
		MatchID: 302, WinnerID: 2,
	})
	require.NoError(t, err)

	assert.True(t, outcome.TournamentCompleted)
	require.NotNil(t, field[1].Placement)
	assert.Equal(t, 1, *field[1].Placement)
}

func TestRoundRobinPlacements(t *testing.T) {
	newState := func() (*models.Tournament, []*models.Match, []*models.Participant) {
		tournament := &models.Tournament{ID: 4, Format: models.FormatRoundRobin, Status: models.TournamentStatusActive}
		matches := []*models.Match{
			newMatch(401, 1, 1, models.BracketMain, intPtr(1), intPtr(2)),
			newMatch(402, 1, 2, models.BracketMain, intPtr(1), intPtr(3)),
			newMatch(403, 1, 3, models.BracketMain, intPtr(2), intPtr(3)),
		}
		return tournament, matches, participants(1, 2, 3)
	}

	report := func(t *testing.T, tournament *models.Tournament, matches []*models.Match, field []*models.Participant, matchID, winnerID int) *ReportOutcome {
		t.Helper()
		outcome, err := ReportResult(ReportParams{
			Tournament: tournament, Matches: matches, Participants: field,
			MatchID: matchID, WinnerID: winnerID,
		})
		require.NoError(t, err)
		return outcome
	}

	t.Run("ranks by win count", func(t *testing.T) {
		tournament, matches, field := newState()

		outcome := report(t, tournament, matches, field, 401, 1)
		// Round robin never eliminates or advances anyone.
		assert.Empty(t, outcome.UpdatedMatches)
		assert.Empty(t, outcome.UpdatedParticipants)
		assert.False(t, field[1].Eliminated)

		report(t, tournament, matches, field, 402, 1)
		outcome = report(t, tournament, matches, field, 403, 2)

		assert.True(t, outcome.TournamentCompleted)
		assert.Equal(t, models.TournamentStatusCompleted, tournament.Status)
		assert.Equal(t, 1, *field[0].Placement)
		assert.Equal(t, 2, *field[1].Placement)
		assert.Equal(t, 3, *field[2].Placement)
	})

	t.Run("cycle breaks ties by signup order", func(t *testing.T) {
		tournament, matches, field := newState()

		report(t, tournament, matches, field, 401, 1)
		report(t, tournament, matches, field, 403, 2)
		outcome := report(t, tournament, matches, field, 402, 3)

		// One win apiece; earlier signups rank higher.
		assert.True(t, outcome.TournamentCompleted)
		assert.Equal(t, 1, *field[0].Placement)
		assert.Equal(t, 2, *field[1].Placement)
		assert.Equal(t, 3, *field[2].Placement)
	})
}

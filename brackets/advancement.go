package brackets

import (
	"errors"
	"sort"

	"github.com/cueclub/tournament-system/models"
)

var (
	ErrMatchNotFound    = errors.New("match not found in tournament")
	ErrAlreadyCompleted = errors.New("match has already been completed")
	ErrMatchNotReady    = errors.New("both players must be assigned before reporting a result")
	ErrInvalidWinner    = errors.New("winner must be one of the match participants")
)

// ReportParams carries the full loaded state of one tournament plus the
// result being reported. The caller is responsible for loading every match
// and participant of the tournament and for serializing reports per
// tournament; the state machine itself is pure computation over this state.
type ReportParams struct {
	Tournament   *models.Tournament
	Matches      []*models.Match
	Participants []*models.Participant

	MatchID  int
	WinnerID int
	GameID   *int
}

// ReportOutcome lists exactly what a successful report changed, so the
// caller can persist it in one unit of work.
type ReportOutcome struct {
	Match               *models.Match
	UpdatedMatches      []*models.Match
	UpdatedParticipants []*models.Participant
	TournamentCompleted bool
}

// ReportResult validates and applies one match result: it records the
// winner, propagates winner and loser through the bracket according to the
// tournament format, and runs completion detection. All validation happens
// before any mutation, so a failed report leaves the state untouched.
func ReportResult(params ReportParams) (*ReportOutcome, error) {
	match := matchByID(params.Matches, params.MatchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.Completed {
		return nil, ErrAlreadyCompleted
	}
	if match.Player1ID == nil || match.Player2ID == nil {
		return nil, ErrMatchNotReady
	}
	if !match.HasPlayer(params.WinnerID) {
		return nil, ErrInvalidWinner
	}

	winnerID := params.WinnerID
	match.WinnerID = &winnerID
	match.GameID = params.GameID
	match.Completed = true

	loserID := *match.Player1ID
	if loserID == winnerID {
		loserID = *match.Player2ID
	}

	outcome := &ReportOutcome{Match: match}

	switch params.Tournament.Format {
	case models.FormatSingleElimination:
		advanceSingleElimination(params, match, winnerID, loserID, outcome)
	case models.FormatDoubleElimination:
		advanceDoubleElimination(params, match, winnerID, loserID, outcome)
	case models.FormatRoundRobin:
		// All round-robin matches are predetermined; nothing to advance.
	}

	checkCompletion(params, outcome)
	return outcome, nil
}

// advanceSingleElimination eliminates the loser and writes the winner into
// the next round: match m feeds match ceil(m/2), odd match numbers into
// player1 and even into player2. The final has no destination.
func advanceSingleElimination(params ReportParams, match *models.Match, winnerID, loserID int, outcome *ReportOutcome) {
	eliminate(params.Participants, loserID, outcome)

	next := findMatch(params.Matches, models.BracketMain, match.Round+1, (match.MatchNumber+1)/2)
	if next == nil {
		return
	}
	assignBySlotParity(next, match.MatchNumber, winnerID)
	outcome.UpdatedMatches = append(outcome.UpdatedMatches, next)
}

// advanceDoubleElimination moves the winner up its own bracket and drops
// winners-bracket losers into the losers bracket. A player leaving the
// winners bracket is not eliminated; losing in the losers bracket is.
func advanceDoubleElimination(params ReportParams, match *models.Match, winnerID, loserID int, outcome *ReportOutcome) {
	switch match.Bracket {
	case models.BracketWinners:
		next := findMatch(params.Matches, models.BracketWinners, match.Round+1, (match.MatchNumber+1)/2)
		if next != nil {
			assignBySlotParity(next, match.MatchNumber, winnerID)
			outcome.UpdatedMatches = append(outcome.UpdatedMatches, next)
		} else if gf := grandFinals(params.Matches); gf != nil && gf.Player1ID == nil {
			gf.Player1ID = &winnerID
			outcome.UpdatedMatches = append(outcome.UpdatedMatches, gf)
		}

		// The loser drops to the first open slot in the losers bracket.
		if drop := firstFreeLosersSlot(params.Matches); drop != nil {
			assignFirstFreeSlot(drop, loserID)
			outcome.UpdatedMatches = append(outcome.UpdatedMatches, drop)
		}

	case models.BracketLosers:
		next := nextLosersRoundMatch(params.Matches, match.Round+1)
		if next != nil {
			assignFirstFreeSlot(next, winnerID)
			outcome.UpdatedMatches = append(outcome.UpdatedMatches, next)
		} else if gf := grandFinals(params.Matches); gf != nil && gf.Player2ID == nil {
			gf.Player2ID = &winnerID
			outcome.UpdatedMatches = append(outcome.UpdatedMatches, gf)
		}

		eliminate(params.Participants, loserID, outcome)

	case models.BracketGrandFinals:
		// Terminal match; completion detection assigns the placement.
	}
}

// checkCompletion marks the tournament completed and assigns placements once
// no incomplete matches remain.
func checkCompletion(params ReportParams, outcome *ReportOutcome) {
	for _, m := range params.Matches {
		if !m.Completed {
			return
		}
	}

	params.Tournament.Status = models.TournamentStatusCompleted
	outcome.TournamentCompleted = true
	assignPlacements(params, outcome)
}

// assignPlacements ranks participants of a finished tournament. Round robin
// gets a full ranking by win count, ties broken by signup order. Elimination
// formats assign first place only, to the winner of the grand finals
// (double elimination) or of the highest-round main-bracket match.
func assignPlacements(params ReportParams, outcome *ReportOutcome) {
	if params.Tournament.Format == models.FormatRoundRobin {
		standings := make([]*models.Participant, len(params.Participants))
		copy(standings, params.Participants)
		sort.SliceStable(standings, func(i, j int) bool {
			return standings[i].ID < standings[j].ID
		})
		sort.SliceStable(standings, func(i, j int) bool {
			return winCount(params.Matches, standings[i].ID) > winCount(params.Matches, standings[j].ID)
		})
		for i, p := range standings {
			placement := i + 1
			p.Placement = &placement
			outcome.UpdatedParticipants = append(outcome.UpdatedParticipants, p)
		}
		return
	}

	var final *models.Match
	if params.Tournament.Format == models.FormatDoubleElimination {
		final = grandFinals(params.Matches)
	} else {
		for _, m := range params.Matches {
			if m.Bracket != models.BracketMain {
				continue
			}
			if final == nil || m.Round > final.Round {
				final = m
			}
		}
	}
	if final == nil || !final.Completed || final.WinnerID == nil {
		return
	}
	if winner := participantByID(params.Participants, *final.WinnerID); winner != nil {
		placement := 1
		winner.Placement = &placement
		outcome.UpdatedParticipants = append(outcome.UpdatedParticipants, winner)
	}
}

func eliminate(participants []*models.Participant, participantID int, outcome *ReportOutcome) {
	if p := participantByID(participants, participantID); p != nil && !p.Eliminated {
		p.Eliminated = true
		outcome.UpdatedParticipants = append(outcome.UpdatedParticipants, p)
	}
}

// assignBySlotParity places the winner of match number into the slot the
// standard tree layout reserves for it: odd feeds player1, even player2.
func assignBySlotParity(next *models.Match, matchNumber, winnerID int) {
	if matchNumber%2 == 1 {
		next.Player1ID = &winnerID
	} else {
		next.Player2ID = &winnerID
	}
}

func assignFirstFreeSlot(m *models.Match, participantID int) {
	if m.Player1ID == nil {
		m.Player1ID = &participantID
	} else {
		m.Player2ID = &participantID
	}
}

// firstFreeLosersSlot scans incomplete losers-bracket matches in round then
// match-number order and returns the first with an open slot. This is a
// best-effort placement, not a structurally derived destination.
func firstFreeLosersSlot(matches []*models.Match) *models.Match {
	candidates := losersMatches(matches, nil)
	for _, m := range candidates {
		if m.Player1ID == nil || m.Player2ID == nil {
			return m
		}
	}
	return nil
}

// nextLosersRoundMatch returns the first incomplete losers-bracket match of
// the given round, or nil when the losers bracket is exhausted.
func nextLosersRoundMatch(matches []*models.Match, round int) *models.Match {
	candidates := losersMatches(matches, &round)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

func losersMatches(matches []*models.Match, roundFilter *int) []*models.Match {
	filtered := make([]*models.Match, 0)
	for _, m := range matches {
		if m.Bracket != models.BracketLosers || m.Completed {
			continue
		}
		if roundFilter != nil && m.Round != *roundFilter {
			continue
		}
		filtered = append(filtered, m)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Round != filtered[j].Round {
			return filtered[i].Round < filtered[j].Round
		}
		return filtered[i].MatchNumber < filtered[j].MatchNumber
	})
	return filtered
}

func winCount(matches []*models.Match, participantID int) int {
	wins := 0
	for _, m := range matches {
		if m.WinnerID != nil && *m.WinnerID == participantID {
			wins++
		}
	}
	return wins
}

func matchByID(matches []*models.Match, id int) *models.Match {
	for _, m := range matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func findMatch(matches []*models.Match, bracket models.BracketTag, round, number int) *models.Match {
	for _, m := range matches {
		if m.Bracket == bracket && m.Round == round && m.MatchNumber == number {
			return m
		}
	}
	return nil
}

func grandFinals(matches []*models.Match) *models.Match {
	for _, m := range matches {
		if m.Bracket == models.BracketGrandFinals {
			return m
		}
	}
	return nil
}

func participantByID(participants []*models.Participant, id int) *models.Participant {
	for _, p := range participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

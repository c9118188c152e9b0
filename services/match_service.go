package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/cueclub/tournament-system/brackets"
	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/repositories"
)

type MatchService interface {
	// ReportResult records the winner of a tournament match, advances the
	// bracket, and completes the tournament when no matches remain. gameID
	// optionally links the ladder game that decided the match.
	ReportResult(ctx context.Context, matchID, winnerParticipantID int, gameID *int) (*brackets.ReportOutcome, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
}

type matchService struct {
	db              *sql.DB
	matchRepo       repositories.MatchRepository
	tournamentRepo  repositories.TournamentRepository
	participantRepo repositories.ParticipantRepository
	locks           *TournamentLocker
	hub             *brackets.Hub
	logger          *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	participantRepo repositories.ParticipantRepository,
	locks *TournamentLocker,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:              db,
		matchRepo:       matchRepo,
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		locks:           locks,
		hub:             hub,
		logger:          logger,
	}
}

func (s *matchService) ReportResult(ctx context.Context, matchID, winnerParticipantID int, gameID *int) (*brackets.ReportOutcome, error) {
	reported, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	lock := s.locks.get(reported.TournamentID)
	lock.Lock()
	defer lock.Unlock()

	t, err := s.tournamentRepo.FindByID(ctx, reported.TournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	if t.Status != models.TournamentStatusActive {
		return nil, ErrTournamentNotActive
	}

	// Reload the full bracket under the lock; the engine works on a
	// consistent snapshot of every match and participant.
	matches, err := s.matchRepo.ListByTournament(ctx, reported.TournamentID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListByTournament(ctx, reported.TournamentID, false)
	if err != nil {
		return nil, err
	}

	outcome, err := brackets.ReportResult(brackets.ReportParams{
		Tournament:   t,
		Matches:      matches,
		Participants: participants,
		MatchID:      matchID,
		WinnerID:     winnerParticipantID,
		GameID:       gameID,
	})
	if err != nil {
		return nil, err
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.matchRepo.UpdateResult(ctx, tx, outcome.Match.ID, *outcome.Match.WinnerID, outcome.Match.GameID); err != nil {
			return err
		}
		for _, m := range outcome.UpdatedMatches {
			if err := s.matchRepo.UpdatePlayers(ctx, tx, m.ID, m.Player1ID, m.Player2ID); err != nil {
				return err
			}
		}
		for _, p := range outcome.UpdatedParticipants {
			if err := s.participantRepo.UpdateEliminated(ctx, tx, p.ID, p.Eliminated); err != nil {
				return err
			}
			if p.Placement != nil {
				if err := s.participantRepo.UpdatePlacement(ctx, tx, p.ID, *p.Placement); err != nil {
					return err
				}
			}
		}
		if outcome.TournamentCompleted {
			return s.tournamentRepo.UpdateStatus(ctx, tx, t.ID, models.TournamentStatusCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("match result reported",
		slog.Int("tournament_id", t.ID),
		slog.Int("match_id", matchID),
		slog.Int("winner_participant_id", winnerParticipantID),
		slog.Bool("tournament_completed", outcome.TournamentCompleted))

	room := strconv.Itoa(t.ID)
	s.hub.BroadcastToRoom(room, brackets.Message{
		Type:    brackets.MessageMatchReported,
		Payload: outcome.Match,
	})
	if outcome.TournamentCompleted {
		s.hub.BroadcastToRoom(room, brackets.Message{
			Type:    brackets.MessageTournamentCompleted,
			Payload: map[string]interface{}{"tournament_id": t.ID},
		})
	}
	return outcome, nil
}

func (s *matchService) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	return s.matchRepo.ListByTournament(ctx, tournamentID)
}

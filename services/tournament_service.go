package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cueclub/tournament-system/brackets"
	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/repositories"
	"github.com/cueclub/tournament-system/seeding"
	"golang.org/x/sync/errgroup"
)

type TournamentService interface {
	Create(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	Signup(ctx context.Context, tournamentID, playerID, selfRating int) (*models.Participant, error)
	Activate(ctx context.Context, tournamentID int) error
	// GetBracket returns the tournament with its participants (players
	// loaded) and matches.
	GetBracket(ctx context.Context, tournamentID int) (*models.Tournament, error)
}

type tournamentService struct {
	db              *sql.DB
	tournamentRepo  repositories.TournamentRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
	playerRepo      repositories.PlayerRepository
	locks           *TournamentLocker
	hub             *brackets.Hub
	logger          *slog.Logger
}

func NewTournamentService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
	locks *TournamentLocker,
	hub *brackets.Hub,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		db:              db,
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
		playerRepo:      playerRepo,
		locks:           locks,
		hub:             hub,
		logger:          logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, t *models.Tournament) error {
	if t.Name == "" {
		return fmt.Errorf("%w: tournament name is required", ErrValidationFailed)
	}
	if !validFormat(t.Format) {
		return ErrUnknownFormat
	}
	t.Status = models.TournamentStatusOpen
	return s.tournamentRepo.Create(ctx, t)
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *tournamentService) List(ctx context.Context) ([]*models.Tournament, error) {
	return s.tournamentRepo.List(ctx)
}

// Signup registers a player for an open tournament with their self-declared
// 1-10 skill rating.
func (s *tournamentService) Signup(ctx context.Context, tournamentID, playerID, selfRating int) (*models.Participant, error) {
	t, err := s.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if err := validateSignup(t, player, selfRating); err != nil {
		return nil, err
	}

	if _, err := s.participantRepo.FindByTournamentAndPlayer(ctx, tournamentID, playerID); err == nil {
		return nil, ErrDuplicateSignup
	} else if !errors.Is(err, repositories.ErrParticipantNotFound) {
		return nil, err
	}

	participant := &models.Participant{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		SelfRating:   selfRating,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, repositories.ErrParticipantConflict) {
			return nil, ErrDuplicateSignup
		}
		return nil, err
	}
	return participant, nil
}

// validateSignup checks the preconditions for joining a tournament. Kept
// separate from storage access so the rules are testable in isolation.
func validateSignup(t *models.Tournament, player *models.Player, selfRating int) error {
	if t.Status != models.TournamentStatusOpen {
		return ErrTournamentNotOpen
	}
	if selfRating < 1 || selfRating > 10 {
		return ErrInvalidSelfRating
	}
	if !player.IsActive {
		return ErrPlayerArchived
	}
	return nil
}

// Activate seeds the field, builds the bracket for the tournament's format,
// and moves the tournament to active. Seeds, matches, and the status change
// commit in one transaction; on any failure the tournament stays open with
// no matches.
func (s *tournamentService) Activate(ctx context.Context, tournamentID int) error {
	lock := s.locks.get(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	t, err := s.GetByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t.Status != models.TournamentStatusOpen {
		return ErrTournamentNotOpen
	}

	participants, err := s.participantRepo.ListByTournament(ctx, tournamentID, true)
	if err != nil {
		return err
	}
	if len(participants) < 2 {
		return ErrInsufficientParticipants
	}

	seeded := seeding.Seed(participants)

	generator, err := brackets.NewGenerator(t.Format)
	if err != nil {
		if errors.Is(err, brackets.ErrUnknownFormat) {
			return ErrUnknownFormat
		}
		return err
	}

	matches, err := generator.GenerateBracket(ctx, brackets.GenerateBracketParams{
		Tournament:   t,
		Participants: seeded,
	})
	if err != nil {
		if errors.Is(err, brackets.ErrInsufficientParticipants) {
			return ErrInsufficientParticipants
		}
		return err
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, p := range seeded {
			if err := s.participantRepo.UpdateSeed(ctx, tx, p.ID, *p.Seed); err != nil {
				return err
			}
		}
		for _, m := range matches {
			if err := s.matchRepo.Create(ctx, tx, m); err != nil {
				return err
			}
		}
		return s.tournamentRepo.UpdateStatus(ctx, tx, tournamentID, models.TournamentStatusActive)
	})
	if err != nil {
		return err
	}

	s.logger.Info("tournament activated",
		slog.Int("tournament_id", tournamentID),
		slog.String("format", string(t.Format)),
		slog.String("generator", generator.GetName()),
		slog.Int("participants", len(seeded)),
		slog.Int("matches", len(matches)))

	s.hub.BroadcastToRoom(strconv.Itoa(tournamentID), brackets.Message{
		Type:    brackets.MessageBracketUpdated,
		Payload: map[string]interface{}{"status": models.TournamentStatusActive},
	})
	return nil
}

func (s *tournamentService) GetBracket(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	tournament := &models.Tournament{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := s.GetByID(gCtx, tournamentID)
		if err != nil {
			return err
		}
		*tournament = *t
		return nil
	})

	var participants []*models.Participant
	g.Go(func() error {
		var err error
		participants, err = s.participantRepo.ListByTournament(gCtx, tournamentID, true)
		return err
	})

	var matches []*models.Match
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tournament.Participants = make([]models.Participant, len(participants))
	for i, p := range participants {
		tournament.Participants[i] = *p
	}
	tournament.Matches = make([]models.Match, len(matches))
	for i, m := range matches {
		tournament.Matches[i] = *m
	}
	return tournament, nil
}

func validFormat(format models.TournamentFormat) bool {
	switch format {
	case models.FormatSingleElimination, models.FormatDoubleElimination, models.FormatRoundRobin:
		return true
	}
	return false
}

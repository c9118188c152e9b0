package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/cueclub/tournament-system/elo"
	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/repositories"
)

type RatingService interface {
	// RecordSinglesGame creates the game record and applies the rating
	// swing to both players in one transaction.
	RecordSinglesGame(ctx context.Context, winnerID, loserID int) (*models.Game, error)
	// RecordDoublesGame does the same for a 2v2 game; winningTeam selects
	// team1 or team2. All four players must be distinct.
	RecordDoublesGame(ctx context.Context, team1, team2 [2]int, winningTeam int) (*models.Game, error)
}

type ratingService struct {
	db         *sql.DB
	gameRepo   repositories.GameRepository
	playerRepo repositories.PlayerRepository
	kFactor    int
	logger     *slog.Logger
}

func NewRatingService(
	db *sql.DB,
	gameRepo repositories.GameRepository,
	playerRepo repositories.PlayerRepository,
	kFactor int,
	logger *slog.Logger,
) RatingService {
	if kFactor <= 0 {
		kFactor = elo.DefaultKFactor
	}
	return &ratingService{
		db:         db,
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		kFactor:    kFactor,
		logger:     logger,
	}
}

func (s *ratingService) RecordSinglesGame(ctx context.Context, winnerID, loserID int) (*models.Game, error) {
	if winnerID == loserID {
		return nil, ErrSamePlayer
	}

	players, err := s.loadActivePlayers(ctx, []int{winnerID, loserID})
	if err != nil {
		return nil, err
	}
	winner, loser := players[winnerID], players[loserID]

	change := elo.ApplySinglesResult(winner, loser, s.kFactor)
	winner.GamesPlayed++
	loser.GamesPlayed++

	game := &models.Game{
		Type:      models.GameTypeSingles,
		Winner1ID: winnerID,
		Loser1ID:  loserID,
		EloChange: change,
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.gameRepo.Create(ctx, tx, game); err != nil {
			return err
		}
		for _, p := range []*models.Player{winner, loser} {
			if err := s.playerRepo.UpdateRating(ctx, tx, p.ID, p.EloRating, p.GamesPlayed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("singles game recorded",
		slog.Int("game_id", game.ID),
		slog.Int("winner_id", winnerID),
		slog.Int("loser_id", loserID),
		slog.Int("elo_change", change))
	return game, nil
}

func (s *ratingService) RecordDoublesGame(ctx context.Context, team1, team2 [2]int, winningTeam int) (*models.Game, error) {
	ids := []int{team1[0], team1[1], team2[0], team2[1]}
	seen := make(map[int]bool, 4)
	for _, id := range ids {
		if seen[id] {
			return nil, ErrDuplicatePlayers
		}
		seen[id] = true
	}

	players, err := s.loadActivePlayers(ctx, ids)
	if err != nil {
		return nil, err
	}

	t1 := []*models.Player{players[team1[0]], players[team1[1]]}
	t2 := []*models.Player{players[team2[0]], players[team2[1]]}

	change, err := elo.ApplyDoublesResult(t1, t2, winningTeam, s.kFactor)
	if err != nil {
		return nil, err
	}

	winners, losers := t1, t2
	if winningTeam == 2 {
		winners, losers = t2, t1
	}
	for _, p := range players {
		p.GamesPlayed++
	}

	winner2 := winners[1].ID
	loser2 := losers[1].ID
	game := &models.Game{
		Type:      models.GameTypeDoubles,
		Winner1ID: winners[0].ID,
		Winner2ID: &winner2,
		Loser1ID:  losers[0].ID,
		Loser2ID:  &loser2,
		EloChange: change,
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.gameRepo.Create(ctx, tx, game); err != nil {
			return err
		}
		for _, p := range players {
			if err := s.playerRepo.UpdateRating(ctx, tx, p.ID, p.EloRating, p.GamesPlayed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("doubles game recorded",
		slog.Int("game_id", game.ID),
		slog.Int("winning_team", winningTeam),
		slog.Int("elo_change", change))
	return game, nil
}

// loadActivePlayers fetches the given players and rejects the operation if
// any is missing or archived.
func (s *ratingService) loadActivePlayers(ctx context.Context, ids []int) (map[int]*models.Player, error) {
	players, err := s.playerRepo.FindByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	for _, id := range ids {
		p, ok := players[id]
		if !ok {
			return nil, ErrPlayerNotFound
		}
		if !p.IsActive {
			return nil, ErrPlayerArchived
		}
	}
	return players, nil
}

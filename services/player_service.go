package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/repositories"
)

type PlayerService interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	// List returns the ladder, ordered by rating descending.
	List(ctx context.Context, activeOnly bool) ([]*models.Player, error)
	Archive(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) Create(ctx context.Context, player *models.Player) error {
	if player.FirstName == "" || player.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrValidationFailed)
	}
	if player.EloRating == 0 {
		player.EloRating = models.DefaultEloRating
	}
	player.IsActive = true
	return s.playerRepo.Create(ctx, player)
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	p, err := s.playerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *playerService) List(ctx context.Context, activeOnly bool) ([]*models.Player, error) {
	return s.playerRepo.List(ctx, activeOnly)
}

func (s *playerService) Archive(ctx context.Context, id int) error {
	err := s.playerRepo.SetActive(ctx, id, false)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

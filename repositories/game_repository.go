package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cueclub/tournament-system/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	// Create inserts the game row inside the caller's transaction so the
	// game record and the rating updates it caused commit together.
	Create(ctx context.Context, exec SQLExecutor, g *models.Game) error
	FindByID(ctx context.Context, id int) (*models.Game, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Game, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Create(ctx context.Context, exec SQLExecutor, g *models.Game) error {
	query := `
		INSERT INTO games (type, winner1_id, winner2_id, loser1_id, loser2_id, elo_change)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		g.Type,
		g.Winner1ID,
		g.Winner2ID,
		g.Loser1ID,
		g.Loser2ID,
		g.EloChange,
	).Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *postgresGameRepository) FindByID(ctx context.Context, id int) (*models.Game, error) {
	query := `
		SELECT id, type, winner1_id, winner2_id, loser1_id, loser2_id, elo_change, created_at
		FROM games WHERE id = $1`

	g := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID,
		&g.Type,
		&g.Winner1ID,
		&g.Winner2ID,
		&g.Loser1ID,
		&g.Loser2ID,
		&g.EloChange,
		&g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to find game %d: %w", id, err)
	}
	return g, nil
}

func (r *postgresGameRepository) ListRecent(ctx context.Context, limit int) ([]*models.Game, error) {
	query := `
		SELECT id, type, winner1_id, winner2_id, loser1_id, loser2_id, elo_change, created_at
		FROM games ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Type, &g.Winner1ID, &g.Winner2ID, &g.Loser1ID, &g.Loser2ID, &g.EloChange, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}
	return games, nil
}

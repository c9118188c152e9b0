package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cueclub/tournament-system/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerConflict = errors.New("player nickname is already in use")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	FindByID(ctx context.Context, id int) (*models.Player, error)
	FindByIDs(ctx context.Context, ids []int) (map[int]*models.Player, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Player, error)
	UpdateRating(ctx context.Context, exec SQLExecutor, id, eloRating, gamesPlayed int) error
	SetActive(ctx context.Context, id int, active bool) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (first_name, last_name, nickname, elo_rating, games_played, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.FirstName,
		player.LastName,
		player.Nickname,
		player.EloRating,
		player.GamesPlayed,
		player.IsActive,
	).Scan(&player.ID, &player.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) scanPlayer(row *sql.Row, p *models.Player) error {
	return row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Nickname,
		&p.EloRating,
		&p.GamesPlayed,
		&p.IsActive,
		&p.CreatedAt,
	)
}

func (r *postgresPlayerRepository) FindByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, first_name, last_name, nickname, elo_rating, games_played, is_active, created_at
		FROM players WHERE id = $1`

	p := &models.Player{}
	if err := r.scanPlayer(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresPlayerRepository) FindByIDs(ctx context.Context, ids []int) (map[int]*models.Player, error) {
	query := `
		SELECT id, first_name, last_name, nickname, elo_rating, games_played, is_active, created_at
		FROM players WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query players by ids: %w", err)
	}
	defer rows.Close()

	players := make(map[int]*models.Player, len(ids))
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Nickname, &p.EloRating, &p.GamesPlayed, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context, activeOnly bool) ([]*models.Player, error) {
	query := `
		SELECT id, first_name, last_name, nickname, elo_rating, games_played, is_active, created_at
		FROM players`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY elo_rating DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Nickname, &p.EloRating, &p.GamesPlayed, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) UpdateRating(ctx context.Context, exec SQLExecutor, id, eloRating, gamesPlayed int) error {
	query := `UPDATE players SET elo_rating = $1, games_played = $2 WHERE id = $3`
	result, err := exec.ExecContext(ctx, query, eloRating, gamesPlayed, id)
	if err != nil {
		return fmt.Errorf("failed to update rating for player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) SetActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE players SET is_active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update active flag for player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

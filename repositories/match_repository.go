package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cueclub/tournament-system/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, m *models.Match) error
	FindByID(ctx context.Context, id int) (*models.Match, error)
	// ListByTournament returns matches ordered by bracket, round, then match
	// number for a stable bracket layout.
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	UpdatePlayers(ctx context.Context, exec SQLExecutor, id int, player1ID, player2ID *int) error
	UpdateResult(ctx context.Context, exec SQLExecutor, id int, winnerID int, gameID *int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, round, match_number, bracket, player1_id, player2_id, winner_id, game_id, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		m.TournamentID,
		m.Round,
		m.MatchNumber,
		m.Bracket,
		m.Player1ID,
		m.Player2ID,
		m.WinnerID,
		m.GameID,
		m.Completed,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) FindByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, tournament_id, round, match_number, bracket, player1_id, player2_id, winner_id, game_id, completed, created_at
		FROM matches WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.TournamentID,
		&m.Round,
		&m.MatchNumber,
		&m.Bracket,
		&m.Player1ID,
		&m.Player2ID,
		&m.WinnerID,
		&m.GameID,
		&m.Completed,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to find match %d: %w", id, err)
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	query := `
		SELECT id, tournament_id, round, match_number, bracket, player1_id, player2_id, winner_id, game_id, completed, created_at
		FROM matches
		WHERE tournament_id = $1
		ORDER BY bracket ASC, round ASC, match_number ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID,
			&m.TournamentID,
			&m.Round,
			&m.MatchNumber,
			&m.Bracket,
			&m.Player1ID,
			&m.Player2ID,
			&m.WinnerID,
			&m.GameID,
			&m.Completed,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdatePlayers(ctx context.Context, exec SQLExecutor, id int, player1ID, player2ID *int) error {
	query := `UPDATE matches SET player1_id = $1, player2_id = $2 WHERE id = $3`
	result, err := exec.ExecContext(ctx, query, player1ID, player2ID, id)
	if err != nil {
		return fmt.Errorf("failed to update players for match %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id int, winnerID int, gameID *int) error {
	query := `UPDATE matches SET winner_id = $1, game_id = $2, completed = TRUE WHERE id = $3`
	result, err := exec.ExecContext(ctx, query, winnerID, gameID, id)
	if err != nil {
		return fmt.Errorf("failed to update result for match %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

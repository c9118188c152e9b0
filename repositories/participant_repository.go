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
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantConflict = errors.New("player is already signed up for this tournament")
)

type ParticipantRepository interface {
	Create(ctx context.Context, p *models.Participant) error
	FindByID(ctx context.Context, id int) (*models.Participant, error)
	FindByTournamentAndPlayer(ctx context.Context, tournamentID, playerID int) (*models.Participant, error)
	// ListByTournament returns participants in signup order (ascending id),
	// optionally with their Player records loaded.
	ListByTournament(ctx context.Context, tournamentID int, includePlayers bool) ([]*models.Participant, error)
	UpdateSeed(ctx context.Context, exec SQLExecutor, id int, seed int) error
	UpdateEliminated(ctx context.Context, exec SQLExecutor, id int, eliminated bool) error
	UpdatePlacement(ctx context.Context, exec SQLExecutor, id int, placement int) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (tournament_id, player_id, self_rating)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.TournamentID,
		p.PlayerID,
		p.SelfRating,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				return ErrParticipantConflict
			case "23503": // foreign_key_violation
				return fmt.Errorf("participant references missing tournament or player: %w", err)
			}
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *postgresParticipantRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.Participant, error) {
	p := &models.Participant{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.TournamentID,
		&p.PlayerID,
		&p.SelfRating,
		&p.Seed,
		&p.Placement,
		&p.Eliminated,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return p, nil
}

func (r *postgresParticipantRepository) FindByID(ctx context.Context, id int) (*models.Participant, error) {
	query := `
		SELECT id, tournament_id, player_id, self_rating, seed, placement, eliminated, created_at
		FROM participants WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresParticipantRepository) FindByTournamentAndPlayer(ctx context.Context, tournamentID, playerID int) (*models.Participant, error) {
	query := `
		SELECT id, tournament_id, player_id, self_rating, seed, placement, eliminated, created_at
		FROM participants WHERE tournament_id = $1 AND player_id = $2`
	return r.findOne(ctx, query, tournamentID, playerID)
}

func (r *postgresParticipantRepository) ListByTournament(ctx context.Context, tournamentID int, includePlayers bool) ([]*models.Participant, error) {
	query := `
		SELECT p.id, p.tournament_id, p.player_id, p.self_rating, p.seed, p.placement, p.eliminated, p.created_at`
	if includePlayers {
		query += `,
			pl.id, pl.first_name, pl.last_name, pl.nickname, pl.elo_rating, pl.games_played, pl.is_active, pl.created_at`
	}
	query += `
		FROM participants p`
	if includePlayers {
		query += `
		JOIN players pl ON pl.id = p.player_id`
	}
	query += `
		WHERE p.tournament_id = $1
		ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	participants := make([]*models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		scanDest := []interface{}{&p.ID, &p.TournamentID, &p.PlayerID, &p.SelfRating, &p.Seed, &p.Placement, &p.Eliminated, &p.CreatedAt}
		var pl models.Player
		if includePlayers {
			scanDest = append(scanDest, &pl.ID, &pl.FirstName, &pl.LastName, &pl.Nickname, &pl.EloRating, &pl.GamesPlayed, &pl.IsActive, &pl.CreatedAt)
		}
		if err := rows.Scan(scanDest...); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		if includePlayers {
			p.Player = &pl
		}
		participants = append(participants, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) UpdateSeed(ctx context.Context, exec SQLExecutor, id int, seed int) error {
	query := `UPDATE participants SET seed = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, seed, id)
	if err != nil {
		return fmt.Errorf("failed to update seed for participant %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) UpdateEliminated(ctx context.Context, exec SQLExecutor, id int, eliminated bool) error {
	query := `UPDATE participants SET eliminated = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, eliminated, id)
	if err != nil {
		return fmt.Errorf("failed to update eliminated flag for participant %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) UpdatePlacement(ctx context.Context, exec SQLExecutor, id int, placement int) error {
	query := `UPDATE participants SET placement = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, placement, id)
	if err != nil {
		return fmt.Errorf("failed to update placement for participant %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfitModeRepo implements ports.ProfitModeRepository.
type ProfitModeRepo struct {
	pool Pool
}

// NewProfitModeRepo creates a new ProfitModeRepo.
func NewProfitModeRepo(pool Pool) *ProfitModeRepo {
	return &ProfitModeRepo{pool: pool}
}

// Get returns the stored override for a user, defaulting to RANDOM when none
// is stored.
func (r *ProfitModeRepo) Get(ctx context.Context, userID uuid.UUID) (domain.ProfitMode, error) {
	query := `SELECT mode FROM profit_modes WHERE user_id = $1`

	var mode string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&mode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProfitModeRandom, nil
		}
		return "", fmt.Errorf("get profit mode: %w", err)
	}
	return domain.ProfitMode(mode), nil
}

// Set stores or replaces the override for a user.
func (r *ProfitModeRepo) Set(ctx context.Context, userID uuid.UUID, mode domain.ProfitMode) error {
	query := `INSERT INTO profit_modes (user_id, mode, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET mode = $2, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, userID, string(mode))
	if err != nil {
		return fmt.Errorf("set profit mode: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"timed-trading-platform/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PayoutScheduleRepo implements ports.PayoutScheduleRepository.
type PayoutScheduleRepo struct {
	pool Pool
}

// NewPayoutScheduleRepo creates a new PayoutScheduleRepo.
func NewPayoutScheduleRepo(pool Pool) *PayoutScheduleRepo {
	return &PayoutScheduleRepo{pool: pool}
}

// GetBySeconds returns the tier for a duration, or nil when the duration is
// not offered.
func (r *PayoutScheduleRepo) GetBySeconds(ctx context.Context, seconds int) (*domain.PayoutTier, error) {
	query := `SELECT duration_secs, payout_percent FROM payout_schedule WHERE duration_secs = $1`

	tier := &domain.PayoutTier{}
	err := r.pool.QueryRow(ctx, query, seconds).Scan(&tier.Seconds, &tier.Percent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout tier: %w", err)
	}
	return tier, nil
}

// List returns all tiers, shortest duration first.
func (r *PayoutScheduleRepo) List(ctx context.Context) ([]domain.PayoutTier, error) {
	query := `SELECT duration_secs, payout_percent FROM payout_schedule ORDER BY duration_secs ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payout tiers: %w", err)
	}
	defer rows.Close()

	var tiers []domain.PayoutTier
	for rows.Next() {
		tier := domain.PayoutTier{}
		if err := rows.Scan(&tier.Seconds, &tier.Percent); err != nil {
			return nil, fmt.Errorf("scan payout tier: %w", err)
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout tiers: %w", err)
	}
	return tiers, nil
}

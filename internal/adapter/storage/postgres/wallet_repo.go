package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository. Asset holdings are stored as
// a JSONB map keyed by symbol.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	assets, err := json.Marshal(w.Assets)
	if err != nil {
		return fmt.Errorf("marshal assets: %w", err)
	}

	query := `INSERT INTO wallets (user_id, quote_balance, assets, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.pool.Exec(ctx, query,
		w.UserID, w.QuoteBalance, assets, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a wallet without locking.
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT user_id, quote_balance, assets, created_at, updated_at
		FROM wallets WHERE user_id = $1`

	return scanWallet(r.pool.QueryRow(ctx, query, userID), "get wallet")
}

// GetByUserIDForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT user_id, quote_balance, assets, created_at, updated_at
		FROM wallets WHERE user_id = $1 FOR UPDATE`

	return scanWallet(tx.QueryRow(ctx, query, userID), "get wallet for update")
}

// UpdateBalances writes the quote balance and the full asset map within a
// transaction.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, quote decimal.Decimal, assets map[string]decimal.Decimal) error {
	encoded, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("marshal assets: %w", err)
	}

	query := `UPDATE wallets SET quote_balance = $1, assets = $2, updated_at = NOW() WHERE user_id = $3`

	tag, err := tx.Exec(ctx, query, quote, encoded, userID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", userID)
	}
	return nil
}

func scanWallet(row pgx.Row, op string) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var assets []byte
	err := row.Scan(&w.UserID, &w.QuoteBalance, &assets, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(assets) > 0 {
		if err := json.Unmarshal(assets, &w.Assets); err != nil {
			return nil, fmt.Errorf("%s: unmarshal assets: %w", op, err)
		}
	}
	if w.Assets == nil {
		w.Assets = map[string]decimal.Decimal{}
	}
	return w, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerStoreImpl implements ports.LedgerStore. Every wallet mutation in the
// platform runs through here: the wallet row is locked FOR UPDATE, the delta
// is applied against the locked snapshot, and the audit entry is inserted in
// the same transaction. Deltas for different users never contend; deltas for
// the same user are serialized by the row lock.
type LedgerStoreImpl struct {
	walletRepo ports.WalletRepository
	entryRepo  ports.LedgerEntryRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerStore creates a new LedgerStoreImpl.
func NewLedgerStore(
	walletRepo ports.WalletRepository,
	entryRepo ports.LedgerEntryRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerStoreImpl {
	return &LedgerStoreImpl{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		transactor: transactor,
		log:        log,
	}
}

func cloneAssets(src map[string]decimal.Decimal) map[string]decimal.Decimal {
	dst := make(map[string]decimal.Decimal, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Apply runs the delta in its own transaction.
func (s *LedgerStoreImpl) Apply(ctx context.Context, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.ErrLedgerWriteFailed(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	wallet, entry, err := s.ApplyTx(ctx, tx, op)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, apperror.ErrLedgerWriteFailed(fmt.Errorf("commit tx: %w", err))
	}
	return wallet, entry, nil
}

// ApplyTx runs the delta inside a caller-owned transaction. The caller is
// responsible for commit/rollback; on error nothing must be committed.
func (s *LedgerStoreImpl) ApplyTx(ctx context.Context, tx pgx.Tx, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
	if op.Amount.IsNegative() {
		return nil, nil, apperror.ErrInvalidAmount()
	}

	// Per-user serialization point.
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, tx, op.UserID)
	if err != nil {
		return nil, nil, apperror.ErrLedgerWriteFailed(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}

	newQuote := wallet.QuoteBalance.Add(op.Delta.Quote)
	if newQuote.IsNegative() {
		return nil, nil, apperror.ErrInsufficientFunds("quote")
	}

	assets := cloneAssets(wallet.Assets)
	if op.Delta.Asset != "" && !op.Delta.AssetQty.IsZero() {
		newQty := wallet.AssetQty(op.Delta.Asset).Add(op.Delta.AssetQty)
		if newQty.IsNegative() {
			return nil, nil, apperror.ErrInsufficientFunds(op.Delta.Asset)
		}
		assets[op.Delta.Asset] = newQty
	}

	if err := s.walletRepo.UpdateBalances(ctx, tx, op.UserID, newQuote, assets); err != nil {
		return nil, nil, apperror.ErrLedgerWriteFailed(fmt.Errorf("update balances: %w", err))
	}

	status := op.Status
	if status == "" {
		status = domain.EntryStatusCompleted
	}

	entry := &domain.LedgerEntry{
		ID:         uuid.New(),
		UserID:     op.UserID,
		Kind:       op.Kind,
		Amount:     op.Amount,
		QuoteDelta: op.Delta.Quote,
		Asset:      op.Delta.Asset,
		AssetDelta: op.Delta.AssetQty,
		Pair:       op.Pair,
		Status:     status,
		PriceStale: op.PriceStale,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, nil, apperror.ErrLedgerWriteFailed(fmt.Errorf("append ledger entry: %w", err))
	}

	snapshot := &domain.Wallet{
		UserID:       wallet.UserID,
		QuoteBalance: newQuote,
		Assets:       assets,
		CreatedAt:    wallet.CreatedAt,
		UpdatedAt:    entry.CreatedAt,
	}

	s.log.Debug().
		Str("user_id", op.UserID.String()).
		Str("kind", string(op.Kind)).
		Str("quote_delta", op.Delta.Quote.String()).
		Str("new_quote", newQuote.String()).
		Msg("ledger delta applied")

	return snapshot, entry, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	entryRepo  ports.LedgerEntryRepository
	ledger     ports.LedgerStore
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	entryRepo ports.LedgerEntryRepository,
	ledger ports.LedgerStore,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		ledger:     ledger,
		log:        log,
	}
}

func (s *WalletServiceImpl) Balance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// Deposit credits the wallet, creating it on first use.
func (s *WalletServiceImpl) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, *domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, nil, apperror.ErrInvalidAmount()
	}

	if err := s.ensureWallet(ctx, userID); err != nil {
		return nil, nil, err
	}

	return s.ledger.Apply(ctx, ports.LedgerOp{
		UserID: userID,
		Delta:  domain.LedgerDelta{Quote: amount},
		Kind:   domain.EntryKindDeposit,
		Amount: amount,
	})
}

// Withdraw debits the wallet immediately and records the entry as PENDING
// until the external transfer confirms.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, *domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, nil, apperror.ErrInvalidAmount()
	}

	return s.ledger.Apply(ctx, ports.LedgerOp{
		UserID: userID,
		Delta:  domain.LedgerDelta{Quote: amount.Neg()},
		Kind:   domain.EntryKindWithdrawal,
		Amount: amount,
		Status: domain.EntryStatusPending,
	})
}

func (s *WalletServiceImpl) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list entries: %w", err))
	}
	return entries, nil
}

func (s *WalletServiceImpl) Stats(ctx context.Context, userID uuid.UUID) (*domain.TradeStats, error) {
	stats, err := s.entryRepo.TradeStats(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("trade stats: %w", err))
	}
	return stats, nil
}

func (s *WalletServiceImpl) ensureWallet(ctx context.Context, userID uuid.UUID) error {
	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return nil
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		UserID:       userID,
		QuoteBalance: decimal.Zero,
		Assets:       map[string]decimal.Decimal{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().Str("user_id", userID.String()).Msg("wallet created")
	return nil
}

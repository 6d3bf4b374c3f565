package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Concurrent first deposits race on wallet creation; first write wins.
	if _, exists := r.wallets[wallet.UserID]; exists {
		return nil
	}
	r.wallets[wallet.UserID] = copyWallet(wallet)
	return nil
}

func (r *inMemoryWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[userID]
	if !ok {
		return nil, nil
	}
	return copyWallet(w), nil
}

func (r *inMemoryWalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *inMemoryWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, quote decimal.Decimal, assets map[string]decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[userID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.QuoteBalance = quote
	w.Assets = copyAssets(assets)
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func copyWallet(w *domain.Wallet) *domain.Wallet {
	out := *w
	out.Assets = copyAssets(w.Assets)
	return &out
}

func copyAssets(assets map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(assets))
	for k, v := range assets {
		out[k] = v
	}
	return out
}

// --- In-Memory Position Repo ---

type inMemoryPositionRepo struct {
	mu        sync.RWMutex
	positions map[uuid.UUID]*domain.Position
}

func newInMemoryPositionRepo() *inMemoryPositionRepo {
	return &inMemoryPositionRepo{positions: make(map[uuid.UUID]*domain.Position)}
}

func (r *inMemoryPositionRepo) Create(ctx context.Context, tx pgx.Tx, position *domain.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *position
	r.positions[p.ID] = &p
	return nil
}

func (r *inMemoryPositionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *inMemoryPositionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Position, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPositionRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, outcome domain.Outcome, closePrice decimal.Decimal, priceStale bool, settledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok || p.State != domain.PositionStateOpen {
		return fmt.Errorf("position not open")
	}
	p.State = domain.PositionStateSettled
	p.Outcome = &outcome
	p.ClosePrice = &closePrice
	p.PriceStale = priceStale
	p.SettledAt = &settledAt
	return nil
}

func (r *inMemoryPositionRepo) ListOpen(ctx context.Context) ([]domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Position
	for _, p := range r.positions {
		if p.State == domain.PositionStateOpen {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *inMemoryPositionRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Position
	for _, p := range r.positions {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Ledger Entry Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryLedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			out = append(out, r.entries[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *inMemoryLedgerRepo) SumQuoteDeltas(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range r.entries {
		if e.UserID == userID {
			sum = sum.Add(e.QuoteDelta)
		}
	}
	return sum, nil
}

func (r *inMemoryLedgerRepo) TradeStats(ctx context.Context, userID uuid.UUID) (*domain.TradeStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.TradeStats{NetProfit: decimal.Zero}
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		switch e.Kind {
		case domain.EntryKindTradeWin:
			stats.Wins++
			stats.NetProfit = stats.NetProfit.Add(e.QuoteDelta)
		case domain.EntryKindTradeLoss:
			stats.Losses++
			stats.NetProfit = stats.NetProfit.Sub(e.Amount)
		}
	}
	stats.TotalTrades = stats.Wins + stats.Losses
	return stats, nil
}

// --- In-Memory Payout Schedule Repo ---

type inMemoryPayoutRepo struct {
	tiers map[int]decimal.Decimal
}

func newInMemoryPayoutRepo() *inMemoryPayoutRepo {
	return &inMemoryPayoutRepo{tiers: map[int]decimal.Decimal{
		1:   decimal.NewFromInt(80),
		60:  decimal.NewFromInt(80),
		300: decimal.NewFromInt(85),
	}}
}

func (r *inMemoryPayoutRepo) GetBySeconds(ctx context.Context, seconds int) (*domain.PayoutTier, error) {
	percent, ok := r.tiers[seconds]
	if !ok {
		return nil, nil
	}
	return &domain.PayoutTier{Seconds: seconds, Percent: percent}, nil
}

func (r *inMemoryPayoutRepo) List(ctx context.Context) ([]domain.PayoutTier, error) {
	var out []domain.PayoutTier
	for seconds, percent := range r.tiers {
		out = append(out, domain.PayoutTier{Seconds: seconds, Percent: percent})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seconds < out[j].Seconds })
	return out, nil
}

// --- In-Memory Profit Mode Repo ---

type inMemoryProfitModeRepo struct {
	mu    sync.RWMutex
	modes map[uuid.UUID]domain.ProfitMode
}

func newInMemoryProfitModeRepo() *inMemoryProfitModeRepo {
	return &inMemoryProfitModeRepo{modes: make(map[uuid.UUID]domain.ProfitMode)}
}

func (r *inMemoryProfitModeRepo) Get(ctx context.Context, userID uuid.UUID) (domain.ProfitMode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mode, ok := r.modes[userID]
	if !ok {
		return domain.ProfitModeRandom, nil
	}
	return mode, nil
}

func (r *inMemoryProfitModeRepo) Set(ctx context.Context, userID uuid.UUID, mode domain.ProfitMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes[userID] = mode
	return nil
}

// --- In-Memory Limit Order Repo ---

type inMemoryLimitOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.LimitOrder
}

func newInMemoryLimitOrderRepo() *inMemoryLimitOrderRepo {
	return &inMemoryLimitOrderRepo{orders: make(map[uuid.UUID]*domain.LimitOrder)}
}

func (r *inMemoryLimitOrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.LimitOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := *order
	r.orders[o.ID] = &o
	return nil
}

func (r *inMemoryLimitOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LimitOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	out := *o
	return &out, nil
}

func (r *inMemoryLimitOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LimitOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryLimitOrderRepo) ListOpenByPair(ctx context.Context, pair string) ([]domain.LimitOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LimitOrder
	for _, o := range r.orders {
		if o.Pair == pair && o.State == domain.LimitOrderStateOpen {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *inMemoryLimitOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LimitOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LimitOrder
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryLimitOrderRepo) MarkFilled(ctx context.Context, tx pgx.Tx, id uuid.UUID, fillPrice decimal.Decimal, filledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.State != domain.LimitOrderStateOpen {
		return fmt.Errorf("order not open")
	}
	o.State = domain.LimitOrderStateFilled
	o.FillPrice = &fillPrice
	o.FilledAt = &filledAt
	return nil
}

func (r *inMemoryLimitOrderRepo) MarkCanceled(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.State != domain.LimitOrderStateOpen {
		return fmt.Errorf("order not open")
	}
	o.State = domain.LimitOrderStateCanceled
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes all transactions behind one mutex, standing in
// for the wallet row lock that postgres provides with SELECT FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{release: &t.mu}, nil
}

// lockTx is a pgx.Tx stand-in that holds the transactor lock until the first
// Commit or Rollback. The deferred Rollback after a successful Commit must
// not unlock twice.
type lockTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *lockTx) done() {
	t.once.Do(func() { t.release.Unlock() })
}

func (t *lockTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *lockTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *lockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockTx) Conn() *pgx.Conn { return nil }

// --- Stub Price Oracle ---

// stubOracle is a controllable price feed. SetPrice pins the answer for
// Price; Publish additionally fans the quote out to subscribers the way the
// live feed does on every trade tick.
type stubOracle struct {
	mu    sync.RWMutex
	last  map[string]decimal.Decimal
	subMu sync.Mutex
	subs  []chan domain.Quote
}

func newStubOracle() *stubOracle {
	return &stubOracle{last: make(map[string]decimal.Decimal)}
}

func (o *stubOracle) SetPrice(pair string, price decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.last[pair] = price
}

func (o *stubOracle) Price(ctx context.Context, pair string) (domain.Quote, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	price, ok := o.last[pair]
	if !ok {
		return domain.Quote{}, fmt.Errorf("no price for %s", pair)
	}
	return domain.Quote{Pair: pair, Price: price, At: time.Now()}, nil
}

func (o *stubOracle) Subscribe() <-chan domain.Quote {
	o.subMu.Lock()
	defer o.subMu.Unlock()
	ch := make(chan domain.Quote, 64)
	o.subs = append(o.subs, ch)
	return ch
}

func (o *stubOracle) Publish(pair string, price decimal.Decimal) {
	o.SetPrice(pair, price)
	quote := domain.Quote{Pair: pair, Price: price, At: time.Now()}
	o.subMu.Lock()
	defer o.subMu.Unlock()
	for _, ch := range o.subs {
		select {
		case ch <- quote:
		default:
		}
	}
}

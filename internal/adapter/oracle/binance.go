package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"timed-trading-platform/config"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Binance implements ports.PriceOracle over the Binance combined aggTrade
// websocket stream. Every tick updates an in-memory last-quote table, is
// written through to the persistent price cache, and is fanned out to
// subscribers. Run reconnects with a fixed backoff until the context is
// canceled.
type Binance struct {
	cfg   config.OracleConfig
	cache ports.PriceCache
	log   zerolog.Logger

	mu   sync.RWMutex
	last map[string]domain.Quote

	subMu sync.Mutex
	subs  []chan domain.Quote
}

// NewBinance creates a Binance price oracle. Run must be started for quotes
// to flow.
func NewBinance(cfg config.OracleConfig, cache ports.PriceCache, log zerolog.Logger) *Binance {
	return &Binance{
		cfg:   cfg,
		cache: cache,
		last:  make(map[string]domain.Quote),
		log:   log,
	}
}

// Price returns the most recent quote seen for a pair. The quote may be
// stale; callers check its timestamp.
func (b *Binance) Price(_ context.Context, pair string) (domain.Quote, error) {
	b.mu.RLock()
	quote, ok := b.last[strings.ToUpper(pair)]
	b.mu.RUnlock()
	if !ok {
		return domain.Quote{}, fmt.Errorf("no quote received for %s", pair)
	}
	return quote, nil
}

// Subscribe returns a stream of live quotes. Slow consumers drop ticks
// rather than stalling the feed.
func (b *Binance) Subscribe() <-chan domain.Quote {
	ch := make(chan domain.Quote, 64)
	b.subMu.Lock()
	b.subs = append(b.subs, ch)
	b.subMu.Unlock()
	return ch
}

// Run maintains the websocket connection until the context is canceled.
// Call once, in its own goroutine.
func (b *Binance) Run(ctx context.Context) {
	url := b.streamURL()
	for {
		if ctx.Err() != nil {
			b.closeSubs()
			return
		}

		if err := b.consume(ctx, url); err != nil && ctx.Err() == nil {
			b.log.Warn().Err(err).
				Dur("reconnect_in", b.cfg.ReconnectBackoff).
				Msg("price feed disconnected, reconnecting")
		}

		select {
		case <-ctx.Done():
			b.closeSubs()
			return
		case <-time.After(b.cfg.ReconnectBackoff):
		}
	}
}

func (b *Binance) consume(ctx context.Context, url string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	b.log.Info().Str("url", url).Int("pairs", len(b.cfg.Pairs)).Msg("price feed connected")

	// Unblock ReadMessage on shutdown.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}

		quote, err := parseCombined(message)
		if err != nil {
			b.log.Debug().Err(err).Msg("skipping unparseable feed message")
			continue
		}
		b.handleQuote(ctx, quote)
	}
}

// handleQuote records a tick: last-quote table, persistent cache, fan-out.
func (b *Binance) handleQuote(ctx context.Context, quote domain.Quote) {
	b.mu.Lock()
	b.last[quote.Pair] = quote
	b.mu.Unlock()

	if err := b.cache.Put(ctx, quote); err != nil {
		b.log.Warn().Err(err).Str("pair", quote.Pair).Msg("price cache write failed")
	}

	b.subMu.Lock()
	for _, ch := range b.subs {
		select {
		case ch <- quote:
		default:
		}
	}
	b.subMu.Unlock()
}

func (b *Binance) closeSubs() {
	b.subMu.Lock()
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.subMu.Unlock()
}

func (b *Binance) streamURL() string {
	streams := make([]string, len(b.cfg.Pairs))
	for i, pair := range b.cfg.Pairs {
		streams[i] = strings.ToLower(pair) + "@aggTrade"
	}
	return b.cfg.StreamURL + "?streams=" + strings.Join(streams, "/")
}

// combinedMessage is one frame of the Binance combined stream.
type combinedMessage struct {
	Stream string `json:"stream"`
	Data   struct {
		EventType string `json:"e"`
		Symbol    string `json:"s"`
		Price     string `json:"p"`
		TradeTime int64  `json:"T"` // milliseconds
	} `json:"data"`
}

func parseCombined(message []byte) (domain.Quote, error) {
	var frame combinedMessage
	if err := json.Unmarshal(message, &frame); err != nil {
		return domain.Quote{}, fmt.Errorf("decode frame: %w", err)
	}
	if frame.Data.EventType != "aggTrade" {
		return domain.Quote{}, fmt.Errorf("unexpected event type %q", frame.Data.EventType)
	}

	price, err := decimal.NewFromString(frame.Data.Price)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("parse price %q: %w", frame.Data.Price, err)
	}

	return domain.Quote{
		Pair:  strings.ToUpper(frame.Data.Symbol),
		Price: price,
		At:    time.UnixMilli(frame.Data.TradeTime),
	}, nil
}

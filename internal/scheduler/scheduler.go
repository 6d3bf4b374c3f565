package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"timed-trading-platform/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SettleFunc resolves one position. It is retried with backoff on failure.
type SettleFunc func(ctx context.Context, positionID uuid.UUID) error

// Scheduler fires one settlement check per position exactly at its deadline.
// Deadlines live in a min-heap ordered by due time; a single dispatcher
// goroutine sleeps until the earliest one, so no per-position timers and no
// polling. Failed settlements are re-queued with exponential backoff and
// escalate to an operator-level log line after the configured number of
// attempts.
type Scheduler struct {
	mu     sync.Mutex
	queue  deadlineQueue
	wake   chan struct{}
	settle SettleFunc
	cfg    config.SettlementConfig
	log    zerolog.Logger
}

// New creates a Scheduler. Bind must be called before Run.
func New(cfg config.SettlementConfig, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		queue: deadlineQueue{},
		wake:  make(chan struct{}, 1),
		cfg:   cfg,
		log:   log,
	}
}

// Bind attaches the settlement callback. Separate from New because the
// position service and the scheduler reference each other.
func (s *Scheduler) Bind(settle SettleFunc) {
	s.settle = settle
}

// Schedule registers a settlement check for the position at the given time.
// Safe for concurrent use. Times in the past fire immediately.
func (s *Scheduler) Schedule(positionID uuid.UUID, at time.Time) {
	s.mu.Lock()
	heap.Push(&s.queue, &deadline{positionID: positionID, at: at})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run dispatches deadlines until the context is canceled. Call once, in its
// own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		next := s.popDue(time.Now())
		for _, d := range next {
			go s.dispatch(ctx, d)
		}

		wait := s.untilNext(time.Now())
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		case <-timer.C:
		}
	}
}

func (s *Scheduler) dispatch(ctx context.Context, d *deadline) {
	err := s.settle(ctx, d.positionID)
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		return
	}

	d.attempts++
	backoff := s.backoff(d.attempts)

	if d.attempts >= s.cfg.AlertAfter {
		s.log.Error().
			Err(err).
			Str("position_id", d.positionID.String()).
			Int("attempts", d.attempts).
			Dur("next_retry_in", backoff).
			Msg("settlement repeatedly failing, operator attention required")
	} else {
		s.log.Warn().
			Err(err).
			Str("position_id", d.positionID.String()).
			Int("attempts", d.attempts).
			Dur("next_retry_in", backoff).
			Msg("settlement failed, retrying")
	}

	d.at = time.Now().Add(backoff)
	s.mu.Lock()
	heap.Push(&s.queue, d)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) backoff(attempts int) time.Duration {
	backoff := s.cfg.RetryBackoff
	for i := 1; i < attempts; i++ {
		backoff *= 2
		if backoff >= s.cfg.MaxRetryBackoff {
			return s.cfg.MaxRetryBackoff
		}
	}
	if backoff > s.cfg.MaxRetryBackoff {
		return s.cfg.MaxRetryBackoff
	}
	return backoff
}

// popDue removes and returns every deadline at or before now.
func (s *Scheduler) popDue(now time.Time) []*deadline {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*deadline
	for s.queue.Len() > 0 && !s.queue[0].at.After(now) {
		due = append(due, heap.Pop(&s.queue).(*deadline))
	}
	return due
}

// untilNext returns how long to sleep before the earliest pending deadline.
func (s *Scheduler) untilNext(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.Len() == 0 {
		return time.Hour
	}
	wait := s.queue[0].at.Sub(now)
	if wait < 0 {
		return 0
	}
	return wait
}

type deadline struct {
	positionID uuid.UUID
	at         time.Time
	attempts   int
}

type deadlineQueue []*deadline

func (q deadlineQueue) Len() int            { return len(q) }
func (q deadlineQueue) Less(i, j int) bool  { return q[i].at.Before(q[j].at) }
func (q deadlineQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *deadlineQueue) Push(x interface{}) { *q = append(*q, x.(*deadline)) }
func (q *deadlineQueue) Pop() interface{} {
	old := *q
	n := len(old)
	d := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return d
}

package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"timed-trading-platform/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.SettlementConfig {
	return config.SettlementConfig{
		OracleWait:      time.Second,
		RetryBackoff:    5 * time.Millisecond,
		MaxRetryBackoff: 20 * time.Millisecond,
		AlertAfter:      3,
	}
}

// settleRecorder collects dispatched position IDs.
type settleRecorder struct {
	mu    sync.Mutex
	calls []uuid.UUID
	errs  map[uuid.UUID]int // remaining failures per position
}

func newSettleRecorder() *settleRecorder {
	return &settleRecorder{errs: map[uuid.UUID]int{}}
}

func (r *settleRecorder) settle(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, id)
	if r.errs[id] > 0 {
		r.errs[id]--
		return errors.New("transient failure")
	}
	return nil
}

func (r *settleRecorder) callCount(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == id {
			n++
		}
	}
	return n
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadlineAt := time.Now().Add(timeout)
	for time.Now().Before(deadlineAt) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	require.True(t, cond(), "condition not met within %s", timeout)
}

func TestScheduler_FiresAtDeadline(t *testing.T) {
	rec := newSettleRecorder()
	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	id := uuid.New()
	s.Schedule(id, time.Now().Add(20*time.Millisecond))

	// Not yet due.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 0, rec.callCount(id))

	waitFor(t, time.Second, func() bool { return rec.callCount(id) == 1 })
}

func TestScheduler_PastDeadlineFiresImmediately(t *testing.T) {
	rec := newSettleRecorder()
	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	id := uuid.New()
	s.Schedule(id, time.Now().Add(-time.Minute))

	waitFor(t, time.Second, func() bool { return rec.callCount(id) == 1 })
}

func TestScheduler_EarlierDeadlinePreempts(t *testing.T) {
	rec := newSettleRecorder()
	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	late := uuid.New()
	early := uuid.New()

	// The dispatcher is already sleeping toward the late deadline when the
	// earlier one arrives.
	s.Schedule(late, time.Now().Add(10*time.Second))
	time.Sleep(5 * time.Millisecond)
	s.Schedule(early, time.Now().Add(10*time.Millisecond))

	waitFor(t, time.Second, func() bool { return rec.callCount(early) == 1 })
	assert.Equal(t, 0, rec.callCount(late))
}

func TestScheduler_RetriesUntilSuccess(t *testing.T) {
	rec := newSettleRecorder()
	id := uuid.New()
	rec.errs[id] = 2 // fail twice, then succeed

	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	s.Schedule(id, time.Now())

	waitFor(t, 2*time.Second, func() bool { return rec.callCount(id) == 3 })
}

func TestScheduler_BackoffCapped(t *testing.T) {
	s := New(testConfig(), zerolog.Nop())

	assert.Equal(t, 5*time.Millisecond, s.backoff(1))
	assert.Equal(t, 10*time.Millisecond, s.backoff(2))
	assert.Equal(t, 20*time.Millisecond, s.backoff(3))
	assert.Equal(t, 20*time.Millisecond, s.backoff(10))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	rec := newSettleRecorder()
	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}

	// Scheduling after shutdown must not panic; it simply queues.
	s.Schedule(uuid.New(), time.Now())
}

func TestDeadlineQueue_Ordering(t *testing.T) {
	rec := newSettleRecorder()
	s := New(testConfig(), zerolog.Nop())
	s.Bind(rec.settle)

	now := time.Now()
	third := uuid.New()
	first := uuid.New()
	second := uuid.New()

	s.Schedule(third, now.Add(3*time.Hour))
	s.Schedule(first, now.Add(-time.Second))
	s.Schedule(second, now.Add(2*time.Hour))

	due := s.popDue(now)
	require.Len(t, due, 1)
	assert.Equal(t, first, due[0].positionID)

	due = s.popDue(now.Add(4 * time.Hour))
	require.Len(t, due, 2)
	assert.Equal(t, second, due[0].positionID)
	assert.Equal(t, third, due[1].positionID)
}

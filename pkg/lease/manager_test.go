package lease

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superma0035/zapdine/pkg/storage"
	"github.com/superma0035/zapdine/pkg/types"
)

var t0 = time.Date(2026, 6, 12, 19, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *storage.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(t0)
	store := storage.New(storage.DriverMemory, storage.NewMemory())
	return NewManager(store, 2*time.Hour, WithClock(clock)), store, clock
}

// records every event it sees
type eventLog struct {
	mu     sync.Mutex
	events []types.LockEvent
}

func (l *eventLog) observe(ev types.LockEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []types.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.EventType, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Type)
	}
	return out
}

// TestAcquireThenCheck tests that a fresh lease is visible to check_lock
func TestAcquireThenCheck(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	assert.False(t, m.CheckLock(ctx, "T7").Locked, "table starts free")

	lease, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "session-T7-"+itoa(t0.UnixNano()), lease.SessionID)
	assert.Equal(t, t0.Add(2*time.Hour), lease.ExpiresAt)

	state := m.CheckLock(ctx, "T7")
	assert.True(t, state.Locked)
	assert.Equal(t, "Alice", state.Holder)
	assert.Equal(t, lease.SessionID, state.SessionID)
}

// TestAcquireLockedTable tests that a second customer is refused
func TestAcquireLockedTable(t *testing.T) {
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "T7", "Bob")
	assert.ErrorIs(t, err, types.ErrTableLocked)

	//lease unchanged
	stored, ok := store.Get(ctx, "T7")
	require.True(t, ok)
	assert.Equal(t, first.SessionID, stored.SessionID)
	assert.Equal(t, "Alice", stored.HolderName)
	assert.True(t, first.ExpiresAt.Equal(stored.ExpiresAt))
}

// TestAcquireAnonymous tests that an empty holder name is allowed
func TestAcquireAnonymous(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.Acquire(context.Background(), "T1", "")
	require.NoError(t, err)
	assert.True(t, m.CheckLock(context.Background(), "T1").Locked)
}

// TestReleaseUnconditional tests release with and without a lease
func TestReleaseUnconditional(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Release(ctx, "T9")
	assert.False(t, m.CheckLock(ctx, "T9").Locked)

	_, err := m.Acquire(ctx, "T9", "Alice")
	require.NoError(t, err)
	m.Release(ctx, "T9")
	assert.False(t, m.CheckLock(ctx, "T9").Locked)

	//table is free again
	_, err = m.Acquire(ctx, "T9", "Bob")
	assert.NoError(t, err)
}

// TestExpiredLeaseRemoved tests the two hour expiry scenario
func TestExpiredLeaseRemoved(t *testing.T) {
	m, store, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	clock.Advance(7201 * time.Second)

	assert.False(t, m.CheckLock(ctx, "T7").Locked)
	_, ok := store.Get(ctx, "T7")
	assert.False(t, ok, "expired record should be gone")
}

// TestExpiryBoundary tests that a lease is dead exactly at expires_at
func TestExpiryBoundary(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	clock.Advance(2*time.Hour - time.Second)
	assert.True(t, m.CheckLock(ctx, "T7").Locked)
	assert.Equal(t, time.Second, m.RemainingTime(ctx, "T7"))

	clock.Advance(time.Second)
	assert.Zero(t, m.RemainingTime(ctx, "T7"))
	assert.False(t, m.CheckLock(ctx, "T7").Locked)
}

// TestRemainingTimeRemovesExpiredRecord tests that reading the remaining time
// of an expired lease removes the record like any other read
func TestRemainingTimeRemovesExpiredRecord(t *testing.T) {
	m, store, clock := newTestManager(t)
	ctx := context.Background()
	events := &eventLog{}
	m.Subscribe(events.observe)

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)
	clock.Advance(3 * time.Hour)

	assert.Zero(t, m.RemainingTime(ctx, "T7"))
	_, ok := store.Get(ctx, "T7")
	assert.False(t, ok, "expired record should be gone")
	assert.Equal(t, []types.EventType{types.EventLeaseAcquired, types.EventLeaseExpired}, events.kinds())
}

// TestRemainingTimeNonIncreasing tests remaining time only goes down
func TestRemainingTimeNonIncreasing(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	assert.Zero(t, m.RemainingTime(ctx, "T7"), "no lease, no time")

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	prev := m.RemainingTime(ctx, "T7")
	for i := 0; i < 10; i++ {
		clock.Advance(17 * time.Minute)
		cur := m.RemainingTime(ctx, "T7")
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Zero(t, prev)
}

// TestExtend tests that extend resets the remaining time
func TestExtend(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	_, ok := m.Extend(ctx, "T7")
	assert.False(t, ok, "nothing to extend")

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	lease, ok := m.Extend(ctx, "T7")
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(2*time.Hour), lease.ExpiresAt)
	assert.InDelta(t, (2 * time.Hour).Seconds(), m.RemainingTime(ctx, "T7").Seconds(), 1)
}

// TestExtendExpiredRecord tests that an expired but present record can be extended
func TestExtendExpiredRecord(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)
	clock.Advance(3 * time.Hour)

	_, ok := m.Extend(ctx, "T7")
	require.True(t, ok)
	assert.True(t, m.CheckLock(ctx, "T7").Locked)
}

// TestFormatRemaining tests the lease time label
func TestFormatRemaining(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	assert.Equal(t, "Expired", m.FormatRemaining(ctx, "T7"))

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "2h 0m", m.FormatRemaining(ctx, "T7"))

	clock.Advance(75 * time.Minute)
	assert.Equal(t, "45m", m.FormatRemaining(ctx, "T7"))
}

// TestCorruptRecordFailsOpen tests that a bad record means unlocked
func TestCorruptRecordFailsOpen(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	m := NewManager(storage.New(storage.DriverMemory, mem), time.Hour)

	require.NoError(t, mem.Save(ctx, storage.Key("T5"), []byte("###")))

	assert.False(t, m.CheckLock(ctx, "T5").Locked)
	_, err := m.Acquire(ctx, "T5", "Carol")
	assert.NoError(t, err)
}

// TestObservers tests event delivery and unsubscribe
func TestObservers(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	var events eventLog
	unsubscribe := m.Subscribe(events.observe)

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)
	m.Extend(ctx, "T7")
	m.Release(ctx, "T7")

	_, err = m.Acquire(ctx, "T7", "Bob")
	require.NoError(t, err)
	clock.Advance(3 * time.Hour)
	m.CheckLock(ctx, "T7")

	assert.Equal(t, []types.EventType{
		types.EventLeaseAcquired,
		types.EventLeaseExtended,
		types.EventLeaseReleased,
		types.EventLeaseAcquired,
		types.EventLeaseExpired,
	}, events.kinds())

	unsubscribe()
	m.Release(ctx, "T7")
	assert.Len(t, events.kinds(), 5)
}

// TestRefusedAcquireDoesNotNotify tests that a refused acquire changes nothing
func TestRefusedAcquireDoesNotNotify(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	var events eventLog
	m.Subscribe(events.observe)

	_, err = m.Acquire(ctx, "T7", "Bob")
	require.Error(t, err)
	assert.Empty(t, events.kinds())
}

// TestWatch tests the periodic lock check
func TestWatch(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := m.Acquire(ctx, "T7", "Alice")
	require.NoError(t, err)

	states := make(chan types.LockState, 4)
	done := make(chan struct{})
	go func() {
		m.Watch(ctx, "T7", time.Minute, func(s types.LockState) { states <- s })
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)
	s := <-states
	assert.True(t, s.Locked)

	m.Release(ctx, "T7")
	clock.Advance(time.Minute)
	s = <-states
	assert.False(t, s.Locked)

	cancel()
	<-done
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// TestReleaseIfHeld tests that only the owning session can release
func TestReleaseIfHeld(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	assert.False(t, m.ReleaseIfHeld(ctx, "T7", "session-x"), "nothing to release")

	lease, err := m.Acquire(ctx, "T7", "Bob")
	require.NoError(t, err)

	assert.False(t, m.ReleaseIfHeld(ctx, "T7", "session-T7-0"))
	assert.True(t, m.CheckLock(ctx, "T7").Locked)

	assert.True(t, m.ReleaseIfHeld(ctx, "T7", lease.SessionID))
	assert.False(t, m.CheckLock(ctx, "T7").Locked)
}

// TestExtendIfHeld tests that only the owning session can extend a live lease
func TestExtendIfHeld(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	lease, err := m.Acquire(ctx, "T7", "Bob")
	require.NoError(t, err)
	clock.Advance(time.Hour)

	_, ok := m.ExtendIfHeld(ctx, "T7", "session-T7-0")
	assert.False(t, ok)
	assert.Equal(t, time.Hour, m.RemainingTime(ctx, "T7"))

	extended, ok := m.ExtendIfHeld(ctx, "T7", lease.SessionID)
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(2*time.Hour), extended.ExpiresAt)

	clock.Advance(3 * time.Hour)
	_, ok = m.ExtendIfHeld(ctx, "T7", lease.SessionID)
	assert.False(t, ok, "a lapsed lease is not revived")
}

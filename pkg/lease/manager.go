package lease

import (
	"context"
	"fmt"
	"sync"

	tm "time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/storage"
	"github.com/superma0035/zapdine/pkg/time"
	"github.com/superma0035/zapdine/pkg/types"
)

// default lease length, also the countdown budget of a page
const DefaultDuration = 2 * tm.Hour

// default period of the background lock check
const DefaultCheckInterval = 60 * tm.Second

// receives lock state changes as they happen
type Observer func(types.LockEvent)

// Manager runs the per-table lease state machine:
// Unlocked -> Locked(holder, expires_at) -> Unlocked
//
// exclusivity is best effort: it only holds between callers that share the store,
// and Acquire is check-then-act (see Acquire)
// store failures never surface here, an unreadable record means unlocked
type Manager struct {
	store    storage.LeaseStore
	clock    *time.Clock
	duration tm.Duration

	mu        sync.RWMutex
	observers map[uint64]Observer
	nextObsID uint64
}

type Option func(*Manager)

// clock used for expiry, a fake one in tests
func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = time.NewClockFrom(c)
	}
}

func NewManager(store storage.LeaseStore, duration tm.Duration, opts ...Option) *Manager {
	if duration <= 0 {
		duration = DefaultDuration
	}

	m := &Manager{
		store:     store,
		clock:     time.NewClock(),
		duration:  duration,
		observers: make(map[uint64]Observer),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// lease length used for acquire and extend
func (m *Manager) Duration() tm.Duration {
	return m.duration
}

func (m *Manager) Clock() *time.Clock {
	return m.clock
}

// reports whether the table is locked by a live lease
// an expired record is removed on the way, so this is also the expiry detector
// cheap and idempotent, it runs on a timer and before every acquire
func (m *Manager) CheckLock(ctx context.Context, tableID string) types.LockState {
	state, _ := m.checkLock(ctx, tableID)
	return state
}

func (m *Manager) checkLock(ctx context.Context, tableID string) (types.LockState, bool) {
	start := tm.Now()
	defer func() {
		metrics.LockCheckDuration.Observe(tm.Since(start).Seconds())
	}()

	lease, ok := m.store.Get(ctx, tableID)
	if !ok {
		return types.LockState{}, false
	}

	now := m.clock.Now()
	if lease.IsExpired(now) {
		m.store.Remove(ctx, tableID)
		metrics.LeaseExpireTotal.Inc()

		log.Info().
			Str("table_id", tableID).
			Str("session_id", lease.SessionID).
			Time("expires_at", lease.ExpiresAt).
			Msg("removed expired lease")

		m.notify(types.LockEvent{
			Type:      types.EventLeaseExpired,
			TableID:   tableID,
			SessionID: lease.SessionID,
			Holder:    lease.HolderName,
			ExpiresAt: lease.ExpiresAt,
			At:        now,
		})
		return types.LockState{}, true
	}

	return types.LockState{
		Locked:    true,
		Holder:    lease.HolderName,
		SessionID: lease.SessionID,
		ExpiresAt: lease.ExpiresAt,
	}, false
}

// returns the live lease of a table, if any
func (m *Manager) Get(ctx context.Context, tableID string) (types.Lease, bool) {
	if state := m.CheckLock(ctx, tableID); !state.Locked {
		return types.Lease{}, false
	}
	return m.store.Get(ctx, tableID)
}

// Acquire claims a free table for holder
// returns ErrTableLocked without touching the store when a live lease exists
//
// the check and the write are two separate store calls: two pages racing here can
// both succeed and the later write wins. a real guarantee needs a conditional
// insert in a shared store, which this manager does not attempt
func (m *Manager) Acquire(ctx context.Context, tableID, holder string) (types.Lease, error) {
	if state := m.CheckLock(ctx, tableID); state.Locked {
		metrics.LeaseAcquireTotal.WithLabelValues("locked").Inc()
		log.Debug().
			Str("table_id", tableID).
			Str("holder", state.Holder).
			Msg("table already locked")
		return types.Lease{}, types.ErrTableLocked
	}

	now := m.clock.Now()
	lease := types.Lease{
		SessionID:  fmt.Sprintf("session-%s-%d", tableID, now.UnixNano()),
		HolderName: holder,
		TableID:    tableID,
		AcquiredAt: now,
		ExpiresAt:  now.Add(m.duration),
	}
	m.store.Put(ctx, tableID, lease)
	metrics.LeaseAcquireTotal.WithLabelValues("success").Inc()

	log.Info().
		Str("table_id", tableID).
		Str("session_id", lease.SessionID).
		Str("holder", holder).
		Time("expires_at", lease.ExpiresAt).
		Msg("lease acquired")

	m.notify(types.LockEvent{
		Type:      types.EventLeaseAcquired,
		TableID:   tableID,
		SessionID: lease.SessionID,
		Holder:    holder,
		ExpiresAt: lease.ExpiresAt,
		At:        now,
	})
	return lease, nil
}

// removes the table's lease unconditionally, a no-op when there is none
func (m *Manager) Release(ctx context.Context, tableID string) {
	lease, _ := m.store.Get(ctx, tableID)
	m.release(ctx, tableID, lease)
}

// ReleaseIfHeld removes the table's lease only while it still belongs to
// sessionID. A page whose lease lapsed and was taken by someone else must not
// free the new holder's table.
func (m *Manager) ReleaseIfHeld(ctx context.Context, tableID, sessionID string) bool {
	lease, ok := m.store.Get(ctx, tableID)
	if !ok || lease.SessionID != sessionID {
		log.Debug().
			Str("table_id", tableID).
			Str("session_id", sessionID).
			Str("held_by", lease.SessionID).
			Msg("release skipped, lease not held by session")
		return false
	}
	m.release(ctx, tableID, lease)
	return true
}

func (m *Manager) release(ctx context.Context, tableID string, lease types.Lease) {
	m.store.Remove(ctx, tableID)
	metrics.LeaseReleaseTotal.Inc()

	log.Info().
		Str("table_id", tableID).
		Str("session_id", lease.SessionID).
		Msg("lease released")

	m.notify(types.LockEvent{
		Type:      types.EventLeaseReleased,
		TableID:   tableID,
		SessionID: lease.SessionID,
		Holder:    lease.HolderName,
		At:        m.clock.Now(),
	})
}

// pushes the expiry of an existing lease (expired or not) to now + duration
// returns false when there is no record to extend
func (m *Manager) Extend(ctx context.Context, tableID string) (types.Lease, bool) {
	lease, ok := m.store.Get(ctx, tableID)
	if !ok {
		metrics.LeaseExtendTotal.WithLabelValues("missing").Inc()
		return types.Lease{}, false
	}
	return m.extend(ctx, tableID, lease), true
}

// ExtendIfHeld extends the table's lease only while it is live and still
// belongs to sessionID
func (m *Manager) ExtendIfHeld(ctx context.Context, tableID, sessionID string) (types.Lease, bool) {
	lease, ok := m.Get(ctx, tableID)
	if !ok || lease.SessionID != sessionID {
		metrics.LeaseExtendTotal.WithLabelValues("missing").Inc()
		return types.Lease{}, false
	}
	return m.extend(ctx, tableID, lease), true
}

func (m *Manager) extend(ctx context.Context, tableID string, lease types.Lease) types.Lease {
	now := m.clock.Now()
	lease.ExpiresAt = now.Add(m.duration)
	m.store.Put(ctx, tableID, lease)
	metrics.LeaseExtendTotal.WithLabelValues("success").Inc()

	log.Info().
		Str("table_id", tableID).
		Str("session_id", lease.SessionID).
		Time("expires_at", lease.ExpiresAt).
		Msg("lease extended")

	m.notify(types.LockEvent{
		Type:      types.EventLeaseExtended,
		TableID:   tableID,
		SessionID: lease.SessionID,
		Holder:    lease.HolderName,
		ExpiresAt: lease.ExpiresAt,
		At:        now,
	})
	return lease
}

// max(0, expires_at - now), zero when there is no lease
// reads through the lock check so an expired record is removed here too
func (m *Manager) RemainingTime(ctx context.Context, tableID string) tm.Duration {
	lease, ok := m.Get(ctx, tableID)
	if !ok {
		return 0
	}
	return lease.Remaining(m.clock.Now())
}

// remaining time as "45m", "1h 30m" or "Expired"
func (m *Manager) FormatRemaining(ctx context.Context, tableID string) string {
	return time.FormatRemaining(m.RemainingTime(ctx, tableID))
}

// registers an observer for every table, call the returned func to stop
func (m *Manager) Subscribe(fn Observer) func() {
	m.mu.Lock()
	id := m.nextObsID
	m.nextObsID++
	m.observers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.observers, id)
		m.mu.Unlock()
	}
}

// observers run synchronously, outside the manager lock
func (m *Manager) notify(ev types.LockEvent) {
	m.mu.RLock()
	obs := make([]Observer, 0, len(m.observers))
	for _, fn := range m.observers {
		obs = append(obs, fn)
	}
	m.mu.RUnlock()

	for _, fn := range obs {
		fn(ev)
	}
}

// checks the table's lock every interval until ctx is done
// fn gets the state of every check
func (m *Manager) Watch(ctx context.Context, tableID string, interval tm.Duration, fn func(types.LockState)) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			fn(m.CheckLock(ctx, tableID))
		case <-ctx.Done():
			return
		}
	}
}

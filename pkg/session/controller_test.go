package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/storage"
	"github.com/superma0035/zapdine/pkg/types"
)

var (
	itemA = types.MenuItem{ID: "a", Name: "Item-A", Price: types.Rupees(100)}
	itemB = types.MenuItem{ID: "b", Name: "Item-B", Price: types.Rupees(50)}
)

// records notifications and redirects
type recorder struct {
	mu        sync.Mutex
	notes     []Notification
	redirects []string
}

func (r *recorder) Notify(title, message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, Notification{Title: title, Message: message, Severity: severity})
}

func (r *recorder) Redirect(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects = append(r.redirects, path)
}

func (r *recorder) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Title)
	}
	return out
}

func (r *recorder) redirectCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.redirects)
}

// order store double
type stubOrders struct {
	mu     sync.Mutex
	err    error
	orders []types.NewOrder
}

func (s *stubOrders) CreateOrder(ctx context.Context, order types.NewOrder) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.orders = append(s.orders, order)
	return "order-" + string(rune('0'+len(s.orders))), nil
}

type harness struct {
	ctx    context.Context
	clock  *clockwork.FakeClock
	leases *lease.Manager
	orders *stubOrders
	rec    *recorder
	cfg    Config
}

func newHarness(t *testing.T, duration time.Duration) *harness {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC))
	store := storage.New(storage.DriverMemory, storage.NewMemory())
	return &harness{
		ctx:    context.Background(),
		clock:  clock,
		leases: lease.NewManager(store, duration, lease.WithClock(clock)),
		orders: &stubOrders{},
		rec:    &recorder{},
		cfg: Config{
			RestaurantID:  "r1",
			TableNumber:   "7",
			Duration:      duration,
			LowTime:       3 * time.Second,
			CheckInterval: time.Minute,
			TickInterval:  time.Second,
			LandingPath:   "/",
			Clock:         clock,
		},
	}
}

func (h *harness) controller() *Controller {
	return NewController(h.cfg, h.leases, h.orders, h.rec, h.rec)
}

// enters and waits until the countdown and the lock check are both ticking
func (h *harness) enter(t *testing.T, c *Controller, holder string) {
	t.Helper()
	require.NoError(t, c.Enter(h.ctx, holder, ""))
	require.NoError(t, h.clock.BlockUntilContext(h.ctx, 2))
}

// moves the fake clock one second at a time, waiting for each tick to land
func (h *harness) tick(t *testing.T, c *Controller, seconds int) {
	t.Helper()
	for i := 0; i < seconds; i++ {
		want := c.Status(h.ctx).RemainingSeconds - 1
		h.clock.Advance(time.Second)
		require.Eventually(t, func() bool {
			return c.Status(h.ctx).RemainingSeconds <= want
		}, time.Second, time.Millisecond)
	}
}

// TestEnterAcquiresTable tests entering a free table
func TestEnterAcquiresTable(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")

	st := c.Status(h.ctx)
	assert.Equal(t, StateActive, st.State)
	assert.Equal(t, "r1:7", st.TableID)
	assert.Equal(t, "Alice", st.Holder)
	assert.Equal(t, 7200, st.RemainingSeconds)
	assert.Equal(t, "2:00:00", st.Countdown)
	assert.Equal(t, "2h 0m", st.LeaseRemaining)
	assert.True(t, st.Lock.Locked)
	assert.Equal(t, "Alice", st.Lock.Holder)

	state := h.leases.CheckLock(h.ctx, "r1:7")
	assert.Equal(t, st.SessionID, state.SessionID)
}

// TestEnterBlockedWhenTableInUse tests the table in use path and retry
func TestEnterBlockedWhenTableInUse(t *testing.T) {
	h := newHarness(t, 2*time.Hour)

	_, err := h.leases.Acquire(h.ctx, "r1:7", "Alice")
	require.NoError(t, err)

	c := h.controller()
	defer c.Close()

	err = c.Enter(h.ctx, "Bob", "")
	assert.ErrorIs(t, err, types.ErrTableLocked)
	assert.Equal(t, StateBlocked, c.State())
	assert.Equal(t, []string{"Table in use"}, h.rec.titles())

	//no cart interaction while blocked
	assert.ErrorIs(t, c.AddItem(itemA), types.ErrSessionNotActive)
	st := c.Status(h.ctx)
	assert.Nil(t, st.Cart)
	assert.Empty(t, st.SessionID)

	//still in use
	assert.ErrorIs(t, c.Retry(h.ctx), types.ErrTableLocked)

	h.leases.Release(h.ctx, "r1:7")
	require.NoError(t, c.Retry(h.ctx))
	assert.Equal(t, StateActive, c.State())
	assert.Equal(t, "Bob", h.leases.CheckLock(h.ctx, "r1:7").Holder)
}

// TestResumeOwnSession tests that a reloaded page picks its lease back up
func TestResumeOwnSession(t *testing.T) {
	h := newHarness(t, 2*time.Hour)

	first := h.controller()
	h.enter(t, first, "Alice")
	sessionID := first.Status(h.ctx).SessionID
	first.Close()

	h.clock.Advance(30 * time.Minute)

	second := h.controller()
	defer second.Close()

	require.NoError(t, second.Enter(h.ctx, "", sessionID))
	st := second.Status(h.ctx)
	assert.Equal(t, StateActive, st.State)
	assert.Equal(t, sessionID, st.SessionID)
	assert.Equal(t, "Alice", st.Holder)
	assert.Equal(t, 5400, st.RemainingSeconds, "countdown picks up the lease's remaining time")

	//a different session id is still blocked
	third := h.controller()
	defer third.Close()
	assert.ErrorIs(t, third.Enter(h.ctx, "Mallory", "session-r1:7-0"), types.ErrTableLocked)
}

// TestCountdownExpiryEndsSession tests the expiry scenario with a full cart
func TestCountdownExpiryEndsSession(t *testing.T) {
	h := newHarness(t, 5*time.Second)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))
	require.NoError(t, c.AddItem(itemB))

	h.tick(t, c, 5)

	require.Eventually(t, func() bool { return c.State() == StateExpired }, time.Second, time.Millisecond)
	st := c.Status(h.ctx)
	assert.Empty(t, st.Cart)
	assert.Zero(t, st.CartTotal)
	assert.Equal(t, 0, st.RemainingSeconds)
	assert.False(t, h.leases.CheckLock(h.ctx, "r1:7").Locked, "lease released")
	assert.Equal(t, 1, h.rec.redirectCount())
	assert.Contains(t, h.rec.titles(), "Session Expired")

	//terminal
	assert.ErrorIs(t, c.AddItem(itemA), types.ErrSessionEnded)
	_, err := c.GenerateBill(h.ctx)
	assert.ErrorIs(t, err, types.ErrSessionEnded)

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, 1, h.rec.redirectCount())
}

// TestLowTimeWarning tests the expiring warning
func TestLowTimeWarning(t *testing.T) {
	h := newHarness(t, 6*time.Second)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	h.tick(t, c, 2)
	assert.Equal(t, StateActive, c.Status(h.ctx).State)

	h.tick(t, c, 2)
	st := c.Status(h.ctx)
	assert.Equal(t, StateExpiring, st.State)
	assert.True(t, st.IsLowTime)

	//ordering still works
	assert.NoError(t, c.AddItem(itemA))

	require.Eventually(t, func() bool {
		count := 0
		for _, title := range h.rec.titles() {
			if title == "Session expiring soon" {
				count++
			}
		}
		return count == 1
	}, time.Second, time.Millisecond)
}

// TestPlaceOrderKeepsLease tests that placing an order is not terminal
func TestPlaceOrderKeepsLease(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))
	require.NoError(t, c.AddItem(itemA))
	require.NoError(t, c.AddItem(itemB))
	assert.Equal(t, "250.00", c.Status(h.ctx).CartTotal.String())

	orderID, err := c.PlaceOrder(h.ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	require.Len(t, h.orders.orders, 1)
	placed := h.orders.orders[0]
	assert.Equal(t, "r1", placed.RestaurantID)
	assert.Equal(t, "7", placed.TableNumber)
	assert.Equal(t, types.Rupees(250), placed.TotalAmount)

	st := c.Status(h.ctx)
	assert.Equal(t, StateActive, st.State)
	assert.Empty(t, st.Cart)
	assert.True(t, h.leases.CheckLock(h.ctx, "r1:7").Locked)
	assert.Len(t, st.Orders, 1)
}

// TestPlaceOrderFailureKeepsCart tests the order failure path
func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	h.orders.err = errors.New("connection reset")
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))

	_, err := c.PlaceOrder(h.ctx)
	assert.ErrorIs(t, err, types.ErrOrderCreationFailed)

	st := c.Status(h.ctx)
	assert.Equal(t, StateActive, st.State)
	assert.Len(t, st.Cart, 1)
	assert.True(t, h.leases.CheckLock(h.ctx, "r1:7").Locked)
	assert.Contains(t, h.rec.titles(), "Order Failed")

	//retry succeeds once the store is back
	h.orders.mu.Lock()
	h.orders.err = nil
	h.orders.mu.Unlock()
	_, err = c.PlaceOrder(h.ctx)
	assert.NoError(t, err)
}

// TestPlaceOrderEmptyCart tests that an empty cart is refused
func TestPlaceOrderEmptyCart(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	_, err := c.PlaceOrder(h.ctx)
	assert.ErrorIs(t, err, types.ErrEmptyCart)
}

// TestGenerateBill tests finishing the session
func TestGenerateBill(t *testing.T) {
	h := newHarness(t, 5*time.Second)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))
	_, err := c.PlaceOrder(h.ctx)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(itemB))

	bill, err := c.GenerateBill(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Rupees(100), bill.OrderedTotal)
	assert.Equal(t, types.Rupees(50), bill.OpenTotal)
	assert.Equal(t, types.Rupees(150), bill.Total)
	assert.Equal(t, "Alice", bill.Holder)

	assert.Equal(t, StateFinished, c.State())
	assert.False(t, h.leases.CheckLock(h.ctx, "r1:7").Locked)
	assert.Equal(t, 1, h.rec.redirectCount())

	//countdown is stopped, expiry can no longer fire
	h.clock.Advance(10 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, StateFinished, c.State())
	assert.Equal(t, 1, h.rec.redirectCount())
	assert.NotContains(t, h.rec.titles(), "Session Expired")

	_, err = c.GenerateBill(h.ctx)
	assert.ErrorIs(t, err, types.ErrSessionEnded)
}

// TestExtendSession tests that extending refills the countdown and the lease
func TestExtendSession(t *testing.T) {
	h := newHarness(t, 10*time.Second)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	h.tick(t, c, 4)
	assert.Equal(t, 6, c.Status(h.ctx).RemainingSeconds)

	require.NoError(t, c.ExtendSession(h.ctx))
	st := c.Status(h.ctx)
	assert.Equal(t, 10, st.RemainingSeconds)
	assert.InDelta(t, 10, h.leases.RemainingTime(h.ctx, "r1:7").Seconds(), 1)
	assert.Contains(t, h.rec.titles(), "Session Extended")
}

// TestCloseStopsTimers tests page teardown
func TestCloseStopsTimers(t *testing.T) {
	h := newHarness(t, 5*time.Second)
	c := h.controller()

	h.enter(t, c, "Alice")
	c.Close()
	assert.Equal(t, StateClosed, c.State())

	h.clock.Advance(2 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 5, c.Status(h.ctx).RemainingSeconds)
	assert.Zero(t, h.rec.redirectCount())

	//the lease stays so the page can be resumed
	_, ok := h.leases.Get(h.ctx, "r1:7")
	assert.True(t, ok)
}

// TestCartOperations tests quantity updates through the controller
func TestCartOperations(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))
	require.NoError(t, c.AddItem(itemA))
	require.NoError(t, c.AddItem(itemB))

	require.NoError(t, c.RemoveItem("a"))
	assert.Equal(t, "150.00", c.Status(h.ctx).CartTotal.String())

	require.NoError(t, c.UpdateQuantity("b", 0))
	assert.Equal(t, 1, c.Status(h.ctx).ItemCount)
	assert.ErrorIs(t, c.UpdateQuantity("b", 2), types.ErrItemNotFound)
}

// TestStalePageLeavesNewHolderAlone tests a page whose lease lapsed while its
// countdown lagged behind: another customer takes the table, and the old
// page's bill must neither succeed nor free the new holder's lease
func TestStalePageLeavesNewHolderAlone(t *testing.T) {
	h := newHarness(t, 10*time.Second)

	alice := h.controller()
	defer alice.Close()
	h.enter(t, alice, "Alice")
	require.NoError(t, alice.AddItem(itemA))

	//the wall clock runs past the lease while ticks are dropped
	h.clock.Advance(11 * time.Second)

	bob := h.controller()
	defer bob.Close()
	require.NoError(t, bob.Enter(h.ctx, "Bob", ""))
	bobSession := bob.Status(h.ctx).SessionID

	_, err := alice.GenerateBill(h.ctx)
	assert.ErrorIs(t, err, types.ErrSessionEnded)

	require.Eventually(t, func() bool { return alice.State() == StateExpired }, time.Second, time.Millisecond)
	assert.Empty(t, alice.Status(h.ctx).Cart)

	state := h.leases.CheckLock(h.ctx, "r1:7")
	assert.True(t, state.Locked, "the new holder keeps the table")
	assert.Equal(t, bobSession, state.SessionID)
	assert.Equal(t, StateActive, bob.State())
	assert.Contains(t, h.rec.titles(), "Session Expired")
}

// TestExtendAfterLeaseTaken tests that a stale page cannot extend someone
// else's lease
func TestExtendAfterLeaseTaken(t *testing.T) {
	h := newHarness(t, 10*time.Second)

	alice := h.controller()
	defer alice.Close()
	h.enter(t, alice, "Alice")

	h.clock.Advance(11 * time.Second)

	bob := h.controller()
	defer bob.Close()
	require.NoError(t, bob.Enter(h.ctx, "Bob", ""))
	before, ok := h.leases.Get(h.ctx, "r1:7")
	require.True(t, ok)

	h.clock.Advance(2 * time.Second)
	assert.ErrorIs(t, alice.ExtendSession(h.ctx), types.ErrSessionEnded)

	after, ok := h.leases.Get(h.ctx, "r1:7")
	require.True(t, ok)
	assert.Equal(t, before.ExpiresAt, after.ExpiresAt, "bob's lease is untouched")
	assert.Equal(t, StateExpired, alice.State())
}

// TestReleasedTableEndsPage tests that an active page notices its lease is gone
func TestReleasedTableEndsPage(t *testing.T) {
	h := newHarness(t, 2*time.Hour)
	c := h.controller()
	defer c.Close()

	h.enter(t, c, "Alice")
	require.NoError(t, c.AddItem(itemA))

	h.leases.Release(h.ctx, "r1:7")

	require.Eventually(t, func() bool { return c.State() == StateExpired }, time.Second, time.Millisecond)
	assert.Empty(t, c.Status(h.ctx).Cart)
	assert.ErrorIs(t, c.AddItem(itemA), types.ErrSessionEnded)
	require.Eventually(t, func() bool { return h.rec.redirectCount() == 1 }, time.Second, time.Millisecond)
}

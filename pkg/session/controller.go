package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/cart"
	"github.com/superma0035/zapdine/pkg/countdown"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/metrics"
	ztime "github.com/superma0035/zapdine/pkg/time"
	"github.com/superma0035/zapdine/pkg/types"
)

type State string

const (
	StateEntering State = "entering"
	StateBlocked  State = "blocked"
	StateActive   State = "active"
	StateExpiring State = "expiring" // active with low time, reported by Status only
	StateExpired  State = "expired"
	StateFinished State = "finished"
	StateClosed   State = "closed"
)

type Config struct {
	RestaurantID string
	TableNumber  string

	// one value drives both the lease length and the countdown budget
	Duration      time.Duration
	LowTime       time.Duration
	CheckInterval time.Duration
	TickInterval  time.Duration
	LandingPath   string

	Clock clockwork.Clock
}

func (c *Config) setDefaults() {
	if c.Duration <= 0 {
		c.Duration = lease.DefaultDuration
	}
	if c.LowTime <= 0 {
		c.LowTime = countdown.DefaultLowTimeThreshold
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = lease.DefaultCheckInterval
	}
	if c.TickInterval <= 0 {
		c.TickInterval = countdown.DefaultTickInterval
	}
	if c.LandingPath == "" {
		c.LandingPath = "/"
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
}

// order placed during the session
type PlacedOrder struct {
	ID    string       `json:"id"`
	Total types.Amount `json:"total"`
}

// final bill handed out when the session is finished
type Bill struct {
	SessionID    string           `json:"session_id"`
	TableID      string           `json:"table_id"`
	Holder       string           `json:"holder"`
	Orders       []PlacedOrder    `json:"orders"`
	OrderedTotal types.Amount     `json:"ordered_total"`
	OpenLines    []types.CartLine `json:"open_lines,omitempty"`
	OpenTotal    types.Amount     `json:"open_total"`
	Total        types.Amount     `json:"total"`
}

// point in time view of a page
type Status struct {
	State            State            `json:"state"`
	TableID          string           `json:"table_id"`
	RestaurantID     string           `json:"restaurant_id"`
	TableNumber      string           `json:"table_number"`
	Holder           string           `json:"holder"`
	SessionID        string           `json:"session_id,omitempty"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Countdown        string           `json:"countdown"`
	IsLowTime        bool             `json:"is_low_time"`
	Lock             types.LockState  `json:"lock"`
	LeaseRemaining   string           `json:"lease_remaining"`
	Cart             []types.CartLine `json:"cart"`
	CartTotal        types.Amount     `json:"cart_total"`
	ItemCount        int              `json:"item_count"`
	Orders           []PlacedOrder    `json:"orders,omitempty"`
}

// Controller is one customer's ordering page for one table
//
// Entering -> Active -> Expired | Finished, with Blocked while the table is in use
// expiry and explicit release serialize on mu: whichever runs first wins, the other is a no-op
type Controller struct {
	cfg     Config
	tableID string

	leases   *lease.Manager
	orders   OrderCreator
	nav      Navigator
	notifier Notifier

	mu        sync.Mutex
	state     State
	holder    string
	resumeID  string
	lease     types.Lease
	cart      *cart.Cart
	countdown *countdown.Countdown
	placing   bool
	placed    []PlacedOrder
	stopBg    context.CancelFunc

	// last lock state seen by the periodic check or an observer event
	// kept apart from mu so lease events raised while mu is held do not deadlock
	lockMu sync.Mutex
	lock   types.LockState
	// session id of the lease the page is running on, empty unless active
	owned string

	// guarded by mu, nil once the page is terminal
	unsubscribe func()
}

func NewController(cfg Config, leases *lease.Manager, orders OrderCreator, nav Navigator, notifier Notifier) *Controller {
	cfg.setDefaults()

	c := &Controller{
		cfg:      cfg,
		tableID:  types.TableID(cfg.RestaurantID, cfg.TableNumber),
		leases:   leases,
		orders:   orders,
		nav:      nav,
		notifier: notifier,
		state:    StateEntering,
	}
	c.unsubscribe = leases.Subscribe(func(ev types.LockEvent) {
		if ev.TableID == c.tableID {
			c.setLock(ev.State())
		}
	})
	return c
}

func (c *Controller) TableID() string {
	return c.tableID
}

func (c *Controller) RestaurantID() string {
	return c.cfg.RestaurantID
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Enter claims the table for holder, or resumes the page's own lease when
// resumeSessionID matches the stored one (a reload of the same page)
// a table held by anyone else blocks the page with ErrTableLocked, no cart is created
func (c *Controller) Enter(ctx context.Context, holder, resumeSessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateActive:
		return nil
	case StateEntering, StateBlocked:
	default:
		return types.ErrSessionEnded
	}

	c.holder = holder
	c.resumeID = resumeSessionID
	return c.enterLocked(ctx)
}

// tries again after the table was found in use
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateActive:
		return nil
	case StateBlocked, StateEntering:
		return c.enterLocked(ctx)
	default:
		return types.ErrSessionEnded
	}
}

func (c *Controller) enterLocked(ctx context.Context) error {
	state := c.leases.CheckLock(ctx, c.tableID)
	c.setLock(state)

	if state.Locked {
		if c.resumeID != "" && state.SessionID == c.resumeID {
			if l, ok := c.leases.Get(ctx, c.tableID); ok {
				budget := l.Remaining(c.cfg.Clock.Now())
				if budget > c.cfg.Duration {
					budget = c.cfg.Duration
				}
				c.holder = l.HolderName
				c.activateLocked(l, budget)
				log.Info().
					Str("table_id", c.tableID).
					Str("session_id", l.SessionID).
					Dur("remaining", budget).
					Msg("resumed ordering session")
				return nil
			}
		}
		c.blockLocked()
		return types.ErrTableLocked
	}

	l, err := c.leases.Acquire(ctx, c.tableID, c.holder)
	if err != nil {
		//lost the race between the check and the acquire
		c.blockLocked()
		return err
	}

	c.activateLocked(l, c.cfg.Duration)
	return nil
}

func (c *Controller) blockLocked() {
	c.state = StateBlocked
	c.notifier.Notify(
		"Table in use",
		"This table is currently being used by another customer. Please try again shortly.",
		SeverityWarning,
	)
}

func (c *Controller) activateLocked(l types.Lease, budget time.Duration) {
	bgCtx, cancel := context.WithCancel(context.Background())

	c.lease = l
	c.resumeID = l.SessionID
	c.setOwned(l.SessionID)
	c.cart = cart.New()
	c.countdown = countdown.New(budget,
		countdown.WithClock(c.cfg.Clock),
		countdown.WithTickInterval(c.cfg.TickInterval),
		countdown.WithLowTimeThreshold(c.cfg.LowTime),
		countdown.OnExpire(c.expire),
		countdown.OnLowTime(c.warnLowTime),
	)
	c.stopBg = cancel
	c.state = StateActive

	c.countdown.Start(bgCtx)
	go c.leases.Watch(bgCtx, c.tableID, c.cfg.CheckInterval, c.setLock)
}

// stops the countdown and the periodic lock check
// every caller leaves the page terminal, so lease events are no longer needed
func (c *Controller) stopLocked() {
	c.setOwned("")
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.countdown != nil {
		c.countdown.Stop()
	}
	if c.stopBg != nil {
		c.stopBg()
		c.stopBg = nil
	}
}

// countdown hit zero: clear the cart, release the table, send the customer away
func (c *Controller) expire() {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.endExpiredLocked()
	c.leases.ReleaseIfHeld(context.Background(), c.tableID, c.lease.SessionID)
	c.mu.Unlock()

	metrics.SessionEndTotal.WithLabelValues("expired").Inc()
	log.Info().
		Str("table_id", c.tableID).
		Str("session_id", c.lease.SessionID).
		Msg("ordering session expired")

	c.sendAway()
}

// the table lease lapsed or changed hands while the page was active:
// the page ends as expired without touching the table
func (c *Controller) leaseLost(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive || c.lease.SessionID != sessionID {
		return
	}
	c.loseLeaseLocked()
}

// checks under mu that the stored lease is still the page's own,
// ending the page when it is not
func (c *Controller) holdsLeaseLocked(ctx context.Context) bool {
	if l, ok := c.leases.Get(ctx, c.tableID); ok && l.SessionID == c.lease.SessionID {
		return true
	}
	c.loseLeaseLocked()
	return false
}

func (c *Controller) loseLeaseLocked() {
	c.endExpiredLocked()

	metrics.SessionEndTotal.WithLabelValues("lease_lost").Inc()
	log.Warn().
		Str("table_id", c.tableID).
		Str("session_id", c.lease.SessionID).
		Msg("table lease lost, ordering session ended")

	c.sendAway()
}

func (c *Controller) endExpiredLocked() {
	c.state = StateExpired
	c.cart.Clear()
	c.stopLocked()
}

func (c *Controller) sendAway() {
	c.notifier.Notify(
		"Session Expired",
		"Your dining session has expired. Redirecting to home page.",
		SeverityError,
	)
	c.nav.Redirect(c.cfg.LandingPath)
}

func (c *Controller) warnLowTime() {
	c.mu.Lock()
	active := c.state == StateActive
	c.mu.Unlock()
	if !active {
		return
	}

	c.notifier.Notify(
		"Session expiring soon",
		fmt.Sprintf("Your session ends in %s.", c.countdown.Format()),
		SeverityWarning,
	)
}

// records the latest lock state; a table that is free or held by another
// session while the page is active means the page's lease is gone
// observers can fire while mu is held, so the page is ended asynchronously
func (c *Controller) setLock(state types.LockState) {
	c.lockMu.Lock()
	c.lock = state
	owned := c.owned
	c.lockMu.Unlock()

	if owned != "" && (!state.Locked || state.SessionID != owned) {
		go c.leaseLost(owned)
	}
}

func (c *Controller) setOwned(sessionID string) {
	c.lockMu.Lock()
	c.owned = sessionID
	c.lockMu.Unlock()
}

// error for a cart or order action outside the active state
func (c *Controller) inactiveErr() error {
	switch c.state {
	case StateExpired, StateFinished, StateClosed:
		return types.ErrSessionEnded
	default:
		return types.ErrSessionNotActive
	}
}

func (c *Controller) AddItem(item types.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return c.inactiveErr()
	}
	c.cart.Add(item)
	c.notifier.Notify("Added to Cart", item.Name+" has been added to your cart.", SeverityInfo)
	return nil
}

func (c *Controller) UpdateQuantity(itemID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return c.inactiveErr()
	}
	return c.cart.UpdateQuantity(itemID, quantity)
}

func (c *Controller) RemoveItem(itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return c.inactiveErr()
	}
	return c.cart.Remove(itemID)
}

// PlaceOrder sends the cart to the order store
// on success the cart is cleared and the session keeps running
// on failure the cart and the lease are both kept so the customer can retry
func (c *Controller) PlaceOrder(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.state != StateActive {
		err := c.inactiveErr()
		c.mu.Unlock()
		return "", err
	}
	if c.placing {
		c.mu.Unlock()
		return "", types.ErrOrderInProgress
	}
	if c.cart.Empty() {
		c.mu.Unlock()
		return "", types.ErrEmptyCart
	}
	c.placing = true
	order := types.NewOrderFromCart(c.cfg.RestaurantID, c.cfg.TableNumber, c.cart.Lines())
	c.mu.Unlock()

	//the order store is not called under mu so expiry is never held up by it
	orderID, err := c.orders.CreateOrder(ctx, order)

	c.mu.Lock()
	c.placing = false
	if err != nil {
		c.mu.Unlock()
		metrics.OrdersPlacedTotal.WithLabelValues("failure").Inc()
		log.Error().Err(err).Str("table_id", c.tableID).Msg("order creation failed")

		c.notifier.Notify("Order Failed", "Failed to place order. Please try again.", SeverityError)
		if !errors.Is(err, types.ErrOrderCreationFailed) {
			err = fmt.Errorf("%w: %v", types.ErrOrderCreationFailed, err)
		}
		return "", err
	}

	c.placed = append(c.placed, PlacedOrder{ID: orderID, Total: order.TotalAmount})
	if c.state == StateActive {
		c.cart.Clear()
	}
	c.mu.Unlock()

	metrics.OrdersPlacedTotal.WithLabelValues("success").Inc()
	log.Info().
		Str("table_id", c.tableID).
		Str("order_id", orderID).
		Str("total", order.TotalAmount.String()).
		Msg("order placed")

	c.notifier.Notify("Order Placed Successfully!", "Your order has been sent to the kitchen.", SeverityInfo)
	return orderID, nil
}

// GenerateBill ends the session: releases the table, stops the countdown
// and sends the customer to the landing page
func (c *Controller) GenerateBill(ctx context.Context) (Bill, error) {
	c.mu.Lock()
	if c.state != StateActive {
		err := c.inactiveErr()
		c.mu.Unlock()
		return Bill{}, err
	}
	if !c.holdsLeaseLocked(ctx) {
		c.mu.Unlock()
		return Bill{}, types.ErrSessionEnded
	}
	c.state = StateFinished

	bill := Bill{
		SessionID: c.lease.SessionID,
		TableID:   c.tableID,
		Holder:    c.holder,
		Orders:    append([]PlacedOrder(nil), c.placed...),
		OpenLines: c.cart.Lines(),
		OpenTotal: c.cart.Total(),
	}
	for _, o := range bill.Orders {
		bill.OrderedTotal += o.Total
	}
	bill.Total = bill.OrderedTotal + bill.OpenTotal

	c.stopLocked()
	c.leases.ReleaseIfHeld(ctx, c.tableID, bill.SessionID)
	c.mu.Unlock()

	metrics.SessionEndTotal.WithLabelValues("billed").Inc()
	log.Info().
		Str("table_id", c.tableID).
		Str("session_id", bill.SessionID).
		Str("total", bill.Total.String()).
		Msg("bill generated")

	c.notifier.Notify("Bill Generated", "Total amount: ₹"+bill.Total.String(), SeverityInfo)
	c.nav.Redirect(c.cfg.LandingPath)
	return bill, nil
}

// ExtendSession pushes the lease out by the full duration and refills the countdown
func (c *Controller) ExtendSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return c.inactiveErr()
	}

	l, ok := c.leases.ExtendIfHeld(ctx, c.tableID, c.lease.SessionID)
	if !ok {
		c.loseLeaseLocked()
		return types.ErrSessionEnded
	}
	c.lease = l
	c.countdown.Reset(c.cfg.Duration)

	c.notifier.Notify(
		"Session Extended",
		fmt.Sprintf("Your session has been extended by %s.", ztime.FormatRemaining(c.cfg.Duration)),
		SeverityInfo,
	)
	return nil
}

// Close tears the page down: the countdown and lock check stop, the lease is left
// in place so the same customer can resume after a reload
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopLocked()
	if c.state == StateEntering || c.state == StateBlocked || c.state == StateActive {
		c.state = StateClosed
	}
	c.mu.Unlock()
}

func (c *Controller) Status(ctx context.Context) Status {
	c.mu.Lock()
	st := Status{
		State:        c.state,
		TableID:      c.tableID,
		RestaurantID: c.cfg.RestaurantID,
		TableNumber:  c.cfg.TableNumber,
		Holder:       c.holder,
		Orders:       append([]PlacedOrder(nil), c.placed...),
	}
	if c.state != StateEntering && c.state != StateBlocked {
		st.SessionID = c.lease.SessionID
	}
	if c.countdown != nil {
		st.RemainingSeconds = c.countdown.Remaining()
		st.Countdown = c.countdown.Format()
		st.IsLowTime = c.countdown.IsLowTime()
		if c.state == StateActive && st.IsLowTime {
			st.State = StateExpiring
		}
	}
	if c.cart != nil {
		st.Cart = c.cart.Lines()
		st.CartTotal = c.cart.Total()
		st.ItemCount = c.cart.ItemCount()
	}
	c.mu.Unlock()

	c.lockMu.Lock()
	st.Lock = c.lock
	c.lockMu.Unlock()

	st.LeaseRemaining = c.leases.FormatRemaining(ctx, c.tableID)
	return st
}

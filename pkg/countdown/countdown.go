package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/superma0035/zapdine/pkg/metrics"
	ztime "github.com/superma0035/zapdine/pkg/time"
)

const (
	DefaultTickInterval     = time.Second
	DefaultLowTimeThreshold = 5 * time.Minute
)

// Countdown is the second-resolution timer of an ordering page
// it loses exactly one second per tick, never goes below zero
// and fires its expiry callback exactly once
type Countdown struct {
	clock    clockwork.Clock
	interval time.Duration
	lowTime  int

	mu        sync.Mutex
	remaining int
	expired   bool
	stopped   bool
	lowFired  bool
	onExpire  func()
	onLowTime func()

	done     chan struct{}
	doneOnce sync.Once
}

type Option func(*Countdown)

func WithClock(c clockwork.Clock) Option {
	return func(cd *Countdown) { cd.clock = c }
}

// period between ticks, each tick still only takes one second off
func WithTickInterval(d time.Duration) Option {
	return func(cd *Countdown) {
		if d > 0 {
			cd.interval = d
		}
	}
}

// remaining time below which the countdown counts as low
func WithLowTimeThreshold(d time.Duration) Option {
	return func(cd *Countdown) {
		if d > 0 {
			cd.lowTime = int(d / time.Second)
		}
	}
}

// called once, from the ticking goroutine, when remaining hits zero
func OnExpire(fn func()) Option {
	return func(cd *Countdown) { cd.onExpire = fn }
}

// called once when remaining first drops below the low time threshold
func OnLowTime(fn func()) Option {
	return func(cd *Countdown) { cd.onLowTime = fn }
}

func New(budget time.Duration, opts ...Option) *Countdown {
	remaining := int(budget / time.Second)
	if remaining < 0 {
		remaining = 0
	}

	c := &Countdown{
		clock:     clockwork.NewRealClock(),
		interval:  DefaultTickInterval,
		lowTime:   int(DefaultLowTimeThreshold / time.Second),
		remaining: remaining,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// takes one second off, firing callbacks as thresholds are crossed
// returns false once the countdown has expired or been stopped
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	if c.expired || c.stopped {
		c.mu.Unlock()
		return false
	}

	if c.remaining > 0 {
		c.remaining--
	}

	var fire []func()
	if c.remaining > 0 && c.remaining < c.lowTime && !c.lowFired {
		c.lowFired = true
		if c.onLowTime != nil {
			fire = append(fire, c.onLowTime)
		}
	}

	expiredNow := c.remaining == 0
	if expiredNow {
		c.expired = true
		if c.onExpire != nil {
			fire = append(fire, c.onExpire)
		}
	}
	c.mu.Unlock()

	if expiredNow {
		metrics.CountdownExpireTotal.Inc()
		c.closeDone()
	}
	for _, fn := range fire {
		fn()
	}
	return !expiredNow
}

// ticks every interval until expiry, Stop or ctx is done
func (c *Countdown) Run(ctx context.Context) {
	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			if !c.Tick() {
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runs the countdown in its own goroutine
func (c *Countdown) Start(ctx context.Context) {
	go c.Run(ctx)
}

// cancels the countdown without firing expiry
// safe to call any number of times, including from the expiry callback
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
	c.closeDone()
}

// refills the countdown, used when the session is extended
// has no effect once expired or stopped
func (c *Countdown) Reset(budget time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.expired || c.stopped {
		return
	}
	c.remaining = int(budget / time.Second)
	c.lowFired = false
}

// closed once the countdown has expired or been stopped
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) IsLowTime() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining < c.lowTime
}

func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// remaining time as "H:MM:SS" or "M:SS"
func (c *Countdown) Format() string {
	return ztime.FormatCountdown(c.Remaining())
}

func (c *Countdown) closeDone() {
	c.doneOnce.Do(func() { close(c.done) })
}

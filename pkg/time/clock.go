package time

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// clock used by leases, countdowns and lock checks
// wraps clockwork so tests can move time with a fake clock
// lease expiry is wall clock time since records outlive the process
type Clock struct {
	clockwork.Clock
}

func NewClock() *Clock {
	return &Clock{Clock: clockwork.NewRealClock()}
}

// clock backed by the given clockwork clock (a fake one in tests)
func NewClockFrom(c clockwork.Clock) *Clock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Clock{Clock: c}
}

// returns the expiration time given a TTL
func (c *Clock) ExpiresAt(ttl time.Duration) time.Time {
	return c.Now().Add(ttl)
}

// time until expiresAt, zero once it has passed
func (c *Clock) Remaining(expiresAt time.Time) time.Duration {
	d := expiresAt.Sub(c.Now())
	if d < 0 {
		return 0
	}
	return d
}

// renders a lease's remaining time as "45m" or "1h 30m"
// anything at or below zero is "Expired"
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "Expired"
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// renders countdown seconds as "H:MM:SS", or "M:SS" when there are no hours
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

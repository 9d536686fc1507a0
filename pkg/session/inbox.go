package session

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type Notification struct {
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

// Inbox queues a page's notifications and redirect until the front end polls them
// it is the Notifier and Navigator of pages served over the network
type Inbox struct {
	clock clockwork.Clock

	mu       sync.Mutex
	pending  []Notification
	redirect string
}

func NewInbox(clock clockwork.Clock) *Inbox {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Inbox{clock: clock}
}

func (i *Inbox) Notify(title, message string, severity Severity) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.pending = append(i.pending, Notification{
		Title:    title,
		Message:  message,
		Severity: severity,
		At:       i.clock.Now(),
	})
}

// the first redirect sticks, a page only navigates away once
func (i *Inbox) Redirect(path string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.redirect == "" {
		i.redirect = path
	}
}

// returns and forgets the queued notifications
func (i *Inbox) Drain() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.pending
	i.pending = nil
	return out
}

// pending redirect, empty when the page should stay
func (i *Inbox) RedirectPath() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.redirect
}

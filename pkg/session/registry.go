package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/types"
)

// an ordering page served over the network
// its notifications and redirect wait in the inbox until polled
type Page struct {
	ID string
	*Controller
	inbox *Inbox

	// unix nanos of the last Open or Get
	lastSeen   atomic.Int64
	redirected atomic.Bool
}

// status plus everything queued for the front end since the last poll
type PageStatus struct {
	PageID string `json:"page_id"`
	Status
	Notifications []Notification `json:"notifications,omitempty"`
	Redirect      string         `json:"redirect,omitempty"`
}

func (p *Page) Poll(ctx context.Context) PageStatus {
	st := PageStatus{
		PageID:        p.ID,
		Status:        p.Status(ctx),
		Notifications: p.inbox.Drain(),
		Redirect:      p.inbox.RedirectPath(),
	}
	if st.Redirect != "" {
		p.redirected.Store(true)
	}
	return st
}

func (p *Page) touch(now time.Time) {
	p.lastSeen.Store(now.UnixNano())
}

// active pages end on their own countdown and are never stale
// ended pages go as soon as the front end has seen their redirect
func (p *Page) stale(now time.Time, idle time.Duration) bool {
	switch p.State() {
	case StateActive:
		return false
	case StateExpired, StateFinished, StateClosed:
		if p.redirected.Load() {
			return true
		}
	}
	return now.Sub(time.Unix(0, p.lastSeen.Load())) >= idle
}

const DefaultPageIdleTimeout = 10 * time.Minute

type RegistryOption func(*Registry)

// how long a page that is not active is kept without being polled
func WithIdleTimeout(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.idle = d
		}
	}
}

// Registry owns the open pages of the process, keyed by page id
type Registry struct {
	leases   *lease.Manager
	orders   OrderCreator
	defaults Config
	idle     time.Duration

	mu    sync.RWMutex
	pages map[string]*Page
}

// defaults supplies every page's timing, restaurant and table come per Open
func NewRegistry(leases *lease.Manager, orders OrderCreator, defaults Config, opts ...RegistryOption) *Registry {
	if defaults.Clock == nil {
		defaults.Clock = clockwork.NewRealClock()
	}
	r := &Registry{
		leases:   leases,
		orders:   orders,
		defaults: defaults,
		idle:     DefaultPageIdleTimeout,
		pages:    make(map[string]*Page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a page for a table and enters it
// the page is returned and kept even when the table is in use, so it can Retry
func (r *Registry) Open(ctx context.Context, restaurantID, tableNumber, holder, resumeSessionID string) (*Page, error) {
	cfg := r.defaults
	cfg.RestaurantID = restaurantID
	cfg.TableNumber = tableNumber

	inbox := NewInbox(cfg.Clock)
	page := &Page{
		ID:         uuid.NewString(),
		Controller: NewController(cfg, r.leases, r.orders, inbox, inbox),
		inbox:      inbox,
	}
	page.touch(cfg.Clock.Now())

	r.mu.Lock()
	r.pages[page.ID] = page
	r.mu.Unlock()
	metrics.PagesActive.Inc()

	log.Debug().
		Str("page_id", page.ID).
		Str("table_id", page.TableID()).
		Msg("page opened")

	return page, page.Enter(ctx, holder, resumeSessionID)
}

func (r *Registry) Get(pageID string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[pageID]
	if !ok {
		return nil, types.ErrPageNotFound
	}
	page.touch(r.defaults.Clock.Now())
	return page, nil
}

// tears a page down and forgets it
func (r *Registry) Close(pageID string) error {
	r.mu.Lock()
	page, ok := r.pages[pageID]
	delete(r.pages, pageID)
	r.mu.Unlock()

	if !ok {
		return types.ErrPageNotFound
	}
	page.Close()
	metrics.PagesActive.Dec()

	log.Debug().Str("page_id", pageID).Msg("page closed")
	return nil
}

// Prune closes and forgets ended pages whose redirect was polled, and pages
// that are not active and went unpolled for the idle timeout
func (r *Registry) Prune() int {
	now := r.defaults.Clock.Now()

	r.mu.Lock()
	var stale []*Page
	for id, page := range r.pages {
		if page.stale(now, r.idle) {
			stale = append(stale, page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, page := range stale {
		page.Close()
		metrics.PagesActive.Dec()
	}

	if len(stale) > 0 {
		log.Info().Int("pruned", len(stale)).Msg("pruned stale pages")
	}
	return len(stale)
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*Page)
	r.mu.Unlock()

	for _, page := range pages {
		page.Close()
		metrics.PagesActive.Dec()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

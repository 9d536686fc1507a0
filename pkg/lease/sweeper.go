package lease

import (
	"context"
	"fmt"
	tm "time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/storage"
)

const DefaultSweepInterval = tm.Minute

// Sweeper periodically runs a lock check on every stored table
// so leases of abandoned pages are removed even when nobody looks at the table
type Sweeper struct {
	manager   *Manager
	lister    storage.Lister
	scheduler gocron.Scheduler
}

func NewSweeper(manager *Manager, lister storage.Lister, interval tm.Duration, clock clockwork.Clock) (*Sweeper, error) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &Sweeper{
		manager:   manager,
		lister:    lister,
		scheduler: scheduler,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.Sweep(context.Background()) }),
		gocron.WithName("lease-sweeper"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		scheduler.Shutdown()
		return nil, fmt.Errorf("schedule sweep: %w", err)
	}

	return s, nil
}

// Schedule runs task every interval on the sweeper's scheduler, for other
// housekeeping that should live and die with lease sweeping
func (s *Sweeper) Schedule(name string, interval tm.Duration, task func()) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	return nil
}

func (s *Sweeper) Start() {
	s.scheduler.Start()
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

// removes every expired lease in the store, returns how many went away
func (s *Sweeper) Sweep(ctx context.Context) int {
	metrics.SweepRunsTotal.Inc()

	removed := 0
	for _, tableID := range s.lister.Tables(ctx) {
		if _, expired := s.manager.checkLock(ctx, tableID); expired {
			removed++
		}
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("swept expired leases")
	}
	return removed
}

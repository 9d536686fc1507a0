package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	pb "github.com/superma0035/zapdine/api/v1"
)

type Lock struct {
	client    *Client
	tableID   string
	sessionID string

	mu        sync.Mutex
	expiresAt time.Time
}

func (l *Lock) TableID() string {
	return l.tableID
}

func (l *Lock) SessionID() string {
	return l.sessionID
}

func (l *Lock) ExpiresAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.expiresAt
}

func (l *Lock) Release(ctx context.Context) error {
	return l.client.Release(ctx, l.tableID)
}

// Extend pushes the lease expiry out by a full duration. It reports false
// once the lease is gone.
func (l *Lock) Extend(ctx context.Context) (bool, error) {
	resp, err := l.client.client.Extend(ctx, &pb.TableRequest{TableId: l.tableID})
	if err != nil {
		return false, fmt.Errorf("extend lock: %w", err)
	}
	if !resp.Extended {
		return false, nil
	}
	l.mu.Lock()
	l.expiresAt = resp.Lease.GetExpiresAt().AsTime()
	l.mu.Unlock()
	return true, nil
}

// KeepAlive extends the lease every interval until ctx is done, the client
// stops or the lease is lost. The returned channel is closed when the lease
// is lost.
func (l *Lock) KeepAlive(ctx context.Context, interval time.Duration) <-chan struct{} {
	lost := make(chan struct{})

	go func() {
		var failureCount int
		for sleepOrDone(ctx, l.client.stopped(), interval) {
			ok, err := l.Extend(ctx)
			if err != nil {
				failureCount++
				log.Warn().Err(err).Str("table_id", l.tableID).Int("attempt", failureCount).Msg("lease extend failed")
				if failureCount >= 2 {
					log.Error().Str("table_id", l.tableID).Msg("lease may expire soon, extend keeps failing")
				}
				continue
			}
			if !ok {
				log.Warn().Str("table_id", l.tableID).Msg("lease lost")
				close(lost)
				return
			}
			if failureCount > 0 {
				log.Info().Int("failures", failureCount).Msg("lease extend recovered")
				failureCount = 0
			}
		}
	}()

	return lost
}

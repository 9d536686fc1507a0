package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/superma0035/zapdine/pkg/types"
)

// LogPublisher writes events to a logger. Used when no broker is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event types.LockEvent) error {
	p.logger.Info().
		Str("event", event.Type.String()).
		Str("table_id", event.TableID).
		Str("session_id", event.SessionID).
		Str("holder", event.Holder).
		Time("expires_at", event.ExpiresAt).
		Msg("lease event")
	return nil
}

func (p *LogPublisher) Close() error { return nil }

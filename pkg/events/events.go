// Package events fans lease lifecycle changes out to other services.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/superma0035/zapdine/pkg/types"
)

// Publisher delivers lease events somewhere outside the process.
type Publisher interface {
	Publish(ctx context.Context, event types.LockEvent) error
	Close() error
}

// Envelope is the wire form of a lease event.
type Envelope struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	TableID   string    `json:"table_id"`
	SessionID string    `json:"session_id,omitempty"`
	Holder    string    `json:"holder,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEnvelope(event types.LockEvent) Envelope {
	return Envelope{
		EventID:   uuid.NewString(),
		EventType: event.Type.String(),
		TableID:   event.TableID,
		SessionID: event.SessionID,
		Holder:    event.Holder,
		ExpiresAt: event.ExpiresAt.UTC(),
		Timestamp: event.At.UTC(),
	}
}

// subject for an event under prefix, e.g. zapdine.lease.acquired
func Subject(prefix string, t types.EventType) string {
	return prefix + ".lease." + t.String()
}

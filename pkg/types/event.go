package types

import "time"

// type of lease lifecycle event
type EventType uint

const (
	EventLeaseAcquired EventType = iota + 1
	EventLeaseReleased
	EventLeaseExtended
	EventLeaseExpired
)

func (t EventType) String() string {
	switch t {
	case EventLeaseAcquired:
		return "acquired"
	case EventLeaseReleased:
		return "released"
	case EventLeaseExtended:
		return "extended"
	case EventLeaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// emitted by the lease manager whenever a table's lock state changes
type LockEvent struct {
	Type      EventType
	TableID   string
	SessionID string
	Holder    string
	ExpiresAt time.Time
	At        time.Time
}

// lock state right after the event
func (e LockEvent) State() LockState {
	switch e.Type {
	case EventLeaseAcquired, EventLeaseExtended:
		return LockState{
			Locked:    true,
			Holder:    e.Holder,
			SessionID: e.SessionID,
			ExpiresAt: e.ExpiresAt,
		}
	default:
		return LockState{}
	}
}

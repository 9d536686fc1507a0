package types

import "time"

// a lease is one ordering session's time-bound claim on a table
// at most one unexpired lease exists per table in a given store
// expiry is wall clock time because the record is shared by every page on the device
type Lease struct {
	SessionID  string    `json:"session_id"`
	HolderName string    `json:"holder_by"`
	TableID    string    `json:"table_id"`
	ExpiresAt  time.Time `json:"expiry"`
	AcquiredAt time.Time `json:"lockedAt"`
}

// checks if the lease has expired at now
// a lease expiring exactly at now is already expired
func (l Lease) IsExpired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}

// time left on the lease, never negative
func (l Lease) Remaining(now time.Time) time.Duration {
	d := l.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// result of a lock check on a table
// holder and expiry are only set when locked
type LockState struct {
	Locked    bool      `json:"locked"`
	Holder    string    `json:"holder,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// builds the lease key for a table of a restaurant
func TableID(restaurantID, tableNumber string) string {
	return restaurantID + ":" + tableNumber
}

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/types"
)

func testLease(table, holder string) types.Lease {
	now := time.Date(2026, 5, 4, 19, 30, 0, 0, time.UTC)
	return types.Lease{
		SessionID:  "session-" + table + "-1",
		HolderName: holder,
		TableID:    table,
		AcquiredAt: now,
		ExpiresAt:  now.Add(2 * time.Hour),
	}
}

// backend whose every call fails
type brokenBackend struct{}

var errDisk = errors.New("quota exceeded")

func (brokenBackend) Load(context.Context, string) ([]byte, error)   { return nil, errDisk }
func (brokenBackend) Save(context.Context, string, []byte) error     { return errDisk }
func (brokenBackend) Delete(context.Context, string) error           { return errDisk }
func (brokenBackend) Keys(context.Context, string) ([]string, error) { return nil, errDisk }
func (brokenBackend) Close() error                                   { return nil }

// TestStorePutGetRemove tests the basic record lifecycle
func TestStorePutGetRemove(t *testing.T) {
	ctx := context.Background()
	s := New(DriverMemory, NewMemory())

	_, ok := s.Get(ctx, "T7")
	assert.False(t, ok, "empty store has no lease")

	lease := testLease("T7", "Alice")
	s.Put(ctx, "T7", lease)

	got, ok := s.Get(ctx, "T7")
	require.True(t, ok)
	assert.Equal(t, lease.SessionID, got.SessionID)
	assert.Equal(t, "Alice", got.HolderName)
	assert.True(t, lease.ExpiresAt.Equal(got.ExpiresAt))

	s.Remove(ctx, "T7")
	_, ok = s.Get(ctx, "T7")
	assert.False(t, ok)

	//removing again is a no-op
	s.Remove(ctx, "T7")
}

// TestStoreLastWriterWins tests that put overwrites unconditionally
func TestStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := New(DriverMemory, NewMemory())

	s.Put(ctx, "T1", testLease("T1", "Alice"))
	s.Put(ctx, "T1", testLease("T1", "Bob"))

	got, ok := s.Get(ctx, "T1")
	require.True(t, ok)
	assert.Equal(t, "Bob", got.HolderName)
}

// TestStoreRecordLayout tests the persisted JSON field names
func TestStoreRecordLayout(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(DriverMemory, mem)

	s.Put(ctx, "T7", testLease("T7", "Alice"))

	raw, err := mem.Load(ctx, "table-lock-T7")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"session_id": "session-T7-1",
		"holder_by": "Alice",
		"table_id": "T7",
		"expiry": "2026-05-04T21:30:00Z",
		"lockedAt": "2026-05-04T19:30:00Z"
	}`, string(raw))
}

// TestStoreCorruptRecord tests that a bad record reads as absent and is deleted
func TestStoreCorruptRecord(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(DriverMemory, mem)

	before := testutil.ToFloat64(metrics.StoreErrorsTotal.WithLabelValues(DriverMemory, "decode"))

	require.NoError(t, mem.Save(ctx, Key("T3"), []byte("{not json")))

	_, ok := s.Get(ctx, "T3")
	assert.False(t, ok)

	raw, err := mem.Load(ctx, Key("T3"))
	require.NoError(t, err)
	assert.Nil(t, raw, "corrupt key should be deleted")

	after := testutil.ToFloat64(metrics.StoreErrorsTotal.WithLabelValues(DriverMemory, "decode"))
	assert.Equal(t, before+1, after)
}

// TestStoreIncompleteRecord tests that a record without expiry is treated as corrupt
func TestStoreIncompleteRecord(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(DriverMemory, mem)

	require.NoError(t, mem.Save(ctx, Key("T4"), []byte(`{"session_id":"s","holder_by":"x"}`)))

	_, ok := s.Get(ctx, "T4")
	assert.False(t, ok)
}

// TestStoreSwallowsBackendErrors tests that failures never reach the caller
func TestStoreSwallowsBackendErrors(t *testing.T) {
	ctx := context.Background()
	s := New("broken", brokenBackend{})
	before := testutil.ToFloat64(metrics.StoreErrorsTotal.WithLabelValues("broken", "put"))

	assert.NotPanics(t, func() {
		s.Put(ctx, "T1", testLease("T1", "Alice"))
		s.Remove(ctx, "T1")
	})

	_, ok := s.Get(ctx, "T1")
	assert.False(t, ok)
	assert.Empty(t, s.Tables(ctx))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StoreErrorsTotal.WithLabelValues("broken", "put")))
}

// TestStoreTables tests listing table ids
func TestStoreTables(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(DriverMemory, mem)

	s.Put(ctx, "r1:1", testLease("r1:1", "A"))
	s.Put(ctx, "r1:2", testLease("r1:2", "B"))
	require.NoError(t, mem.Save(ctx, "unrelated", []byte("x")))

	assert.Equal(t, []string{"r1:1", "r1:2"}, s.Tables(ctx))
}

// TestOpenUnknownDriver tests driver selection
func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "etcd"})
	assert.Error(t, err)

	s, err := Open(context.Background(), Options{Driver: DriverMemory})
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/types"
)

// every lease record lives under this prefix followed by the table id
const KeyPrefix = "table-lock-"

func Key(tableID string) string {
	return KeyPrefix + tableID
}

// raw byte store underneath a Store
// Load returns nil, nil when the key does not exist
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// LeaseStore is the persistence the lease manager depends on
// put is last writer wins, there is no compare-and-set
// failures never reach the caller: a read that fails is absent, a write that fails did nothing
type LeaseStore interface {
	Get(ctx context.Context, tableID string) (types.Lease, bool)
	Put(ctx context.Context, tableID string, lease types.Lease)
	Remove(ctx context.Context, tableID string)
}

// implemented by stores that can enumerate their tables
type Lister interface {
	Tables(ctx context.Context) []string
}

// Store encodes leases as JSON records over a Backend
// and swallows (logs) every backend and decode error
type Store struct {
	backend Backend
	name    string
}

func New(name string, backend Backend) *Store {
	return &Store{backend: backend, name: name}
}

func (s *Store) Get(ctx context.Context, tableID string) (types.Lease, bool) {
	key := Key(tableID)

	raw, err := s.backend.Load(ctx, key)
	if err != nil {
		s.logFailure("get", tableID, fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err))
		return types.Lease{}, false
	}
	if raw == nil {
		return types.Lease{}, false
	}

	lease, err := Decode(raw)
	if err != nil {
		//bad record, drop it so the table becomes free
		s.logFailure("decode", tableID, err)
		if err := s.backend.Delete(ctx, key); err != nil {
			s.logFailure("remove", tableID, fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err))
		}
		return types.Lease{}, false
	}

	return lease, true
}

func (s *Store) Put(ctx context.Context, tableID string, lease types.Lease) {
	data, err := Encode(lease)
	if err != nil {
		s.logFailure("encode", tableID, err)
		return
	}

	if err := s.backend.Save(ctx, Key(tableID), data); err != nil {
		s.logFailure("put", tableID, fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err))
	}
}

func (s *Store) Remove(ctx context.Context, tableID string) {
	if err := s.backend.Delete(ctx, Key(tableID)); err != nil {
		s.logFailure("remove", tableID, fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err))
	}
}

// table ids of every stored record, expired or not
func (s *Store) Tables(ctx context.Context) []string {
	keys, err := s.backend.Keys(ctx, KeyPrefix)
	if err != nil {
		s.logFailure("list", "", fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err))
		return nil
	}

	tables := make([]string, 0, len(keys))
	for _, k := range keys {
		tables = append(tables, strings.TrimPrefix(k, KeyPrefix))
	}
	return tables
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) logFailure(op, tableID string, err error) {
	metrics.StoreErrorsTotal.WithLabelValues(s.name, op).Inc()
	log.Warn().
		Err(err).
		Str("store", s.name).
		Str("op", op).
		Str("table_id", tableID).
		Msg("lease store operation failed, continuing")
}

// serializes a lease into its stored record
func Encode(lease types.Lease) ([]byte, error) {
	data, err := json.Marshal(lease)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptRecord, err)
	}
	return data, nil
}

// parses a stored record
// a record without a session id or expiry is as bad as one that fails to parse
func Decode(data []byte) (types.Lease, error) {
	var lease types.Lease
	if err := json.Unmarshal(data, &lease); err != nil {
		return types.Lease{}, fmt.Errorf("%w: %v", types.ErrCorruptRecord, err)
	}
	if lease.SessionID == "" || lease.ExpiresAt.IsZero() {
		return types.Lease{}, fmt.Errorf("%w: missing session_id or expiry", types.ErrCorruptRecord)
	}
	return lease, nil
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltDBPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBoltDB(dir)
	require.NoError(t, err)

	s := New(DriverBolt, b)
	s.Put(ctx, "T7", testLease("T7", "Alice"))
	require.NoError(t, s.Close())

	//reopen, record should still be there
	b, err = OpenBoltDB(dir)
	require.NoError(t, err)
	defer b.Close()

	s = New(DriverBolt, b)
	got, ok := s.Get(ctx, "T7")
	require.True(t, ok)
	assert.Equal(t, "Alice", got.HolderName)
}

func TestBoltDBKeysAndDelete(t *testing.T) {
	ctx := context.Background()

	b, err := OpenBoltDB(t.TempDir())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Save(ctx, "table-lock-a", []byte("1")))
	require.NoError(t, b.Save(ctx, "table-lock-b", []byte("2")))
	require.NoError(t, b.Save(ctx, "other", []byte("3")))

	keys, err := b.Keys(ctx, KeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"table-lock-a", "table-lock-b"}, keys)

	require.NoError(t, b.Delete(ctx, "table-lock-a"))
	v, err := b.Load(ctx, "table-lock-a")
	require.NoError(t, err)
	assert.Nil(t, v)

	//deleting a missing key is fine
	assert.NoError(t, b.Delete(ctx, "table-lock-a"))
}

func TestBoltDBCorruptRecord(t *testing.T) {
	ctx := context.Background()

	b, err := OpenBoltDB(t.TempDir())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Save(ctx, Key("T9"), []byte("garbage")))

	s := New(DriverBolt, b)
	_, ok := s.Get(ctx, "T9")
	assert.False(t, ok)

	v, err := b.Load(ctx, Key("T9"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":2}`)))
	value, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), value)

	require.NoError(t, s.Delete(ctx, "k"))
	assert.ErrorIs(t, s.Delete(ctx, "k"), ErrKeyNotFound)
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user:a:product:2", []byte("b")))
	require.NoError(t, s.Set(ctx, "user:a:product:1", []byte("a")))
	require.NoError(t, s.Set(ctx, "user:a:notification:1", []byte("n")))
	require.NoError(t, s.Set(ctx, "user:b:product:1", []byte("x")))

	entries, err := s.GetByPrefix(ctx, "user:a:product:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "user:a:product:1", entries[0].Key)
	assert.Equal(t, "user:a:product:2", entries[1].Key)

	entries, err = s.GetByPrefix(ctx, "user:z:")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'z'

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	value[0] = 'z'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_HonorsCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.Set(ctx, "k", []byte("v")))
	_, err := s.Get(ctx, "k")
	assert.Error(t, err)
}

package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "lang", []byte("vi")))

	value, err := store.Get(ctx, "lang")
	require.NoError(t, err)
	assert.Equal(t, []byte("vi"), value)

	require.NoError(t, store.Set(ctx, "lang", []byte("ja")))
	value, err = store.Get(ctx, "lang")
	require.NoError(t, err)
	assert.Equal(t, []byte("ja"), value)

	require.NoError(t, store.Delete(ctx, "lang"))
	_, err = store.Get(ctx, "lang")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting a missing key is fine
	require.NoError(t, store.Delete(ctx, "lang"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("smart_fridge")
	require.NoError(t, store.Set(ctx, "key", original))
	original[0] = 'X'

	stored, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("smart_fridge"), stored)

	// mutating the returned slice must not poison the store either
	stored[0] = 'Y'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("smart_fridge"), again)
}

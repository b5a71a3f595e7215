package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "fridge.db")
	ctx := context.Background()

	store, closeStore, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "smart_fridge_items", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "smart_fridge_items", []byte(`[{"id":"1"}]`)))

	value, err := store.Get(ctx, "smart_fridge_items")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Delete(ctx, "smart_fridge_items"))
	_, err = store.Get(ctx, "smart_fridge_items")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "lang", []byte("vi")))
	require.NoError(t, closeStore())

	// values survive reopening the file
	store, closeStore, err = NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer closeStore()

	value, err = store.Get(ctx, "lang")
	require.NoError(t, err)
	assert.Equal(t, []byte("vi"), value)
}

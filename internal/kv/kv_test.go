package kv_test

import (
	"context"
	"testing"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	t.Run("get before set", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userProfile", `{"name":"John"}`))

		value, err := store.Get(ctx, "userProfile")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"John"}`, value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userProfile", "first"))
		require.NoError(t, store.Set(ctx, "userProfile", "second"))

		value, err := store.Get(ctx, "userProfile")
		require.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "x"))
		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		// Deleting an absent key is not an error.
		assert.NoError(t, store.Delete(ctx, "never-set"))
	})
}

//go:build unit

package pendingstore_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/pending"
	"storefront/internal/infra"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/pendingstore"
	"storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *pendingstore.Store {
	return pendingstore.NewStore(kv.NewMemoryStore(), time.Minute)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("save/get round trip", func(t *testing.T) {
		store := newStore()
		action := builder.MustPendingAction(t)

		require.NoError(t, store.Save(ctx, userID, action))

		got, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, pending.KindAddToCart, got.Kind())
		assert.Equal(t, "P1", got.ProductID())
		assert.Equal(t, "M", got.Variant())
		assert.Equal(t, "/products/P1", got.RedirectPath())
	})

	t.Run("save overwrites the previous action", func(t *testing.T) {
		store := newStore()
		first := builder.MustPendingAction(t)
		second, err := pending.NewAction(pending.KindAddToWishlist, "P9", "", 1, "/products/P9")
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, userID, first))
		require.NoError(t, store.Save(ctx, userID, second))

		got, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, pending.KindAddToWishlist, got.Kind())
		assert.Equal(t, "P9", got.ProductID())
	})

	t.Run("absent action reads as KindNotFound", func(t *testing.T) {
		store := newStore()
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := newStore()
		require.NoError(t, store.Save(ctx, userID, builder.MustPendingAction(t)))

		require.NoError(t, store.Clear(ctx, userID))
		require.NoError(t, store.Clear(ctx, userID))

		_, err := store.Get(ctx, userID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt record reads as absent and is cleared", func(t *testing.T) {
		mem := kv.NewMemoryStore()
		store := pendingstore.NewStore(mem, time.Minute)
		require.NoError(t, mem.Set(ctx, "pending-action:"+userID.String(), []byte("garbage"), 0))

		_, err := store.Get(ctx, userID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = mem.Get(ctx, "pending-action:"+userID.String())
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("claim is exclusive until released", func(t *testing.T) {
		store := newStore()

		won, err := store.ClaimReplay(ctx, userID)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = store.ClaimReplay(ctx, userID)
		require.NoError(t, err)
		assert.False(t, won, "a second concurrent attempt must lose the claim")

		require.NoError(t, store.ReleaseClaim(ctx, userID))

		won, err = store.ClaimReplay(ctx, userID)
		require.NoError(t, err)
		assert.True(t, won)
	})
}

//go:build unit

package cartstore_test

import (
	"context"
	"testing"

	"storefront/internal/infra/cartstore"
	"storefront/internal/infra/kv"
	"storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("save/load round trip preserves items and subtotal", func(t *testing.T) {
		store := cartstore.NewStore(kv.NewMemoryStore())

		original := builder.NewCartBuilder().
			WithLine("P1", "M", 2, 5000).
			WithLine("P2", "", 1, 3000).
			Build(t)
		require.NoError(t, store.Save(ctx, userID, original))

		restored, err := store.Load(ctx, userID)
		require.NoError(t, err)

		require.Len(t, restored.Lines(), 2)
		assert.Equal(t, original.Subtotal().Cents(), restored.Subtotal().Cents())
		assert.Equal(t, "P1", restored.Lines()[0].Key().ProductID())
		assert.Equal(t, "M", restored.Lines()[0].Key().Variant())
		assert.Equal(t, 2, restored.Lines()[0].Quantity())
	})

	t.Run("absent snapshot rehydrates as empty cart", func(t *testing.T) {
		store := cartstore.NewStore(kv.NewMemoryStore())

		c, err := store.Load(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, int64(0), c.Subtotal().Cents())
	})

	t.Run("corrupt snapshot rehydrates as empty cart", func(t *testing.T) {
		mem := kv.NewMemoryStore()
		store := cartstore.NewStore(mem)
		require.NoError(t, mem.Set(ctx, "cart:"+userID.String(), []byte("{broken"), 0))

		c, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("empty cart is persisted, not skipped", func(t *testing.T) {
		mem := kv.NewMemoryStore()
		store := cartstore.NewStore(mem)

		empty := builder.NewCartBuilder().Build(t)
		require.NoError(t, store.Save(ctx, userID, empty))

		_, err := mem.Get(ctx, "cart:"+userID.String())
		assert.NoError(t, err, "clearing must write the empty snapshot")
	})

	t.Run("drop removes the snapshot", func(t *testing.T) {
		store := cartstore.NewStore(kv.NewMemoryStore())

		full := builder.NewCartBuilder().WithLine("P1", "M", 1, 5000).Build(t)
		require.NoError(t, store.Save(ctx, userID, full))
		require.NoError(t, store.Drop(ctx, userID))

		c, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})
}

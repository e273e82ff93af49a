package queries

import (
	"context"

	"storefront/internal/domain/cart"

	"github.com/google/uuid"
)

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

// CartSnapshotReadStore is the read side of the cart persistence adapter.
type CartSnapshotReadStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
}

type cartQueriesImpl struct {
	snapshots CartSnapshotReadStore
}

func NewCartQueries(snapshots CartSnapshotReadStore) CartQueries {
	return &cartQueriesImpl{snapshots: snapshots}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	c, err := q.snapshots.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewCartView(c), nil
}

func NewCartView(c *cart.Cart) *CartView {
	view := &CartView{
		Items:         make([]CartLineView, 0, len(c.Lines())),
		SubtotalCents: c.Subtotal().Cents(),
	}
	for _, l := range c.Lines() {
		view.Items = append(view.Items, CartLineView{
			ProductID:      l.Key().ProductID(),
			Variant:        l.Key().Variant(),
			Quantity:       l.Quantity(),
			UnitPriceCents: l.UnitPrice().Cents(),
			TotalCents:     l.Total().Cents(),
			Name:           l.Display().Name,
			Brand:          l.Display().Brand,
			Size:           l.Display().Size,
			ImageURL:       l.Display().ImageURL,
		})
	}
	return view
}

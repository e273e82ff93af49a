// Package cartstore persists cart snapshots under per-user keys. A missing or
// unreadable snapshot rehydrates as an empty cart; persistence failures are
// logged and reported as kinded errors the commands degrade on.
package cartstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/infra/kv"

	"github.com/google/uuid"
)

type lineRecord struct {
	ProductID      string `json:"product_id"`
	Variant        string `json:"variant,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Name           string `json:"name,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Size           string `json:"size,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

type snapshotRecord struct {
	Lines         []lineRecord `json:"items"`
	SubtotalCents int64        `json:"subtotal_cents"`
}

type Store struct {
	kv    kv.Store
	codec kv.Codec
}

func NewStore(kvStore kv.Store) *Store {
	return &Store{kv: kvStore, codec: kv.NewCodec()}
}

func snapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Load rehydrates the user's cart. Absent and malformed snapshots both yield
// an empty cart; only an unreachable store is an error.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	data, err := s.kv.Get(ctx, snapshotKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cart snapshot", err, infra.KindUnavailable)
	}

	var record snapshotRecord
	if err := s.codec.Decode(data, &record); err != nil {
		slog.Warn("discarding unreadable cart snapshot", "user_id", userID, "error", err.Error())
		return cart.NewCart(), nil
	}

	lines := make([]cart.Line, 0, len(record.Lines))
	for _, lr := range record.Lines {
		line, err := restoreLine(lr)
		if err != nil {
			slog.Warn("discarding unreadable cart snapshot", "user_id", userID, "error", err.Error())
			return cart.NewCart(), nil
		}
		lines = append(lines, line)
	}
	return cart.RestoreCart(lines), nil
}

// Save writes the snapshot, including the empty one after a clear.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error {
	record := snapshotRecord{
		Lines:         make([]lineRecord, 0, len(c.Lines())),
		SubtotalCents: c.Subtotal().Cents(),
	}
	for _, l := range c.Lines() {
		record.Lines = append(record.Lines, lineRecord{
			ProductID:      l.Key().ProductID(),
			Variant:        l.Key().Variant(),
			Quantity:       l.Quantity(),
			UnitPriceCents: l.UnitPrice().Cents(),
			Name:           l.Display().Name,
			Brand:          l.Display().Brand,
			Size:           l.Display().Size,
			ImageURL:       l.Display().ImageURL,
		})
	}

	data, err := s.codec.Encode(record)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart snapshot", err, infra.KindCorrupt)
	}
	if err := s.kv.Set(ctx, snapshotKey(userID), data, 0); err != nil {
		return infra.WrapRepoErr("failed to write cart snapshot", err, infra.KindUnavailable)
	}
	return nil
}

// Drop deletes the snapshot entirely (logout).
func (s *Store) Drop(ctx context.Context, userID uuid.UUID) error {
	if err := s.kv.Remove(ctx, snapshotKey(userID)); err != nil {
		return infra.WrapRepoErr("failed to drop cart snapshot", err, infra.KindUnavailable)
	}
	return nil
}

func restoreLine(lr lineRecord) (cart.Line, error) {
	price, err := cart.NewMoney(lr.UnitPriceCents)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(lr.ProductID, lr.Variant, lr.Quantity, price, cart.Display{
		Name:     lr.Name,
		Brand:    lr.Brand,
		Size:     lr.Size,
		ImageURL: lr.ImageURL,
	})
}

package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidItem      = errs.New("invalid cart item")
	ErrCartLineNotFound = errs.New("cart line not found")
	ErrCartUnavailable  = errs.New("cart storage unavailable")
)

type AddItemInput struct {
	ProductID      string
	Variant        string
	Quantity       int
	UnitPriceCents int64
	Name           string
	Brand          string
	Size           string
	ImageURL       string
}

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, input AddItemInput) (*queries.CartView, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID, variant string) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, variant string, quantity int) (*queries.CartView, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	snapshots CartSnapshots
}

func NewCartCommands(snapshots CartSnapshots) CartCommands {
	return &cartCommandsImpl{snapshots: snapshots}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, input AddItemInput) (*queries.CartView, error) {
	price, err := cart.NewMoney(input.UnitPriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItem)
	}
	line, err := cart.NewLine(input.ProductID, input.Variant, input.Quantity, price, cart.Display{
		Name:     input.Name,
		Brand:    input.Brand,
		Size:     input.Size,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItem)
	}

	return c.transition(ctx, userID, func(state *cart.Cart) error {
		state.AddItem(line)
		return nil
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID uuid.UUID, productID, variant string) (*queries.CartView, error) {
	return c.transition(ctx, userID, func(state *cart.Cart) error {
		state.RemoveItem(cart.NewLineKey(productID, variant))
		return nil
	})
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, variant string, quantity int) (*queries.CartView, error) {
	return c.transition(ctx, userID, func(state *cart.Cart) error {
		if err := state.UpdateQuantity(cart.NewLineKey(productID, variant), quantity); err != nil {
			return errs.Mark(err, ErrCartLineNotFound)
		}
		return nil
	})
}

func (c *cartCommandsImpl) ClearCart(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	return c.transition(ctx, userID, func(state *cart.Cart) error {
		state.Clear()
		return nil
	})
}

// transition runs load → pure domain mutation → exactly one persist. A failed
// persist degrades the session to memory-only: the caller still gets the new
// state, the condition is logged.
func (c *cartCommandsImpl) transition(ctx context.Context, userID uuid.UUID, mutate func(*cart.Cart) error) (*queries.CartView, error) {
	state, err := c.snapshots.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartUnavailable)
	}

	if err := mutate(state); err != nil {
		return nil, err
	}

	if err := c.snapshots.Save(ctx, userID, state); err != nil {
		slog.Warn("cart persistence degraded for this session", "user_id", userID, "error", err.Error())
	}

	return queries.NewCartView(state), nil
}

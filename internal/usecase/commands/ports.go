package commands

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/pending"
	"storefront/internal/domain/user"

	"github.com/google/uuid"
)

// Ports are declared on the consuming side; infra provides them.

// CartSnapshots is the durable persistence adapter for cart state.
type CartSnapshots interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error
	Drop(ctx context.Context, userID uuid.UUID) error
}

// PendingActions is the durable record of the single deferred intent per user.
type PendingActions interface {
	Save(ctx context.Context, userID uuid.UUID, action pending.Action) error
	Get(ctx context.Context, userID uuid.UUID) (pending.Action, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	ClaimReplay(ctx context.Context, userID uuid.UUID) (bool, error)
	ReleaseClaim(ctx context.Context, userID uuid.UUID) error
}

// CommerceGateway forwards authenticated mutations to the commerce backend.
type CommerceGateway interface {
	AddCartItem(ctx context.Context, token, productID, variantID string, quantity int) error
	AddWishlistItem(ctx context.Context, token, productID string) error
}

// EventSink delivers the toast/navigate directives the storefront client
// drains; delivery is fire-and-forget.
type EventSink interface {
	Notify(ctx context.Context, userID uuid.UUID, title, description string, success bool)
	Navigate(ctx context.Context, userID uuid.UUID, path string)
}

// AuthVerifier is the "is this session token currently valid" predicate the
// replay re-checks after the settle delay.
type AuthVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

package pending

// Action is a storefront intent captured while the user was unauthenticated,
// to be replayed exactly once after login. At most one action exists per user;
// saving a new one overwrites the old.
type Action struct {
	kind         Kind
	productID    string
	variant      string
	quantity     int
	redirectPath string
}

func NewAction(kind Kind, productID, variant string, quantity int, redirectPath string) (Action, error) {
	if !kind.IsValid() {
		return Action{}, ErrInvalidKind
	}
	if productID == "" {
		return Action{}, ErrMissingProduct
	}
	if kind == KindAddToCart && variant == "" {
		return Action{}, ErrVariantRequired
	}
	if quantity < 1 {
		quantity = 1
	}
	if kind == KindAddToWishlist {
		// wishlists carry no variant or quantity
		variant = ""
		quantity = 1
	}
	return Action{
		kind:         kind,
		productID:    productID,
		variant:      variant,
		quantity:     quantity,
		redirectPath: redirectPath,
	}, nil
}

// RestoreAction rebuilds a persisted record without validation. Replay must
// still call Validate before dispatching: an incomplete record is surfaced as
// a non-retryable failure there, not silently dropped at read time.
func RestoreAction(kind Kind, productID, variant string, quantity int, redirectPath string) Action {
	if quantity < 1 {
		quantity = 1
	}
	return Action{
		kind:         kind,
		productID:    productID,
		variant:      variant,
		quantity:     quantity,
		redirectPath: redirectPath,
	}
}

func (a Action) Kind() Kind           { return a.kind }
func (a Action) ProductID() string    { return a.productID }
func (a Action) Variant() string      { return a.variant }
func (a Action) Quantity() int        { return a.quantity }
func (a Action) RedirectPath() string { return a.redirectPath }

// Validate re-checks the action against its kind's requirements. A persisted
// record written by an older client can reach replay without a variant; that
// case must be discarded before any backend call.
func (a Action) Validate() error {
	if !a.kind.IsValid() {
		return ErrInvalidKind
	}
	if a.productID == "" {
		return ErrMissingProduct
	}
	if a.kind == KindAddToCart && a.variant == "" {
		return ErrVariantRequired
	}
	return nil
}

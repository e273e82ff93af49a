package pending

import "errors"

var (
	ErrInvalidKind     = errors.New("unknown pending action kind")
	ErrMissingProduct  = errors.New("pending action requires a product id")
	ErrVariantRequired = errors.New("add-to-cart action requires a variant")
)

type Kind string

const (
	KindAddToCart     Kind = "add-to-cart"
	KindAddToWishlist Kind = "add-to-wishlist"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindAddToCart, KindAddToWishlist:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

package cart

import "fmt"

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Mul(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// LineKey is the merge identity of a line item: the same product in the same
// size/variant merges into one line, anything else appends a new line.
type LineKey struct {
	productID string
	variant   string
}

func NewLineKey(productID, variant string) LineKey {
	return LineKey{productID: productID, variant: variant}
}

func (k LineKey) ProductID() string { return k.productID }
func (k LineKey) Variant() string   { return k.variant }

func (k LineKey) String() string {
	if k.variant == "" {
		return k.productID
	}
	return fmt.Sprintf("%s/%s", k.productID, k.variant)
}

// Display carries the denormalized presentation fields copied from the catalog
// at insertion time. They are not re-synced against later catalog changes.
type Display struct {
	Name     string
	Brand    string
	Size     string
	ImageURL string
}

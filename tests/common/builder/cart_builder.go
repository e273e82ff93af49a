//go:build unit || e2e

package builder

import (
	"testing"

	"storefront/internal/domain/cart"

	"github.com/stretchr/testify/require"
)

type CartLineBuilder struct {
	ProductID      string
	Variant        string
	Quantity       int
	UnitPriceCents int64
	Name           string
	Brand          string
	Size           string
	ImageURL       string
}

func NewCartLineBuilder() *CartLineBuilder {
	return &CartLineBuilder{
		ProductID:      "P1",
		Variant:        "M",
		Quantity:       1,
		UnitPriceCents: 5000,
		Name:           "Runner Sneaker",
		Brand:          "Acme",
		Size:           "M",
	}
}

func (b *CartLineBuilder) With(mutate func(*CartLineBuilder)) *CartLineBuilder {
	mutate(b)
	return b
}

func (b *CartLineBuilder) BuildDomain() (cart.Line, error) {
	price, err := cart.NewMoney(b.UnitPriceCents)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(b.ProductID, b.Variant, b.Quantity, price, cart.Display{
		Name:     b.Name,
		Brand:    b.Brand,
		Size:     b.Size,
		ImageURL: b.ImageURL,
	})
}

// MustCartLine builds a valid line or fails the test.
func MustCartLine(t *testing.T, productID, variant string, quantity int, priceCents int64) cart.Line {
	t.Helper()
	line, err := NewCartLineBuilder().With(func(b *CartLineBuilder) {
		b.ProductID = productID
		b.Variant = variant
		b.Quantity = quantity
		b.UnitPriceCents = priceCents
	}).BuildDomain()
	require.NoError(t, err)
	return line
}

type CartBuilder struct {
	lines []*CartLineBuilder
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func (b *CartBuilder) WithLine(productID, variant string, quantity int, priceCents int64) *CartBuilder {
	b.lines = append(b.lines, &CartLineBuilder{
		ProductID:      productID,
		Variant:        variant,
		Quantity:       quantity,
		UnitPriceCents: priceCents,
		Name:           "Item " + productID,
	})
	return b
}

func (b *CartBuilder) Build(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	for _, lb := range b.lines {
		line, err := lb.BuildDomain()
		require.NoError(t, err)
		c.AddItem(line)
	}
	return c
}

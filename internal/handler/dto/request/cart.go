package request

import (
	"strings"

	"storefront/internal/usecase/commands"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Name      string `json:"name" binding:"required"`
	Brand     string `json:"brand,omitempty"`
	Size      string `json:"size,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	// UnitPriceCents is the display price the storefront showed; the backend
	// re-prices at checkout.
	UnitPriceCents int64 `json:"unit_price_cents" binding:"min=0"`
}

func (r *AddCartItemRequest) ToInput() commands.AddItemInput {
	return commands.AddItemInput{
		ProductID:      strings.TrimSpace(r.ProductID),
		Variant:        strings.TrimSpace(r.Variant),
		Quantity:       r.Quantity,
		Name:           r.Name,
		Brand:          r.Brand,
		Size:           r.Size,
		ImageURL:       r.ImageURL,
		UnitPriceCents: r.UnitPriceCents,
	}
}

type UpdateCartItemRequest struct {
	// Quantity zero or below removes the line.
	Quantity int `json:"quantity"`
}

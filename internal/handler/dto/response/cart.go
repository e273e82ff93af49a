package response

import (
	"github.com/jinzhu/copier"

	"storefront/internal/usecase/queries"
)

type CartItemResponse struct {
	ProductID      string `json:"product_id"`
	Variant        string `json:"variant,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
	Name           string `json:"name,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Size           string `json:"size,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	SubtotalCents int64              `json:"subtotal_cents"`
	ItemCount     int                `json:"item_count"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(v.Items))
	count := 0
	for _, line := range v.Items {
		var item CartItemResponse
		if err := copier.Copy(&item, &line); err != nil {
			continue
		}
		items = append(items, item)
		count += line.Quantity
	}
	return &CartResponse{
		Items:         items,
		SubtotalCents: v.SubtotalCents,
		ItemCount:     count,
	}
}

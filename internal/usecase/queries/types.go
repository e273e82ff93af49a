package queries

import (
	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type CartLineView struct {
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

type CartView struct {
	Items         []CartLineView `json:"items"`
	SubtotalCents int64          `json:"subtotal_cents"`
}

type PendingActionView struct {
	Kind         string `json:"type"`
	ProductID    string `json:"product_id"`
	Variant      string `json:"variant,omitempty"`
	Quantity     int    `json:"quantity"`
	RedirectPath string `json:"redirect_path,omitempty"`
}

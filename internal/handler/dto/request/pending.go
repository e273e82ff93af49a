package request

import (
	"strings"

	"storefront/internal/usecase/commands"
)

type SavePendingActionRequest struct {
	Type         string `json:"type" binding:"required,oneof=add-to-cart add-to-wishlist"`
	ProductID    string `json:"product_id" binding:"required"`
	Variant      string `json:"variant,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	RedirectPath string `json:"redirect_path,omitempty"`
}

func (r *SavePendingActionRequest) ToInput() commands.SaveActionInput {
	return commands.SaveActionInput{
		Kind:         r.Type,
		ProductID:    strings.TrimSpace(r.ProductID),
		Variant:      strings.TrimSpace(r.Variant),
		Quantity:     r.Quantity,
		RedirectPath: r.RedirectPath,
	}
}

package response

import (
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
)

type PendingActionResponse struct {
	Type         string `json:"type"`
	ProductID    string `json:"product_id"`
	Variant      string `json:"variant,omitempty"`
	Quantity     int    `json:"quantity"`
	RedirectPath string `json:"redirect_path,omitempty"`
}

func FromPendingActionView(v *queries.PendingActionView) *PendingActionResponse {
	return &PendingActionResponse{
		Type:         v.Kind,
		ProductID:    v.ProductID,
		Variant:      v.Variant,
		Quantity:     v.Quantity,
		RedirectPath: v.RedirectPath,
	}
}

type ReplayResponse struct {
	Outcome      string `json:"outcome"`
	RedirectPath string `json:"redirect_path,omitempty"`
}

func FromReplayResult(r *commands.ReplayResult) *ReplayResponse {
	return &ReplayResponse{
		Outcome:      string(r.Outcome),
		RedirectPath: r.RedirectPath,
	}
}

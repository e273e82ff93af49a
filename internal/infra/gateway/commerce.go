// Package gateway is the REST client for the remote commerce backend. The
// storefront only forwards authenticated cart/wishlist mutations; catalog
// reads go to the backend directly from the frontend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"storefront/internal/infra"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

type CommerceGateway struct {
	baseURL  string
	currency string
	client   *http.Client
}

func NewCommerceGateway(cfg config.BackendConfig) *CommerceGateway {
	return &CommerceGateway{
		baseURL:  cfg.BaseURL,
		currency: cfg.Currency,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type cartItemAddRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Currency  string `json:"currency"`
}

type wishlistAddRequest struct {
	ProductID string `json:"product_id"`
}

func (g *CommerceGateway) AddCartItem(ctx context.Context, token, productID, variantID string, quantity int) error {
	return g.post(ctx, token, "/api/v1/cart/items", cartItemAddRequest{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
		Currency:  g.currency,
	})
}

func (g *CommerceGateway) AddWishlistItem(ctx context.Context, token, productID string) error {
	return g.post(ctx, token, "/api/v1/wishlist/items", wishlistAddRequest{
		ProductID: productID,
	})
}

func (g *CommerceGateway) post(ctx context.Context, token, path string, payload any) error {
	endpoint, err := url.JoinPath(g.baseURL, path)
	if err != nil {
		return errs.Wrap(err, "invalid backend url")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode backend request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return infra.WrapRepoErr("backend unreachable", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return infra.WrapRepoErr("backend rejected session token", nil, infra.KindUnauthorized)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return infra.WrapRepoErr("backend rejected request: "+resp.Status, nil, infra.KindRejected)
	default:
		return infra.WrapRepoErr("backend failure: "+resp.Status, nil, infra.KindUnavailable)
	}
}

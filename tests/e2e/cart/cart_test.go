//go:build e2e

package cart_test

import (
	"fmt"
	"net/http"
	"testing"

	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	apitest "storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
)

type cartSuite struct {
	e2e.SharedSuite
	token string
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(cartSuite))
}

func (s *cartSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = s.CreateUserAndLogin(s.T(), "cart@example.com")
}

func sneakerItem(productID, variant string, qty int) request.AddCartItemRequest {
	return request.AddCartItemRequest{
		ProductID:      productID,
		Variant:        variant,
		Quantity:       qty,
		Name:           "Runner Sneaker",
		Brand:          "Acme",
		Size:           variant,
		UnitPriceCents: 5000,
	}
}

func (s *cartSuite) addItem(t *testing.T, item request.AddCartItemRequest) response.CartResponse {
	t.Helper()
	w := apitest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, item, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cart response.CartResponse
	require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &cart))
	return cart
}

func (s *cartSuite) getCart(t *testing.T) response.CartResponse {
	t.Helper()
	w := apitest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cart response.CartResponse
	require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &cart))
	return cart
}

func (s *cartSuite) TestCartLifecycle() {
	s.Run("空のカートが取得できること", func() {
		t := s.T()

		cart := s.getCart(t)
		require.Empty(t, cart.Items)
		require.Zero(t, cart.SubtotalCents)
		require.Zero(t, cart.ItemCount)
	})

	s.Run("商品追加がカートへ反映されること", func() {
		t := s.T()

		cart := s.addItem(t, sneakerItem("P1", "M", 2))
		require.Len(t, cart.Items, 1)
		require.Equal(t, int64(10000), cart.SubtotalCents)
		require.Equal(t, 2, cart.ItemCount)

		// 再読み込みでも残っていること
		cart = s.getCart(t)
		require.Len(t, cart.Items, 1)
		require.Equal(t, "P1", cart.Items[0].ProductID)
		require.Equal(t, "M", cart.Items[0].Variant)
		require.Equal(t, int64(10000), cart.Items[0].TotalCents)
	})

	s.Run("同一商品・同一バリアントは数量がマージされること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))
		cart := s.addItem(t, sneakerItem("P1", "M", 2))

		require.Len(t, cart.Items, 1)
		require.Equal(t, 3, cart.Items[0].Quantity)
		require.Equal(t, int64(15000), cart.SubtotalCents)
	})

	s.Run("バリアント違いは別行になること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))
		cart := s.addItem(t, sneakerItem("P1", "L", 1))

		require.Len(t, cart.Items, 2)
		require.Equal(t, 2, cart.ItemCount)
	})
}

func (s *cartSuite) TestUpdateQuantity() {
	s.Run("数量の上書き更新ができること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))

		body := request.UpdateCartItemRequest{Quantity: 5}
		w := apitest.PerformRequest(t, s.Router, http.MethodPatch, cartItemsURL+"/P1?variant=M", body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cart := s.getCart(t)
		require.Equal(t, 5, cart.Items[0].Quantity)
		require.Equal(t, int64(25000), cart.SubtotalCents)
	})

	s.Run("数量0で行が削除されること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 2))

		body := request.UpdateCartItemRequest{Quantity: 0}
		w := apitest.PerformRequest(t, s.Router, http.MethodPatch, cartItemsURL+"/P1?variant=M", body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cart := s.getCart(t)
		require.Empty(t, cart.Items)
	})

	s.Run("存在しない行の更新は404になること", func() {
		t := s.T()

		body := request.UpdateCartItemRequest{Quantity: 3}
		w := apitest.PerformRequest(t, s.Router, http.MethodPatch, cartItemsURL+"/missing?variant=M", body, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *cartSuite) TestRemoveAndClear() {
	s.Run("行削除で対象行だけ消えること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))
		s.addItem(t, sneakerItem("P2", "", 1))

		w := apitest.PerformRequest(t, s.Router, http.MethodDelete, cartItemsURL+"/P1?variant=M", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cart := s.getCart(t)
		require.Len(t, cart.Items, 1)
		require.Equal(t, "P2", cart.Items[0].ProductID)
	})

	s.Run("カート全削除で空になること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))
		s.addItem(t, sneakerItem("P2", "", 1))

		w := apitest.PerformRequest(t, s.Router, http.MethodDelete, cartURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		var cart response.CartResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &cart))
		require.Empty(t, cart.Items)
	})
}

func (s *cartSuite) TestIsolationBetweenUsers() {
	s.Run("カートはユーザーごとに分離されること", func() {
		t := s.T()

		s.addItem(t, sneakerItem("P1", "M", 1))

		otherToken := s.CreateUserAndLogin(t, "other@example.com")
		w := apitest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		var cart response.CartResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &cart))
		require.Empty(t, cart.Items)
	})
}

func (s *cartSuite) TestValidation() {
	tests := []struct {
		name string
		body request.AddCartItemRequest
	}{
		{name: "商品ID欠落", body: request.AddCartItemRequest{Quantity: 1, Name: "x", UnitPriceCents: 100}},
		{name: "数量0", body: sneakerItem("P1", "M", 0)},
		{name: "商品名欠落", body: request.AddCartItemRequest{ProductID: "P1", Quantity: 1, UnitPriceCents: 100}},
	}

	for i, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := apitest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, tt.body, s.token)
			require.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("case %d: %s", i, w.Body.String()))
		})
	}
}

func (s *cartSuite) TestRequiresAuth() {
	s.Run("未認証リクエストは401になること", func() {
		t := s.T()

		w := apitest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

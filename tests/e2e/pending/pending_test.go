//go:build e2e

package pending_test

import (
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
	pendingURL       = "/api/pending-action"
	replayURL        = "/api/pending-action/replay"
	notificationsURL = "/api/notifications"
)

type pendingSuite struct {
	e2e.SharedSuite
	token string
}

func TestPendingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(pendingSuite))
}

func (s *pendingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = s.CreateUserAndLogin(s.T(), "pending@example.com")
}

func addToCartAction() request.SavePendingActionRequest {
	return request.SavePendingActionRequest{
		Type:         "add-to-cart",
		ProductID:    "P1",
		Variant:      "M",
		Quantity:     2,
		RedirectPath: "/products/P1",
	}
}

func (s *pendingSuite) saveAction(t *testing.T, body request.SavePendingActionRequest) {
	t.Helper()
	w := apitest.PerformRequest(t, s.Router, http.MethodPut, pendingURL, body, s.token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *pendingSuite) replay(t *testing.T) response.ReplayResponse {
	t.Helper()
	w := apitest.PerformRequest(t, s.Router, http.MethodPost, replayURL, nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.ReplayResponse
	require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *pendingSuite) drainNotifications(t *testing.T) response.NotificationListResponse {
	t.Helper()
	w := apitest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.NotificationListResponse
	require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *pendingSuite) TestSaveAndGet() {
	s.Run("保存したアクションが取得できること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		w := apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.PendingActionResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "add-to-cart", res.Type)
		require.Equal(t, "P1", res.ProductID)
		require.Equal(t, "M", res.Variant)
		require.Equal(t, 2, res.Quantity)
		require.Equal(t, "/products/P1", res.RedirectPath)
	})

	s.Run("アクション未保存時は204になること", func() {
		t := s.T()

		w := apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("後勝ちで上書きされること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		wishlist := request.SavePendingActionRequest{
			Type:         "add-to-wishlist",
			ProductID:    "P9",
			RedirectPath: "/products/P9",
		}
		s.saveAction(t, wishlist)

		w := apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.PendingActionResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "add-to-wishlist", res.Type)
		require.Equal(t, "P9", res.ProductID)
	})

	s.Run("不正なアクション種別は400になること", func() {
		t := s.T()

		body := request.SavePendingActionRequest{Type: "buy-now", ProductID: "P1"}
		w := apitest.PerformRequest(t, s.Router, http.MethodPut, pendingURL, body, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("明示的な破棄で消えること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		w := apitest.PerformRequest(t, s.Router, http.MethodDelete, pendingURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func (s *pendingSuite) TestReplay() {
	s.Run("カート追加アクションがバックエンドへ再実行されること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		res := s.replay(t)
		require.Equal(t, "replayed", res.Outcome)
		require.Equal(t, "/products/P1", res.RedirectPath)
		require.Equal(t, int64(1), s.Backend.CartCalls.Load())

		// アクションは消費済み
		w := apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		// 成功通知と画面遷移イベントが積まれている
		notifications := s.drainNotifications(t)
		require.Len(t, notifications.Events, 2)
		require.Equal(t, "toast", notifications.Events[0].Type)
		require.Equal(t, "Added to cart", notifications.Events[0].Title)
		require.Equal(t, "success", notifications.Events[0].Variant)
		require.Equal(t, "navigate", notifications.Events[1].Type)
		require.Equal(t, "/products/P1", notifications.Events[1].Path)
	})

	s.Run("ウィッシュリスト追加アクションが再実行されること", func() {
		t := s.T()

		s.saveAction(t, request.SavePendingActionRequest{
			Type:      "add-to-wishlist",
			ProductID: "P5",
		})

		res := s.replay(t)
		require.Equal(t, "replayed", res.Outcome)
		require.Equal(t, int64(1), s.Backend.WishlistCalls.Load())
		require.Zero(t, s.Backend.CartCalls.Load())
	})

	s.Run("アクション未保存時はnoneになること", func() {
		t := s.T()

		res := s.replay(t)
		require.Equal(t, "none", res.Outcome)
		require.Zero(t, s.Backend.CartCalls.Load())
	})

	s.Run("再実行は一度きりであること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		first := s.replay(t)
		require.Equal(t, "replayed", first.Outcome)

		second := s.replay(t)
		require.Equal(t, "none", second.Outcome)

		// バックエンド呼び出しは合計1回のまま
		require.Equal(t, int64(1), s.Backend.CartCalls.Load())
	})

	s.Run("バックエンド拒否時はアクションを破棄してエラー通知すること", func() {
		t := s.T()

		s.Backend.Fail.Store(true)
		s.saveAction(t, addToCartAction())

		res := s.replay(t)
		require.Equal(t, "failed", res.Outcome)
		require.Equal(t, int64(1), s.Backend.CartCalls.Load())

		// 失敗したアクションは再試行されない
		w := apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		notifications := s.drainNotifications(t)
		require.Len(t, notifications.Events, 1)
		require.Equal(t, "destructive", notifications.Events[0].Variant)
	})

	s.Run("他ユーザーのアクションには影響しないこと", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())

		otherToken := s.CreateUserAndLogin(t, "bystander@example.com")
		w := apitest.PerformRequest(t, s.Router, http.MethodPost, replayURL, nil, otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.ReplayResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "none", res.Outcome)
		require.Zero(t, s.Backend.CartCalls.Load())

		// 元ユーザーのアクションはそのまま
		w = apitest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func (s *pendingSuite) TestNotificationDrain() {
	s.Run("取得済み通知は二度目のドレインで空になること", func() {
		t := s.T()

		s.saveAction(t, addToCartAction())
		s.replay(t)

		first := s.drainNotifications(t)
		require.NotEmpty(t, first.Events)

		second := s.drainNotifications(t)
		require.Empty(t, second.Events)
	})
}

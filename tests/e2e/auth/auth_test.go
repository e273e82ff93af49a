//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/internal/pkg/cookie"
	"storefront/tests/common/dbtest"
	apitest "storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "customer")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なサインアップ",
			email:          "newcomer@example.com",
			password:       "password123",
			expectedStatus: http.StatusCreated,
			description:    "新規メールアドレスで登録できること",
		},
		{
			name:           "登録済みメールアドレス",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusConflict,
			description:    "既存のメールアドレスは拒否されること",
		},
		{
			name:           "不正なメールアドレス",
			email:          "not-an-email",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "メール形式でない値は拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			email:          "short@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.SignupRequest{Email: tt.email, Password: tt.password}
			w := apitest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.SignupResponse
				require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.UserID)

				// 登録直後にログインできること
				loginBody := request.LoginRequest{Email: tt.email, Password: tt.password}
				loginW := apitest.PerformRequest(t, s.Router, http.MethodPost, loginURL, loginBody, "")
				require.Equal(t, http.StatusOK, loginW.Code)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := apitest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")

				// トークンはクッキーにも載ること
				require.NotNil(t, apitest.ExtractCookie(w, cookie.AccessTokenCookieName))
				require.NotNil(t, apitest.ExtractCookie(w, cookie.RefreshTokenCookieName))

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("クッキーのリフレッシュトークンで更新できること", func() {
		t := s.T()

		loginW := apitest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginW.Code)

		cookies := apitest.ExtractCookies(loginW)
		w := apitest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.NotNil(t, apitest.ExtractCookie(w, cookie.AccessTokenCookieName))
	})

	s.Run("無効なリフレッシュトークンは拒否されること", func() {
		t := s.T()

		body := request.RefreshRequest{RefreshToken: "invalid-refresh-token"}
		w := apitest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("アクセストークンをリフレッシュトークンとして使えないこと", func() {
		t := s.T()

		token := s.CreateUserAndLogin(t, "refresher@example.com")
		body := request.RefreshRequest{RefreshToken: token}
		w := apitest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("自分のプロフィールが取得できること", func() {
		t := s.T()

		token := s.CreateUserAndLogin(t, "me@example.com")
		w := apitest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.MeResponse
		require.NoError(t, apitest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "me@example.com", res.Email)
		require.Equal(t, "customer", res.Role)
	})

	s.Run("未認証では取得できないこと", func() {
		t := s.T()

		w := apitest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが破棄されること", func() {
		t := s.T()

		token := s.CreateUserAndLogin(t, "leaver@example.com")
		w := apitest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		accessCookie := apitest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, accessCookie)
		require.Empty(t, accessCookie.Value)
	})
}

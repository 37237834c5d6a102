package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	authResp := &model.AuthResponse{
		AccessToken: "signed-token",
		ExpiresAt:   expiresAt,
		User:        &model.UserResponse{UserID: userID, Email: "new@example.com"},
	}

	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(app *testApp)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: 登録してCookieを設定",
			body: model.RegisterRequest{Email: "new@example.com", Password: "secret1"},
			setupMock: func(app *testApp) {
				app.auth.On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterRequest) bool {
					return req.Email == "new@example.com"
				})).Return(authResp, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "異常系: パスワードが短い",
			body:         model.RegisterRequest{Email: "new@example.com", Password: "12345"},
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "異常系: メール形式が不正",
			body:         model.RegisterRequest{Email: "not-an-email", Password: "secret1"},
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "異常系: 不正なJSON",
			body:         `{"email": "broken"`,
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: メールアドレス重複",
			body: model.RegisterRequest{Email: "dup@example.com", Password: "secret1"},
			setupMock: func(app *testApp) {
				app.auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)).Once()
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "EMAIL_ALREADY_EXISTS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			tc.setupMock(app)

			resp, body := sendRequest(t, app.server, httpRequestDetails{
				Method: http.MethodPost,
				Path:   "/api/v1/auth/register",
				Body:   tc.body,
			}, tc.expectedCode)

			if tc.expectedErr != "" {
				verifyErrorCode(t, body, tc.expectedErr)
				assert.Nil(t, findCookie(resp, testCookieName))
				return
			}
			got := decodeBody[model.AuthResponse](t, body)
			assert.Equal(t, "signed-token", got.AccessToken)
			assert.Equal(t, userID, got.User.UserID)

			cookie := findCookie(resp, testCookieName)
			require.NotNil(t, cookie)
			assert.Equal(t, "signed-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(app *testApp)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: ログイン成功",
			body: model.LoginRequest{Email: "user@example.com", Password: "secret1"},
			setupMock: func(app *testApp) {
				app.auth.On("Login", mock.Anything, mock.Anything).Return(&model.AuthResponse{
					AccessToken: "login-token",
					ExpiresAt:   time.Now().Add(time.Hour),
					User:        &model.UserResponse{UserID: uuid.New(), Email: "user@example.com"},
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "異常系: 認証情報が不正",
			body: model.LoginRequest{Email: "user@example.com", Password: "wrong"},
			setupMock: func(app *testApp) {
				app.auth.On("Login", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_CREDENTIALS",
		},
		{
			name:         "異常系: パスワード未指定",
			body:         map[string]string{"email": "user@example.com"},
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			tc.setupMock(app)

			resp, body := sendRequest(t, app.server, httpRequestDetails{
				Method: http.MethodPost,
				Path:   "/api/v1/auth/login",
				Body:   tc.body,
			}, tc.expectedCode)

			if tc.expectedErr != "" {
				verifyErrorCode(t, body, tc.expectedErr)
				return
			}
			cookie := findCookie(resp, testCookieName)
			require.NotNil(t, cookie)
			assert.Equal(t, "login-token", cookie.Value)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	app := newTestApp(t)

	resp, _ := sendRequest(t, app.server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/logout",
	}, http.StatusOK)

	cookie := findCookie(resp, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthHandler_GetMe(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 自分の情報を取得", func(t *testing.T) {
		app := newTestApp(t)
		app.auth.On("GetUser", mock.Anything, userID).Return(&model.User{
			UserID:       userID,
			Email:        "me@example.com",
			PasswordHash: "hash",
			DisplayName:  strPtr("Me"),
		}, nil).Once()

		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/auth/me",
			Headers: userHeader(userID),
		}, http.StatusOK)

		assert.NotContains(t, string(body), "hash")
		got := decodeBody[model.UserResponse](t, body)
		assert.Equal(t, "me@example.com", got.Email)
		require.NotNil(t, got.DisplayName)
		assert.Equal(t, "Me", *got.DisplayName)
	})

	t.Run("異常系: X-User-IDヘッダーなし", func(t *testing.T) {
		app := newTestApp(t)
		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method: http.MethodGet,
			Path:   "/api/v1/auth/me",
		}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("異常系: X-User-IDの形式が不正", func(t *testing.T) {
		app := newTestApp(t)
		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/auth/me",
			Headers: map[string]string{"X-User-ID": "not-a-uuid"},
		}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})
}

func TestAuthHandler_UpdateAccount(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 表示名を変更", func(t *testing.T) {
		app := newTestApp(t)
		app.auth.On("UpdateAccount", mock.Anything, userID, &model.UpdateAccountRequest{DisplayName: "New Name"}).
			Return(&model.User{UserID: userID, Email: "me@example.com", DisplayName: strPtr("New Name")}, nil).Once()

		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPatch,
			Path:    "/api/v1/account",
			Body:    model.UpdateAccountRequest{DisplayName: "New Name"},
			Headers: userHeader(userID),
		}, http.StatusOK)

		got := decodeBody[model.UserResponse](t, body)
		require.NotNil(t, got.DisplayName)
		assert.Equal(t, "New Name", *got.DisplayName)
	})

	t.Run("異常系: 表示名が空", func(t *testing.T) {
		app := newTestApp(t)
		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPatch,
			Path:    "/api/v1/account",
			Body:    model.UpdateAccountRequest{DisplayName: ""},
			Headers: userHeader(userID),
		}, http.StatusBadRequest)
		verifyErrorCode(t, body, "VALIDATION_ERROR")
	})
}

// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/handlers"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "vocab_session"

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// testApp はサービスをモックに差し替えたルーターです
type testApp struct {
	server *httptest.Server
	auth   *mocks.AuthService
	stage  *mocks.StageService
	word   *mocks.WordService
	trivia *mocks.TriviaService
	stats  *mocks.StatsService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApp は認証を無効化 (X-User-ID ヘッダー) したルーターを起動します
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	logger := discardLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth:   config.AuthConfig{Enabled: false},
		Cookie: config.CookieConfig{Name: testCookieName},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		},
	}

	app := &testApp{
		auth:   mocks.NewAuthService(t),
		stage:  mocks.NewStageService(t),
		word:   mocks.NewWordService(t),
		trivia: mocks.NewTriviaService(t),
		stats:  mocks.NewStatsService(t),
	}
	router := handlers.NewRouter(cfg, db, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(app.auth, cfg.Cookie, logger),
		Stage:  handlers.NewStageHandler(app.stage, logger),
		Word:   handlers.NewWordHandler(app.word, logger),
		Trivia: handlers.NewTriviaHandler(app.trivia, logger),
		Stats:  handlers.NewStatsHandler(app.stats, logger),
	}, logger)

	app.server = httptest.NewServer(router)
	t.Cleanup(func() {
		app.server.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return app
}

// userHeader は開発用認証ミドルウェア向けのヘッダーを返します
func userHeader(userID uuid.UUID) map[string]string {
	return map[string]string{"X-User-ID": userID.String()}
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してレスポンスを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) (*http.Response, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, respBodyBytes
}

// verifyErrorCode はエラーレスポンスのコードを検証します。
func verifyErrorCode(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "Failed to unmarshal error response: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code)
}

func decodeBody[T any](t *testing.T, bodyBytes []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(bodyBytes, &v), "Failed to unmarshal response: %s", string(bodyBytes))
	return v
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

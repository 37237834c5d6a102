package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/service"
	"go_vocab_trivia/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	cookie  config.CookieConfig
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, cookie config.CookieConfig, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, cookie: cookie, logger: logger}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register はユーザーを登録し、そのままログイン状態にします
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	h.setSessionCookie(w, resp.AccessToken, resp.ExpiresAt)
	logger.Info("User registered", slog.String("user_id", resp.User.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login はユーザーを認証し、JWTを返します。同じトークンをCookieにも設定します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}

	h.setSessionCookie(w, resp.AccessToken, resp.ExpiresAt)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Logout はセッションCookieを削除します
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "ログアウトしました。"}, h.logger)
}

// GetMe は認証済みユーザー自身の情報を返します
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetMe")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}

// UpdateAccount は表示名を変更します
func (h *AuthHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "UpdateAccount")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateAccountRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.UpdateAccount(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}

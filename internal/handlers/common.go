package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errInvalidBody = model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)

// decodeAndValidate はJSONボディをデコードし、validateタグで検証します
func decodeAndValidate(r *http.Request, dst interface{}, logger *slog.Logger) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		return errInvalidBody
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// requireUser は認証ミドルウェアが設定したユーザーIDを取り出し、ロガーに付与します
func requireUser(r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, error) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		return uuid.Nil, logger, err
	}
	return userID, logger.With(slog.String("user_id", userID.String())), nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", name+" の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

func uintParam(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || v == 0 {
		return 0, model.NewAppError("INVALID_PATH_PARAM", name+" は正の整数で指定してください。", name, model.ErrInvalidInput)
	}
	return uint(v), nil
}

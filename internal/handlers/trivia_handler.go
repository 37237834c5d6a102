package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/service"
	"go_vocab_trivia/internal/webutil"

	"github.com/google/uuid"
)

type TriviaHandler struct {
	service service.TriviaService
	logger  *slog.Logger
}

func NewTriviaHandler(s service.TriviaService, logger *slog.Logger) *TriviaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TriviaHandler{service: s, logger: logger}
}

// sessionRequest はユーザーIDとパスのセッションIDを取り出します
func (h *TriviaHandler) sessionRequest(r *http.Request, name string) (uuid.UUID, uuid.UUID, *slog.Logger, error) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", name)))
	if err != nil {
		return uuid.Nil, uuid.Nil, logger, err
	}
	sessionID, err := uuidParam(r, "session_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, logger, err
	}
	return userID, sessionID, logger.With(slog.String("session_id", sessionID.String())), nil
}

// EstimatePool は条件に合う出題候補数を返します
func (h *TriviaHandler) EstimatePool(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "EstimatePool")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.TriviaFilterRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.EstimatePoolSize(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// CreateSession は新しいゲームを開始します
func (h *TriviaHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "CreateSession")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateSessionRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CreateSession(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetRound は出題中のラウンド、またはゲーム終了を返します
func (h *TriviaHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, logger, err := h.sessionRequest(r, "GetRound")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	round, err := h.service.GetNextRound(r.Context(), userID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, round, logger)
}

// SubmitAnswer は出題中のラウンドへの回答を記録します
func (h *TriviaHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, logger, err := h.sessionRequest(r, "SubmitAnswer")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitAnswerRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), userID, sessionID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSummary はゲーム結果を返します
func (h *TriviaHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, logger, err := h.sessionRequest(r, "GetSummary")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	summary, err := h.service.GetSummary(r.Context(), userID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_trivia/internal/service"
	"go_vocab_trivia/internal/webutil"
)

type StageHandler struct {
	service service.StageService
	logger  *slog.Logger
}

func NewStageHandler(s service.StageService, logger *slog.Logger) *StageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StageHandler{service: s, logger: logger}
}

// GetStages はステージ一覧を進捗と解放状況つきで返します
func (h *StageHandler) GetStages(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetStages")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stages, err := h.service.GetStages(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stages, logger)
}

// GetStage はステージの単語一覧を返します
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetStage")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stageID, err := uintParam(r, "stage_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetStageDetail(r.Context(), userID, stageID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/service"
	"go_vocab_trivia/internal/webutil"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// parseLibraryFilter はクエリパラメータから絞り込み条件を組み立てます
func parseLibraryFilter(r *http.Request) (model.LibraryFilter, error) {
	q := r.URL.Query()
	filter := model.LibraryFilter{
		Stars: q.Get("stars"),
		Query: q.Get("q"),
	}
	if v := q.Get("stage_id"); v != "" && v != "all" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filter, model.NewAppError("INVALID_QUERY_PARAM", "stage_id は正の整数で指定してください。", "stage_id", model.ErrInvalidInput)
		}
		stageID := uint(id)
		filter.StageID = &stageID
	}
	if v := q.Get("difficulty"); v != "" && v != "all" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 1 || level > 3 {
			return filter, model.NewAppError("INVALID_QUERY_PARAM", "difficulty は1〜3で指定してください。", "difficulty", model.ErrInvalidInput)
		}
		filter.Difficulty = &level
	}
	if filter.Stars == "all" {
		filter.Stars = ""
	}
	return filter, nil
}

// GetLibrary は全単語をステージ名と進捗つきで返します
func (h *WordHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetLibrary")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	filter, err := parseLibraryFilter(r)
	if err != nil {
		logger.Warn("Invalid library filter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GetLibrary(r.Context(), userID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PutProgress は単語の星評価とメモを更新します
func (h *WordHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "PutProgress")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordID, err := uuidParam(r, "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	var req model.UpdateWordProgressRequest
	if err := decodeAndValidate(r, &req, logger); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.UpdateWordProgress(r.Context(), userID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

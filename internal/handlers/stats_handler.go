package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_trivia/internal/service"
	"go_vocab_trivia/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{service: s, logger: logger}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetStats")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

func (h *StatsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, logger, err := requireUser(r, h.logger.With(slog.String("handler", "GetDashboard")))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	dash, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, dash, logger)
}

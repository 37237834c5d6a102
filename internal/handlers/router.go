package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/metrics"
	"go_vocab_trivia/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Handlers はルーターに登録するハンドラの組です
type Handlers struct {
	Auth   *AuthHandler
	Stage  *StageHandler
	Word   *WordHandler
	Trivia *TriviaHandler
	Stats  *StatsHandler
}

// NewRouter はミドルウェアとAPIルートを組み立てます
func NewRouter(cfg *config.Config, db *gorm.DB, h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication is disabled. Using X-User-ID header (DEV ONLY)")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/auth/me", h.Auth.GetMe)
			r.Patch("/account", h.Auth.UpdateAccount)

			r.Get("/stages", h.Stage.GetStages)
			r.Get("/stages/{stage_id}", h.Stage.GetStage)

			r.Get("/library", h.Word.GetLibrary)
			r.Put("/words/{word_id}/progress", h.Word.PutProgress)

			r.Get("/stats", h.Stats.GetStats)
			r.Get("/dashboard", h.Stats.GetDashboard)

			r.Route("/trivia", func(r chi.Router) {
				r.Post("/estimate", h.Trivia.EstimatePool)
				r.Post("/sessions", h.Trivia.CreateSession)
				r.Get("/sessions/{session_id}/round", h.Trivia.GetRound)
				r.Post("/sessions/{session_id}/answers", h.Trivia.SubmitAnswer)
				r.Get("/sessions/{session_id}/summary", h.Trivia.GetSummary)
			})
		})
	})

	r.Get("/health", healthHandler(db))
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	return r
}

// healthHandler はDBへのPingで死活を返します
func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context())
		sqlDB, err := db.DB()
		if err != nil {
			logger.Error("Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(r.Context()); err != nil {
			logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

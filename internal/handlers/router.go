package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"scrum_sensei/internal/config"
	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/webutil"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// requestTimeout はリクエスト全体の上限時間
const requestTimeout = 60 * time.Second

type Handlers struct {
	Progress *ProgressHandler
	Content  *ContentHandler
	Quiz     *QuizHandler
}

// NewRouter はミドルウェアとルーティングを設定した chi ルーターを返します。
func NewRouter(db *gorm.DB, corsCfg config.CORSConfig, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   corsCfg.ExposedHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/progress", h.Progress.GetProgress)
			r.Post("/progress", h.Progress.PostProgress)
			r.Put("/progress", h.Progress.PutProgress)
			r.Get("/stats", h.Progress.GetStats)
		})

		r.Route("/contents", func(r chi.Router) {
			r.Get("/", h.Content.ListContents)
			r.Post("/", h.Content.PostContent)
			r.Route("/{contentId}", func(r chi.Router) {
				r.Get("/", h.Content.GetContent)
				r.Put("/", h.Content.PutContent)
				r.Delete("/", h.Content.DeleteContent)
				r.Post("/publish", h.Content.PublishContent)
				r.Get("/quizzes", h.Quiz.ListContentQuizzes)
			})
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Post("/", h.Quiz.PostQuiz)
			r.Get("/{quizId}", h.Quiz.GetQuiz)
			r.Post("/{quizId}/attempts", h.Quiz.PostAttempt)
		})
	})

	r.Get("/health", healthHandler(db, logger))

	return r
}

// healthHandler はDBへの疎通を確認します。
func healthHandler(db *gorm.DB, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}

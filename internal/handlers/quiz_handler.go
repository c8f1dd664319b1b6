// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"scrum_sensei/internal/model"
	"scrum_sensei/internal/service"
	"scrum_sensei/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

func (h *QuizHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	var req model.CreateQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	q, err := h.service.CreateQuiz(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, q, logger)
}

func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizId")
	logger := h.logger.With(slog.String("handler", "GetQuiz"), slog.String("quiz_id", quizID))

	q, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, q, logger)
}

// ListContentQuizzes は GET /api/contents/{contentId}/quizzes のハンドラ
func (h *QuizHandler) ListContentQuizzes(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	logger := h.logger.With(slog.String("handler", "ListContentQuizzes"), slog.String("content_id", contentID))

	quizzes, err := h.service.ListQuizzes(r.Context(), contentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if quizzes == nil {
		quizzes = []*model.Quiz{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, quizzes, logger)
}

// PostAttempt は回答を採点します。save=true のときは進捗に結果を保存する。
func (h *QuizHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizId")
	logger := h.logger.With(slog.String("handler", "PostAttempt"), slog.String("quiz_id", quizID))

	var req model.SubmitAttemptRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitAttempt(r.Context(), quizID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"scrum_sensei/internal/model"
	"scrum_sensei/internal/service"
	"scrum_sensei/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress は GET /api/user/progress?userId=&contentId= のハンドラ。
// contentId があれば単一の進捗、なければユーザーの全進捗を返す。
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, err := webutil.RequiredQuery(r, "userId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID))

	if contentID := strings.TrimSpace(r.URL.Query().Get("contentId")); contentID != "" {
		progress, err := h.service.GetContentProgress(r.Context(), userID, contentID)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
		return
	}

	progresses, err := h.service.GetUserProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if progresses == nil {
		progresses = []*model.UserProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}

// PostProgress は進捗の作成 (既存なら学習時間の加算) を行います。
func (h *ProgressHandler) PostProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProgress"))

	var req model.CreateProgressRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	progress, err := h.service.CreateProgress(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Progress saved", slog.String("progress_id", progress.ID), slog.String("user_id", progress.UserID))
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PutProgress は PUT /api/user/progress?id= のハンドラ (部分更新)
func (h *ProgressHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutProgress"))

	progressID, err := webutil.RequiredQuery(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("progress_id", progressID))

	var req model.UpdateProgressRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	progress, err := h.service.UpdateProgress(r.Context(), progressID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, err := webutil.RequiredQuery(r, "userId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("user_id", userID)), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

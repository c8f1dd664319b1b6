// internal/handlers/content_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"scrum_sensei/internal/model"
	"scrum_sensei/internal/service"
	"scrum_sensei/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	service service.ContentService
	logger  *slog.Logger
}

func NewContentHandler(s service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		service: s,
		logger:  logger,
	}
}

func (h *ContentHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListContents"))

	status := model.ContentStatus(r.URL.Query().Get("status"))
	contents, err := h.service.ListContents(r.Context(), status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if contents == nil {
		contents = []*model.Content{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, contents, logger)
}

func (h *ContentHandler) PostContent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostContent"))

	var req model.CreateContentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	content, err := h.service.CreateContent(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, content, logger)
}

func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	logger := h.logger.With(slog.String("handler", "GetContent"), slog.String("content_id", contentID))

	content, err := h.service.GetContent(r.Context(), contentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, content, logger)
}

// PutContent はコンテンツ全体を更新します。sections は送られた内容で置き換える。
func (h *ContentHandler) PutContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	logger := h.logger.With(slog.String("handler", "PutContent"), slog.String("content_id", contentID))

	var req model.UpdateContentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	content, err := h.service.UpdateContent(r.Context(), contentID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, content, logger)
}

func (h *ContentHandler) PublishContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	logger := h.logger.With(slog.String("handler", "PublishContent"), slog.String("content_id", contentID))

	content, err := h.service.PublishContent(r.Context(), contentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, content, logger)
}

func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	logger := h.logger.With(slog.String("handler", "DeleteContent"), slog.String("content_id", contentID))

	if err := h.service.DeleteContent(r.Context(), contentID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
	"github.com/akshat3144/inkquiry/pkg/api"
)

// NotebookHandler обрабатывает CRUD запросы страниц блокнота.
// Все операции выполняются от имени идентичности из контекста запроса
type NotebookHandler struct {
	logger *slog.Logger
	pages  storage.PageStorage
}

// NewNotebookHandler создает новый handler для страниц блокнота
func NewNotebookHandler(logger *slog.Logger, pages storage.PageStorage) *NotebookHandler {
	return &NotebookHandler{
		logger: logger,
		pages:  pages,
	}
}

// ListPages обрабатывает GET /notebook/pages
// Возвращает все страницы текущего пользователя
func (h *NotebookHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pages, err := h.pages.GetUserPages(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get pages", slog.Any("error", err), slog.String("user_id", user.ID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiPages := make([]api.NotebookPage, 0, len(pages))
	for _, page := range pages {
		apiPages = append(apiPages, toAPIPage(page))
	}

	sendJSON(h.logger, w, apiPages, http.StatusOK)
}

// CreatePage обрабатывает POST /notebook/pages
// Сохраняет новую страницу текущего пользователя
func (h *NotebookHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.NotebookPage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode page", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.DateCreated.IsZero() {
		req.DateCreated = time.Now()
	}

	page := &models.NotebookPage{
		ID:          req.ID,
		UserID:      user.ID,
		Name:        req.Name,
		DateCreated: req.DateCreated,
		Content:     req.Content,
		CanvasData:  req.CanvasData,
	}

	if err := h.pages.CreatePage(ctx, page); err != nil {
		h.logger.ErrorContext(ctx, "failed to create page", slog.Any("error", err), slog.String("user_id", user.ID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "page created",
		slog.String("page_id", page.ID),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, toAPIPage(page), http.StatusOK)
}

// UpdatePage обрабатывает PUT /notebook/pages/{page_id}
// Заменяет страницу текущего пользователя
func (h *NotebookHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pageID := r.PathValue("page_id")
	if pageID == "" {
		sendError(h.logger, w, "page_id is required", http.StatusBadRequest)
		return
	}

	var req api.NotebookPage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode page", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	page := &models.NotebookPage{
		ID:          pageID,
		UserID:      user.ID,
		Name:        req.Name,
		DateCreated: req.DateCreated,
		Content:     req.Content,
		CanvasData:  req.CanvasData,
	}

	if err := h.pages.UpdatePage(ctx, page); err != nil {
		if errors.Is(err, storage.ErrPageNotFound) {
			sendError(h.logger, w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update page", slog.Any("error", err), slog.String("page_id", pageID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, toAPIPage(page), http.StatusOK)
}

// DeletePage обрабатывает DELETE /notebook/pages/{page_id}
func (h *NotebookHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pageID := r.PathValue("page_id")
	if pageID == "" {
		sendError(h.logger, w, "page_id is required", http.StatusBadRequest)
		return
	}

	if err := h.pages.DeletePage(ctx, user.ID, pageID); err != nil {
		if errors.Is(err, storage.ErrPageNotFound) {
			sendError(h.logger, w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete page", slog.Any("error", err), slog.String("page_id", pageID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "page deleted",
		slog.String("page_id", pageID),
		slog.String("user_id", user.ID))

	w.WriteHeader(http.StatusNoContent)
}

// toAPIPage конвертирует модель страницы в API формат
func toAPIPage(page *models.NotebookPage) api.NotebookPage {
	return api.NotebookPage{
		ID:          page.ID,
		Name:        page.Name,
		DateCreated: page.DateCreated,
		Content:     page.Content,
		CanvasData:  page.CanvasData,
	}
}

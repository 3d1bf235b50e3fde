package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/akshat3144/inkquiry/internal/vision"
	"github.com/akshat3144/inkquiry/pkg/api"
)

// Analyzer определяет интерфейс внешнего vision/LLM API
type Analyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, vars map[string]string) ([]vision.Result, error)
}

// AnalyzeHandler обрабатывает запросы распознавания изображений.
// Вся работа делегируется внешнему vision API
type AnalyzeHandler struct {
	logger   *slog.Logger
	analyzer Analyzer
}

// NewAnalyzeHandler создает новый handler для распознавания
func NewAnalyzeHandler(logger *slog.Logger, analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		logger:   logger,
		analyzer: analyzer,
	}
}

// Analyze обрабатывает POST /calculate
// Декодирует data URL с изображением и возвращает распознанные выражения
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode analyze request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	image, err := decodeDataURL(req.Image)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to decode image", slog.Any("error", err))
		sendError(h.logger, w, "invalid image payload", http.StatusBadRequest)
		return
	}

	results, err := h.analyzer.AnalyzeImage(ctx, image, req.DictOfVars)
	if err != nil {
		h.logger.ErrorContext(ctx, "vision api request failed", slog.Any("error", err))
		sendError(h.logger, w, "image analysis failed", http.StatusBadGateway)
		return
	}

	h.logger.InfoContext(ctx, "image analyzed", slog.Int("results", len(results)))

	data := make([]api.AnalyzeResult, 0, len(results))
	for _, res := range results {
		data = append(data, api.AnalyzeResult{
			Expr:   res.Expr,
			Result: res.Result,
			Assign: res.Assign,
		})
	}

	resp := api.AnalyzeResponse{
		Message: "Image processed",
		Data:    data,
		Status:  "success",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// decodeDataURL декодирует "data:image/png;base64,<data>" в сырые байты
func decodeDataURL(dataURL string) ([]byte, error) {
	if dataURL == "" {
		return nil, fmt.Errorf("image is required")
	}

	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		payload = dataURL[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	return image, nil
}

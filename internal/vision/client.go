package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result представляет одно распознанное выражение с canvas
type Result struct {
	Expr   string `json:"expr"`   // исходное выражение
	Result string `json:"result"` // вычисленный результат
	Assign bool   `json:"assign"` // true если выражение присваивает переменную
}

// Client представляет HTTP клиент для внешнего vision/LLM API
// (Gemini-совместимый generateContent endpoint)
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient создает новый vision API клиент
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Формат запроса/ответа generateContent

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// AnalyzeImage отправляет PNG изображение с рукописными выражениями во
// внешний API и возвращает распознанные выражения.
// vars — известные пользовательские переменные для подстановки
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, vars map[string]string) ([]Result, error) {
	varsJSON, err := json.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vars: %w", err)
	}

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: buildPrompt(string(varsJSON))},
				{InlineData: &inlineData{
					MimeType: "image/png",
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	text, err := c.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	results, err := parseResults(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	return results, nil
}

// generateContent выполняет HTTP запрос и достает текст первого кандидата
func (c *Client) generateContent(ctx context.Context, reqBody generateRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("vision api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision api returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt собирает инструкцию для модели: распознать выражения на
// изображении и вернуть строгий JSON список
func buildPrompt(varsJSON string) string {
	return "You are given an image with handwritten mathematical expressions, " +
		"equations or variable assignments. Solve them using PEMDAS order of operations. " +
		"Use this dictionary of user-assigned variables when a variable appears " +
		"in an expression: " + varsJSON + ". " +
		"Return ONLY a JSON array of objects with keys \"expr\", \"result\" and " +
		"optionally \"assign\" (true when the expression assigns a variable), " +
		"with no markdown formatting and no surrounding text."
}

// parseResults извлекает JSON список результатов из текста модели.
// Модель иногда оборачивает ответ в markdown code fence
func parseResults(text string) ([]Result, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var results []Result
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		return nil, err
	}

	return results, nil
}

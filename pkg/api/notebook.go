package api

import (
	"encoding/json"
	"time"
)

// NotebookPage представляет страницу блокнота в API формате
type NotebookPage struct {
	ID          string          `json:"id"`                    // UUID страницы
	Name        string          `json:"name"`                  // название страницы
	DateCreated time.Time       `json:"date_created"`          // время создания
	Content     json.RawMessage `json:"content,omitempty"`     // список {expr, result}
	CanvasData  string          `json:"canvas_data,omitempty"` // сериализованный canvas
}

package models

import (
	"encoding/json"
	"time"
)

// NotebookPage представляет страницу блокнота пользователя
// Content хранится как opaque JSON (список пар выражение/результат),
// CanvasData — сериализованное состояние canvas с фронтенда
type NotebookPage struct {
	ID          string          `json:"id"`           // UUID страницы
	UserID      string          `json:"-"`            // владелец страницы
	Name        string          `json:"name"`         // название страницы
	DateCreated time.Time       `json:"date_created"` // время создания
	Content     json.RawMessage `json:"content"`      // список {expr, result}
	CanvasData  string          `json:"canvas_data"`  // сериализованный canvas
}

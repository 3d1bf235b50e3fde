package api

// AnalyzeRequest представляет запрос на распознавание изображения
type AnalyzeRequest struct {
	Image      string            `json:"image"`        // data URL: "data:image/png;base64,<data>"
	DictOfVars map[string]string `json:"dict_of_vars"` // известные переменные для подстановки
}

// AnalyzeResult представляет одно распознанное выражение
type AnalyzeResult struct {
	Expr   string `json:"expr"`             // исходное выражение
	Result string `json:"result"`           // вычисленный результат
	Assign bool   `json:"assign,omitempty"` // true если выражение присваивает переменную
}

// AnalyzeResponse представляет ответ на запрос распознавания
type AnalyzeResponse struct {
	Message string          `json:"message"` // человекочитаемый статус
	Data    []AnalyzeResult `json:"data"`    // распознанные выражения
	Status  string          `json:"status"`  // "success" или "error"
}

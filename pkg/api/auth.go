package api

import "time"

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Email    string `json:"email"`               // email пользователя
	Password string `json:"password"`            // пароль в открытом виде (только по TLS)
	FullName string `json:"full_name,omitempty"` // отображаемое имя (опционально)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде
}

// TokenResponse представляет ответ с bearer токеном
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда "bearer"
}

// UserResponse представляет публичный профиль пользователя
type UserResponse struct {
	ID        string    `json:"id"`        // UUID пользователя
	Email     string    `json:"email"`     // email
	FullName  string    `json:"full_name"` // отображаемое имя
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

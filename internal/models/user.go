package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Email        string    `json:"email"`      // уникальный email, ключ идентичности
	FullName     string    `json:"full_name"`  // отображаемое имя (опционально)
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
	CreatedAt    time.Time `json:"created_at"` // время создания
}

package handlers

import (
	"context"

	"github.com/akshat3144/inkquiry/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// UserKey ключ для хранения аутентифицированной идентичности в контексте.
// Идентичность живет один запрос и кладется auth middleware
const UserKey contextKey = "user"

// WithUser кладет идентичность в контекст запроса
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser извлекает идентичность из контекста запроса
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}

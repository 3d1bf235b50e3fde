package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/akshat3144/inkquiry/internal/server/auth"
	"github.com/akshat3144/inkquiry/internal/server/handlers"
)

// AuthMetrics определяет интерфейс для учета отказов аутентификации
type AuthMetrics interface {
	RecordAuthRejection(reason string)
}

// AuthMiddleware создает middleware для валидации bearer токена.
// Извлекает токен из заголовка Authorization, прогоняет через
// SessionValidator и кладет идентичность в контекст запроса.
// Все отказы по учетным данным сворачиваются в один generic 401,
// внутренний kind остается в логах и метриках. Ошибка хранилища
// отдается как 503, потому что она ретраябельна для клиента
func AuthMiddleware(logger *slog.Logger, validator *auth.SessionValidator, m AuthMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			user, err := validator.Validate(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrStoreUnavailable) {
					logger.Error("credential store unavailable", slog.Any("error", err))
					http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
					return
				}
				m.RecordAuthRejection(auth.RejectionKind(err))
				logger.Warn("token rejected", slog.String("reason", auth.RejectionKind(err)))
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.Debug("user authenticated",
				slog.String("user_id", user.ID),
				slog.String("email", user.Email))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
		})
	}
}

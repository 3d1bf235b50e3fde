package auth

import "errors"

// Закрытый набор причин отказа. Обработчики ветвятся по kind через
// errors.Is, наружу клиенту уходит только generic unauthorized.
var (
	// ErrInvalidCredentials: неизвестный email или неверный пароль.
	// Оба случая намеренно неразличимы для вызывающего
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignature: подпись токена не сходится с текущим секретом
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrExpired: подпись валидна, но срок действия токена истек
	ErrExpired = errors.New("token expired")

	// ErrMalformedClaims: токен не парсится или в claims нет subject
	ErrMalformedClaims = errors.New("malformed token claims")

	// ErrUnknownSubject: токен валиден, но subject не найден в хранилище
	// (например, удаленный аккаунт)
	ErrUnknownSubject = errors.New("unknown token subject")

	// ErrStoreUnavailable: инфраструктурная ошибка хранилища, не ошибка
	// учетных данных. Маппится в 503, а не в 401
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// RejectionKind возвращает стабильную метку причины отказа для логов и
// метрик. Наружу клиенту метка не отдается
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrMalformedClaims):
		return "malformed_claims"
	case errors.Is(err, ErrUnknownSubject):
		return "unknown_subject"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "unknown"
	}
}

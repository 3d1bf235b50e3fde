package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
)

// SessionValidator превращает bearer строку в аутентифицированную
// идентичность или отказ. Результаты не кешируются: каждый запрос
// ревалидируется от сырого токена
type SessionValidator struct {
	codec *TokenCodec
	users storage.UserStorage
}

// NewSessionValidator создает validator поверх codec и хранилища
func NewSessionValidator(codec *TokenCodec, users storage.UserStorage) *SessionValidator {
	return &SessionValidator{
		codec: codec,
		users: users,
	}
}

// Validate выполняет единственный decode токена и резолвит subject в
// пользователя. Любой отказ codec проходит наружу как есть;
// отсутствующий subject дает ErrUnknownSubject, ошибка I/O хранилища —
// ErrStoreUnavailable
func (v *SessionValidator) Validate(ctx context.Context, token string) (*models.User, error) {
	claims, err := v.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	user, err := v.users.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return user, nil
}

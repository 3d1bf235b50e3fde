package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
)

// Authenticator превращает пару (email, пароль) в аутентифицированную
// идентичность или отказ
type Authenticator struct {
	users  storage.UserStorage
	hasher *PasswordHasher
}

// NewAuthenticator создает Authenticator поверх хранилища и hasher
func NewAuthenticator(users storage.UserStorage, hasher *PasswordHasher) *Authenticator {
	return &Authenticator{
		users:  users,
		hasher: hasher,
	}
}

// Authenticate проверяет учетные данные пользователя.
// Неизвестный email и неверный пароль возвращают один и тот же
// ErrInvalidCredentials, чтобы не раскрывать какие аккаунты существуют.
// Ошибка I/O хранилища возвращается как ErrStoreUnavailable
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

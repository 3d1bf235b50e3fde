package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher инкапсулирует алгоритм хеширования паролей (bcrypt).
// Соль генерируется на каждый вызов, два хеша одного пароля не равны
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает hasher с заданной стоимостью bcrypt.
// cost <= 0 означает bcrypt.DefaultCost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash возвращает bcrypt хеш пароля
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify проверяет пароль против сохраненного хеша.
// Поврежденный хеш неотличим от неверного пароля: оба дают false
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет подписанный claim set токена: subject (email
// пользователя) и срок действия
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec подписывает claim set в opaque bearer строку и обратно.
// Stateless: владеет только секретом процесса, алгоритм фиксирован (HS256)
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec создает codec с секретом процесса.
// Ротация секрета мгновенно инвалидирует все ранее выданные токены
func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Issue строит claim set {sub, exp = now + ttl} и подписывает его
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Decode проверяет подпись и срок действия токена.
// Единственное авторитетное решение: детерминированная функция от
// (token, secret, now), без повторных попыток с ослабленной проверкой.
// Возвращает ErrInvalidSignature, ErrExpired или ErrMalformedClaims
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC: токен с чужим alg отвергается
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedClaims
		default:
			// Несходящаяся подпись, чужой алгоритм и прочие отказы
			// верификации сводятся к одному kind
			return nil, ErrInvalidSignature
		}
	}

	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	if claims.Subject == "" {
		return nil, ErrMalformedClaims
	}

	return claims, nil
}

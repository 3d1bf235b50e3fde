package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/auth"
	"github.com/akshat3144/inkquiry/internal/server/storage"
	"github.com/akshat3144/inkquiry/internal/validation"
	"github.com/akshat3144/inkquiry/pkg/api"
)

// AuthMetrics определяет интерфейс для учета событий аутентификации
type AuthMetrics interface {
	RecordAuthRejection(reason string)
	RecordTokenIssued()
}

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger        *slog.Logger
	users         storage.UserStorage
	authenticator *auth.Authenticator
	hasher        *auth.PasswordHasher
	codec         *auth.TokenCodec
	tokenTTL      time.Duration
	metrics       AuthMetrics
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(
	logger *slog.Logger,
	users storage.UserStorage,
	authenticator *auth.Authenticator,
	hasher *auth.PasswordHasher,
	codec *auth.TokenCodec,
	tokenTTL time.Duration,
	m AuthMetrics,
) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		users:         users,
		authenticator: authenticator,
		hasher:        hasher,
		codec:         codec,
		tokenTTL:      tokenTTL,
		metrics:       m,
	}
}

// Signup обрабатывает POST /auth/signup
// Регистрация нового пользователя
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		h.logger.WarnContext(ctx, "invalid email", slog.String("email", req.Email), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "signup rejected: email already registered", slog.String("email", req.Email))
			sendError(h.logger, w, "Email already registered", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", user.Email),
		slog.String("user_id", user.ID))

	resp := api.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Login обрабатывает POST /auth/token
// Аутентификация и выдача bearer токена. Принимает JSON body
// {email, password} либо OAuth2-style form с полями username/password
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, password, ok := h.parseCredentials(r)
	if !ok {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			h.logger.ErrorContext(ctx, "credential store unavailable", slog.Any("error", err))
			sendError(h.logger, w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		// Причина отказа остается во внутренних логах и метриках,
		// клиент видит только generic ответ
		h.metrics.RecordAuthRejection(auth.RejectionKind(err))
		h.logger.WarnContext(ctx, "login rejected",
			slog.String("email", email),
			slog.String("reason", auth.RejectionKind(err)))
		sendError(h.logger, w, "Incorrect email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.codec.Issue(user.Email, h.tokenTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordTokenIssued()
	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("email", user.Email),
		slog.String("user_id", user.ID))

	resp := api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Me обрабатывает GET /auth/me
// Возвращает профиль текущего пользователя (идентичность кладет middleware)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		h.logger.Error("identity not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp := api.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// parseCredentials достает пару (email, password) из JSON body или из
// form-encoded полей username/password
func (h *AuthHandler) parseCredentials(r *http.Request) (string, string, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("failed to decode login request", slog.Any("error", err))
			return "", "", false
		}
		return req.Email, req.Password, true
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse login form", slog.Any("error", err))
		return "", "", false
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" {
		return "", "", false
	}

	return email, password, true
}

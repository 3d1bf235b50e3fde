package config

import (
	"os"
	"time"
)

// parseEnv накладывает значения из переменных окружения
//
// Поддерживаемые переменные:
//
//	SERVER_ADDR      адрес и порт HTTP сервера
//	DATABASE_PATH    путь к SQLite файлу
//	SECRET_KEY       HMAC секрет для подписи токенов
//	TOKEN_TTL        время жизни токена (формат time.ParseDuration)
//	BCRYPT_COST      стоимость bcrypt
//	VISION_BASE_URL  базовый URL vision API
//	GEMINI_API_KEY   API ключ vision API
//	VISION_MODEL     имя модели vision API
//	LOG_LEVEL        уровень логирования
func parseEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := parseIntEnv(v); err == nil {
			cfg.BcryptCost = cost
		}
	}
	if v := os.Getenv("VISION_BASE_URL"); v != "" {
		cfg.VisionBaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.VisionAPIKey = v
	}
	if v := os.Getenv("VISION_MODEL"); v != "" {
		cfg.VisionModel = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Package config собирает конфигурацию сервера из значений по умолчанию,
// переменных окружения и флагов командной строки (в этом порядке).
package config

import (
	"fmt"
	"time"
)

// Config содержит настройки процесса сервера.
// Секрет и TTL токена фиксируются на старте процесса: ротация секрета
// мгновенно инвалидирует все ранее выданные токены
type Config struct {
	Addr          string        // адрес и порт HTTP сервера
	DatabasePath  string        // путь к SQLite файлу (":memory:" для тестов)
	JWTSecret     string        // HMAC секрет для подписи токенов (HS256)
	TokenTTL      time.Duration // время жизни access токена
	BcryptCost    int           // стоимость bcrypt (0 = default)
	VisionBaseURL string        // базовый URL внешнего vision API
	VisionAPIKey  string        // API ключ vision API
	VisionModel   string        // имя модели vision API
	LogLevel      string        // debug | info | warn | error
}

// LoadDefaults заполняет Config дефолтами для разработки.
// Дефолтный секрет небезопасен и должен быть переопределен в проде
func (c *Config) LoadDefaults() {
	c.Addr = "localhost:8900"
	c.DatabasePath = "inkquiry.db"
	c.JWTSecret = "inkquiry-secure-jwt-key-2025-06-16"
	c.TokenTTL = 24 * time.Hour
	c.BcryptCost = 0
	c.VisionBaseURL = "https://generativelanguage.googleapis.com"
	c.VisionAPIKey = ""
	c.VisionModel = "gemini-1.5-flash"
	c.LogLevel = "info"
}

// Validate проверяет согласованность итоговой конфигурации
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret cannot be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	return nil
}

// Load строит Config: дефолты, поверх них окружение, поверх флаги
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

package config

import (
	"flag"
	"strconv"
	"time"
)

// parseIntEnv конвертирует строковое значение переменной окружения в int
func parseIntEnv(v string) (int, error) {
	return strconv.Atoi(v)
}

// parseFlags накладывает значения из флагов командной строки
//
// Поддерживаемые флаги:
//
//	-a string   адрес и порт HTTP сервера
//	-d string   путь к SQLite файлу
//	-s string   HMAC секрет для подписи токенов
//	-t int      время жизни токена в минутах
//	-l string   уровень логирования
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to SQLite database file")
	fs.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret key for token signing")
	tokenTTLMinutes := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token ttl (in minutes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// TTL из окружения может быть не кратен минуте, поэтому
	// перезаписываем его только когда флаг передан явно
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenTTL = time.Duration(*tokenTTLMinutes) * time.Minute
		}
	})

	return nil
}

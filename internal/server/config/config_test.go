package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8900", cfg.Addr)
	assert.Equal(t, "inkquiry.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "env-api-key", cfg.VisionAPIKey)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("SECRET_KEY", "env-secret")

	cfg, err := Load([]string{"-a", ":9100", "-s", "flag-secret", "-t", "60"})
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, "flag-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_EnvTTLNotRoundedToMinutes(t *testing.T) {
	// TTL из окружения не должен проходить через минутный флаг,
	// если сам флаг не передан
	tests := []struct {
		envTTL string
		want   time.Duration
	}{
		{envTTL: "90s", want: 90 * time.Second},
		{envTTL: "30s", want: 30 * time.Second},
		{envTTL: "1h30m", want: 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.envTTL, func(t *testing.T) {
			t.Setenv("TOKEN_TTL", tt.envTTL)

			cfg, err := Load(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TokenTTL)
		})
	}
}

func TestLoad_InvalidEnvDurationIgnored(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-unknown-flag"})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Addr = "" }},
		{name: "empty database path", mutate: func(c *Config) { c.DatabasePath = "" }},
		{name: "empty secret", mutate: func(c *Config) { c.JWTSecret = "" }},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }},
		{name: "negative ttl", mutate: func(c *Config) { c.TokenTTL = -time.Hour }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

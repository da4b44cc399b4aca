package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:                 "production",
		Port:                "8080",
		JWTSecret:           "secure-secret-at-least-32-chars-long",
		DBDriver:            "postgres",
		DBPassword:          "secure-password",
		DBSSLMode:           "require",
		TracingExporter:     "stdout",
		TracingSamplerRatio: 1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid production", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Default secret in production", func(c *Config) { c.JWTSecret = DefaultJWTSecret }, true},
		{"Short secret in production", func(c *Config) { c.JWTSecret = "short" }, true},
		{"Short secret in development", func(c *Config) { c.Env = "development"; c.JWTSecret = "short" }, false},
		{"Default DB password in production", func(c *Config) { c.DBPassword = "password" }, true},
		{"SSL disabled in production", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"Prod alias with empty SSL mode", func(c *Config) { c.Env = "prod"; c.DBSSLMode = "" }, true},
		{"SSL disabled in development", func(c *Config) { c.Env = "development"; c.DBSSLMode = "disable" }, false},
		{"SQLite in production skips DB checks", func(c *Config) { c.DBDriver = "sqlite"; c.DBPassword = "" }, false},
		{"Unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"Unknown exporter", func(c *Config) { c.TracingExporter = "jaeger" }, true},
		{"Sampler ratio out of range", func(c *Config) { c.TracingSamplerRatio = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("TRACING_EXPORTER", "OTLP")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test", c.Env)
	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, "otlp", c.TracingExporter)
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_RejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "a-strong-database-password")
	t.Setenv("DB_SSLMODE", "require")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Origins(t *testing.T) {
	c := &Config{AllowedOrigins: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Origins())
}

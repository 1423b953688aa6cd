package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_OpenAIConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	defer func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("OPENAI_MODEL")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "test-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("OPENAI_MODEL")
	os.Unsetenv("SESSION_COOKIE_NAME")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "dento_session", cfg.Session.CookieName)
	assert.Equal(t, 168, cfg.Session.TTLHours)
	assert.Equal(t, "dento_portal", cfg.Database.Database)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "dento",
		Password: "secret",
		Database: "portal",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=dento password=secret dbname=portal sslmode=require", cfg.DatabaseDSN())
}

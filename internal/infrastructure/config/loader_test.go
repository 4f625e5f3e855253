package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 20
database:
  driver: sqlite
  path: test.db
  queryTimeout: 3
security:
  pinHashCost: 4
  lockoutWindowMinutes: 10
admin:
  username: root
  passwordHash: "$2a$04$abcdefghijklmnopqrstuu"
  jwtSecret: "0123456789abcdef0123"
  tokenTTLMinutes: 5
cors:
  allowedOrigins:
    - https://bank.example
`

func withConfigDir(t *testing.T, name, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	oldPaths := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = oldPaths })
}

func TestLoadConfig(t *testing.T) {
	t.Run("File values and defaults", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("BANK_ENV", "TEST")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "test.db", cfg.Database.Path)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "serializable", cfg.Database.IsolationLevel)
		assert.Equal(t, 4, cfg.Security.PINHashCost)
		assert.Equal(t, 5, cfg.Security.MaxPINAttempts)
		assert.Equal(t, 10*time.Minute, cfg.Security.LockoutWindow)
		assert.Equal(t, "root", cfg.Admin.Username)
		assert.Equal(t, 5*time.Minute, cfg.Admin.TokenTTL)
		assert.Equal(t, "bank-account-service", cfg.Admin.Issuer)
		assert.Equal(t, 5, cfg.Account.AccountNoAttempts)
		assert.Equal(t, []string{"https://bank.example"}, cfg.CORS.AllowedOrigins)
		assert.Empty(t, cfg.Redis.URL)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("BANK_ENV", Test)
		t.Setenv("BANK_SERVER_PORT", "7070")
		t.Setenv("BANK_DB_PATH", "/tmp/override.db")
		t.Setenv("BANK_REDIS_URL", "redis://localhost:6379/1")
		t.Setenv("BANK_SECURITY_MAX_PIN_ATTEMPTS", "3")
		t.Setenv("BANK_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
		assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
		assert.Equal(t, 3, cfg.Security.MaxPINAttempts)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Missing file", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("BANK_ENV", "staging")

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "postgres", Host: "localhost", Username: "bank", Database: "bank"},
			Admin:    AdminConfig{Username: "admin", PasswordHash: "hash", JWTSecret: "0123456789abcdef"},
		}
	}

	t.Run("Valid postgres config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Sqlite needs only a path", func(t *testing.T) {
		cfg := valid()
		cfg.Database = DatabaseConfig{Driver: "sqlite", Path: "bank.db"}
		assert.NoError(t, cfg.Validate())

		cfg.Database.Path = ""
		assert.ErrorContains(t, cfg.Validate(), "database.path")
	})

	t.Run("Problems are reported together", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Host = ""
		cfg.Admin.JWTSecret = "short"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
		assert.Contains(t, err.Error(), "admin.jwtSecret")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Driver = "mysql"
		assert.ErrorContains(t, cfg.Validate(), "unsupported database.driver")
	})
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. BANK_DB_HOST
const EnvPrefix = "BANK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks the keys the service cannot start without
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.Database.Driver) {
	case "postgres":
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required")
		}
		if c.Database.Username == "" {
			problems = append(problems, "database.username is required")
		}
		if c.Database.Database == "" {
			problems = append(problems, "database.database is required")
		}
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database.path is required for sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported database.driver %q", c.Database.Driver))
	}

	if c.Admin.Username == "" {
		problems = append(problems, "admin.username is required")
	}
	if c.Admin.PasswordHash == "" {
		problems = append(problems, "admin.passwordHash is required")
	}
	if len(c.Admin.JWTSecret) < 16 {
		problems = append(problems, "admin.jwtSecret must be at least 16 characters")
	}
	if c.Server.Port <= 0 {
		problems = append(problems, "server.port must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "bank.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.isolationLevel", "serializable")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("security.pinHashCost", 10)
	v.SetDefault("security.maxPinAttempts", 5)
	v.SetDefault("security.lockoutWindowMinutes", 15)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.tokenTTLMinutes", 30)
	v.SetDefault("admin.issuer", "bank-account-service")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.keyPrefix", "bank:pin-attempts:")

	v.SetDefault("account.accountNoAttempts", 5)

	v.SetDefault("cors.allowedOrigins", []string{"*"})
}

// getEnvironment determines the environment from BANK_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"BANK_DB_DRIVER":           "database.driver",
		"BANK_DB_HOST":             "database.host",
		"BANK_DB_PORT":             "database.port",
		"BANK_DB_USERNAME":         "database.username",
		"BANK_DB_PASSWORD":         "database.password",
		"BANK_DB_NAME":             "database.database",
		"BANK_DB_PATH":             "database.path",
		"BANK_DB_SSL_MODE":         "database.sslMode",
		"BANK_DB_ISOLATION_LEVEL":  "database.isolationLevel",
		"BANK_SERVER_HOST":         "server.host",
		"BANK_SERVER_PORT":         "server.port",
		"BANK_LOGGER_LEVEL":        "logger.level",
		"BANK_ADMIN_USERNAME":      "admin.username",
		"BANK_ADMIN_PASSWORD_HASH": "admin.passwordHash",
		"BANK_ADMIN_JWT_SECRET":    "admin.jwtSecret",
		"BANK_REDIS_URL":           "redis.url",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"BANK_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"BANK_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"BANK_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"BANK_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"BANK_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"BANK_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"BANK_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"BANK_SECURITY_PIN_HASH_COST":        "security.pinHashCost",
		"BANK_SECURITY_MAX_PIN_ATTEMPTS":     "security.maxPinAttempts",
		"BANK_ADMIN_TOKEN_TTL_MINUTES":       "admin.tokenTTLMinutes",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, -1); val >= 0 {
			v.Set(key, val)
		}
	}

	if origins := os.Getenv("BANK_CORS_ALLOWED_ORIGINS"); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		v.Set("cors.allowedOrigins", list)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Security.LockoutWindow = time.Duration(config.Security.LockoutWindow) * time.Minute
	config.Admin.TokenTTL = time.Duration(config.Admin.TokenTTL) * time.Minute
}

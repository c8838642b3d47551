package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Services ServicesConfig
	Context7 Context7Config
	Redis    RedisConfig
	Dispatch DispatchConfig
	Secrets  SecretsConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// ServicesConfig holds content-generation provider credentials. All optional.
type ServicesConfig struct {
	OpenAIAPIKey     string
	OpenAIChatModel  string
	OpenAIImageModel string
	GoogleAIAPIKey   string
	GoogleAIModel    string
	WebAppURI        string
}

// Context7Config holds the dispatch-completion webhook sink settings.
type Context7Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// RedisConfig holds Redis settings used for dispatch locks and the job queue.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// DispatchConfig tunes the campaign dispatcher and the scheduled dispatch loop.
type DispatchConfig struct {
	Concurrency       int           // 1 keeps the per-account loop sequential
	ProviderTimeout   time.Duration // per account
	ProviderRateLimit float64       // sends per second per platform, 0 disables
	ScheduleInterval  time.Duration
	StuckAfter        time.Duration
	LockTTL           time.Duration
}

// SecretsConfig holds the key used to seal credentials at rest.
type SecretsConfig struct {
	Key string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all environment variables.
// Only the database settings are mandatory; everything else degrades gracefully.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// env.local is a convenience for local runs, not a requirement
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	cfg.Services.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Services.OpenAIChatModel = getEnvWithDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	cfg.Services.OpenAIImageModel = getEnvWithDefault("OPENAI_IMAGE_MODEL", "gpt-image-1")
	cfg.Services.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.Services.GoogleAIModel = getEnvWithDefault("GOOGLE_AI_MODEL", "gemini-1.5-flash")
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	cfg.Context7.BaseURL = getEnvWithDefault("CONTEXT7_BASE_URL", "https://api.context7.com")
	cfg.Context7.APIKey = os.Getenv("CONTEXT7_API_KEY")
	if cfg.Context7.Timeout, err = getDurationWithDefault("CONTEXT7_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Enabled = cfg.Redis.Addr != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.Dispatch.Concurrency, err = getIntWithDefault("DISPATCH_CONCURRENCY", 1); err != nil {
		return nil, err
	}
	if cfg.Dispatch.ProviderTimeout, err = getDurationWithDefault("DISPATCH_PROVIDER_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	rateLimit := getEnvWithDefault("DISPATCH_PROVIDER_RATE_LIMIT", "0")
	if cfg.Dispatch.ProviderRateLimit, err = strconv.ParseFloat(rateLimit, 64); err != nil {
		return nil, fmt.Errorf("failed to parse DISPATCH_PROVIDER_RATE_LIMIT: %w", err)
	}
	if cfg.Dispatch.ScheduleInterval, err = getDurationWithDefault("DISPATCH_SCHEDULE_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Dispatch.StuckAfter, err = getDurationWithDefault("DISPATCH_STUCK_AFTER", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Dispatch.LockTTL, err = getDurationWithDefault("DISPATCH_LOCK_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	cfg.Secrets.Key = os.Getenv("SECRETS_KEY")

	if cfg.Server.Port, err = getIntWithDefault("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

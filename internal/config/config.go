package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	Snapshot   SnapshotConfig
	Redis      RedisConfig
	Moderation ModerationConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
}

// SnapshotConfig selects and configures the persistence collaborator.
type SnapshotConfig struct {
	Backend  string // file, redis
	FilePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string // key the snapshot lives under
}

// ModerationConfig configures the optional external classifier.
type ModerationConfig struct {
	Enabled bool
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Load reads config from environment variables. Every knob has a default so
// the engine runs with no environment at all.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Marketplace Catalog"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Snapshot: SnapshotConfig{
			Backend:  getEnv("SNAPSHOT_BACKEND", "file"),
			FilePath: getEnv("SNAPSHOT_FILE", "data/marketplace-snapshot.json"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Key:      getEnv("REDIS_SNAPSHOT_KEY", "marketplace:snapshot"),
		},
		Moderation: ModerationConfig{
			Enabled: getEnvBool("MODERATION_ENABLED", true),
			APIURL:  getEnv("CLASSIFIER_API_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey:  getEnv("CLASSIFIER_API_KEY", ""),
			Model:   getEnv("CLASSIFIER_MODEL", "gpt-4o-mini"),
			Timeout: time.Duration(getEnvInt("CLASSIFIER_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Snapshot.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("unknown snapshot backend %q (expected file or redis)", c.Snapshot.Backend)
	}
	if c.Snapshot.Backend == "file" && c.Snapshot.FilePath == "" {
		return fmt.Errorf("SNAPSHOT_FILE must be set for the file backend")
	}
	if c.Moderation.Timeout <= 0 {
		return fmt.Errorf("CLASSIFIER_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

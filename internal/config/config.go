package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port     int
	Env      string
	LogLevel string

	// CORS
	AllowedOrigins []string

	// ClickHouse
	ClickHouseAddr     string
	ClickHouseDB       string
	ClickHouseUser     string
	ClickHousePassword string

	// PostgreSQL
	PostgresDSN string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Auth
	InternalToken string

	// Rating engine
	RatingRevision string

	// Worker pool
	WorkerCount      int
	QueueSize        int
	BatchSize        int
	FlushInterval    time.Duration
	WarmBoardOnStart bool

	// Caching
	RatingsCacheTTL time.Duration
	BoardCacheTTL   time.Duration

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// IsDevelopment reports whether the service runs with relaxed guards.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnvInt("PORT", 8080),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ClickHouseAddr:     getEnv("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDB:       getEnv("CLICKHOUSE_DB", "hardball"),
		ClickHouseUser:     getEnv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: getEnv("CLICKHOUSE_PASSWORD", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RatingRevision: getEnv("RATING_REVISION", ""),

		WorkerCount:      getEnvInt("WORKER_COUNT", 4),
		QueueSize:        getEnvInt("QUEUE_SIZE", 4096),
		BatchSize:        getEnvInt("BATCH_SIZE", 64),
		FlushInterval:    getEnvDuration("FLUSH_INTERVAL", 2*time.Second),
		WarmBoardOnStart: getEnvBool("WARM_BOARD_ON_START", false),

		RatingsCacheTTL: getEnvDuration("CACHE_TTL_RATINGS", 5*time.Minute),
		BoardCacheTTL:   getEnvDuration("CACHE_TTL_BOARD", 15*time.Minute),

		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresDSN, err = getEnvRequired("POSTGRES_DSN"); err != nil {
		return nil, err
	}

	cfg.InternalToken = getEnv("INTERNAL_TOKEN", "")
	if cfg.InternalToken == "" && !cfg.IsDevelopment() {
		return nil, fmt.Errorf("missing required environment variable: INTERNAL_TOKEN")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

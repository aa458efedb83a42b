package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ServiceName string

	ApiPort     string
	MetricsPort string

	NatsHost    string
	NatsPort    string
	CoreTimeout time.Duration

	RedisHost      string
	RedisPort      string
	IdempotencyTTL time.Duration

	DBUser  string
	DBPass  string
	DBHost  string
	DBPort  string
	DBName  string
	SSLMode string

	AuditEnabled       bool
	AuditWorkerEnabled bool
}

// New loads and validates configuration from environment variables.
// NATS is required: every controller call is forwarded to the core-banking
// engine over it. Redis and Postgres are optional; without Redis the
// idempotency middleware is off, without Postgres the audit worker cannot run.
func New() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	// Required: nats
	if cfg.NatsHost == "" {
		return nil, fmt.Errorf("missing required env for nats: BANK_NATS_HOST")
	}

	if cfg.ApiPort == "" {
		return nil, fmt.Errorf("BANK_API_PORT must not be empty")
	}

	if cfg.CoreTimeout <= 0 {
		return nil, fmt.Errorf("BANK_CORE_TIMEOUT must be positive, got %s", cfg.CoreTimeout)
	}

	if cfg.AuditWorkerEnabled && !cfg.PostgresEnabled() {
		return nil, fmt.Errorf("missing required env for audit worker: BANK_POSTGRES_USER/HOST/DB")
	}

	return cfg, nil
}

// NewMigrate loads configuration for the migration command, which only
// needs the audit database.
func NewMigrate() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if !cfg.PostgresEnabled() {
		return nil, fmt.Errorf("missing required env for postgres: BANK_POSTGRES_USER/HOST/DB")
	}
	return cfg, nil
}

func load() (*Config, error) {
	_ = godotenv.Load()

	coreTimeout, err := getEnvDuration("BANK_CORE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	idempotencyTTL, err := getEnvDuration("BANK_IDEMPOTENCY_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:                getEnv("BANK_ENV", "production"),
		ServiceName:        getEnv("BANK_SERVICE_NAME", "bank-api"),
		ApiPort:            getEnv("BANK_API_PORT", "8080"),
		MetricsPort:        getEnv("BANK_METRICS_PORT", "9090"),
		NatsHost:           os.Getenv("BANK_NATS_HOST"),
		NatsPort:           getEnv("BANK_NATS_PORT", "4222"),
		CoreTimeout:        coreTimeout,
		RedisHost:          os.Getenv("BANK_REDIS_HOST"),
		RedisPort:          getEnv("BANK_REDIS_PORT", "6379"),
		IdempotencyTTL:     idempotencyTTL,
		DBUser:             os.Getenv("BANK_POSTGRES_USER"),
		DBPass:             os.Getenv("BANK_POSTGRES_PASSWORD"),
		DBHost:             os.Getenv("BANK_POSTGRES_HOST"),
		DBPort:             getEnv("BANK_POSTGRES_PORT", "5432"),
		DBName:             os.Getenv("BANK_POSTGRES_DB"),
		SSLMode:            getEnv("BANK_POSTGRES_SSLMODE", "disable"),
		AuditEnabled:       getEnv("BANK_AUDIT_ENABLED", "true") == "true",
		AuditWorkerEnabled: os.Getenv("BANK_AUDIT_WORKER_ENABLED") == "true",
	}, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName, c.SSLMode)
}

func (c *Config) NatsAddr() string {
	return fmt.Sprintf("nats://%s:%s", c.NatsHost, c.NatsPort)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c *Config) ApiAddr() string {
	return ":" + c.ApiPort
}

// MetricsAddr returns an error when BANK_METRICS_PORT is empty; callers
// skip the metrics server in that case.
func (c *Config) MetricsAddr() (string, error) {
	if c.MetricsPort == "" {
		return "", fmt.Errorf("metrics server is disabled (BANK_METRICS_PORT is empty)")
	}
	return ":" + c.MetricsPort, nil
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) PostgresEnabled() bool {
	return c.DBUser != "" && c.DBHost != "" && c.DBName != ""
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

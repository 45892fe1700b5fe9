package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sbilibin2017/gw-blog/internal/jwt"
)

// Application environments selected by APP_ENV.
const (
	envDevelopment = "development"
	envProduction  = "production"
	envTesting     = "testing"
)

var errDefaultSecret = errors.New("JWT_SECRET_KEY must be set in production")

// config holds every setting of the service.
type config struct {
	Env      string
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RoleCacheTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	GRPCPort string

	JWTSecretKey string
	JWTExp       time.Duration

	SeedPath string
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, gRPC, logging and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.Env = getEnv("APP_ENV", envDevelopment)
	defaultLevel := "info"
	switch cfg.Env {
	case envDevelopment:
		defaultLevel = "debug"
	case envTesting:
		defaultLevel = "warn"
	case envProduction:
	default:
		return nil, fmt.Errorf("unknown APP_ENV %q", cfg.Env)
	}
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", defaultLevel)

	// PostgreSQL config
	pgPort, err := getInt("POSTGRES_PORT", "5432")
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = getEnv("DATABASE_URL", fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "blog"),
	))
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	ttl, err := getInt("ROLE_CACHE_TTL_SECOND", "60")
	if err != nil {
		return nil, err
	}
	cfg.RoleCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "blog-events")

	// gRPC config
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", getEnv("SECRET_KEY", jwt.DefaultSecretKey))
	if cfg.Env == envProduction && cfg.JWTSecretKey == jwt.DefaultSecretKey {
		return nil, errDefaultSecret
	}
	jwtExp, err := getInt("JWT_EXP_SECOND", "900")
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	cfg.SeedPath = getEnv("SEED_PATH", "")

	return cfg, nil
}

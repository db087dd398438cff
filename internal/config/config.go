package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	DBURL string

	CORSAllowedOrigins []string
	InternalJobToken   string

	AccountBaseURL        string
	AccountIntrospectPath string
	AccountTimeout        time.Duration

	ScorerBaseURL              string
	ScorerAPIKey               string
	ScorerTimeout              time.Duration
	ScorerMaxRetries           int
	ScorerCircuitEnabled       bool
	ScorerCircuitFailureCount  int
	ScorerCircuitOpenTimeout   time.Duration
	ScorerCircuitHalfOpenMaxRq int

	RefreshMaxWorkers int

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	accountTimeout, err := getEnvAsDuration("ACCOUNT_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_TIMEOUT: %w", err)
	}

	scorerBaseURL := strings.TrimSpace(getEnv("SCORER_BASE_URL", ""))
	scorerTimeout, err := getEnvAsDuration("SCORER_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_TIMEOUT: %w", err)
	}
	scorerMaxRetries, err := getEnvAsInt("SCORER_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_MAX_RETRIES: %w", err)
	}
	scorerCircuitEnabled, err := strconv.ParseBool(getEnv("SCORER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_CIRCUIT_ENABLED: %w", err)
	}
	scorerCircuitFailureCount, err := getEnvAsInt("SCORER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	scorerCircuitOpenTimeout, err := getEnvAsDuration("SCORER_CIRCUIT_OPEN_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	scorerCircuitHalfOpenMaxRq, err := getEnvAsInt("SCORER_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	// A missing scorer URL is only acceptable outside prod, where the
	// in-memory points source backs the matchup engine.
	if appEnv == EnvProd && scorerBaseURL == "" {
		return Config{}, fmt.Errorf("SCORER_BASE_URL is required when APP_ENV=prod")
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if appEnv == EnvProd && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when APP_ENV=prod")
	}

	refreshMaxWorkers, err := getEnvAsInt("REFRESH_MAX_WORKERS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REFRESH_MAX_WORKERS: %w", err)
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "fantasy-wrestling"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       ":" + getEnv("PORT", "8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,

		DBURL: dbURL,

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		AccountBaseURL:        strings.TrimSpace(getEnv("ACCOUNT_BASE_URL", "")),
		AccountIntrospectPath: getEnv("ACCOUNT_INTROSPECT_PATH", "/v1/oauth/introspect"),
		AccountTimeout:        accountTimeout,

		ScorerBaseURL:              scorerBaseURL,
		ScorerAPIKey:               strings.TrimSpace(getEnv("SCORER_API_KEY", "")),
		ScorerTimeout:              scorerTimeout,
		ScorerMaxRetries:           scorerMaxRetries,
		ScorerCircuitEnabled:       scorerCircuitEnabled,
		ScorerCircuitFailureCount:  scorerCircuitFailureCount,
		ScorerCircuitOpenTimeout:   scorerCircuitOpenTimeout,
		ScorerCircuitHalfOpenMaxRq: scorerCircuitHalfOpenMaxRq,

		RefreshMaxWorkers: refreshMaxWorkers,

		LogLevel: parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		candidate := strings.TrimSpace(part)
		if candidate == "" {
			continue
		}
		out = append(out, candidate)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

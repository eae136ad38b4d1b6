package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"parcels/internal/adapters/out/postgres"
	"parcels/internal/jobs"

	"github.com/joho/godotenv"
)

// Leg network sources.
const (
	LegSourceBuiltin  = "builtin"
	LegSourceFile     = "file"
	LegSourcePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	LogLevel               slog.Level
	LegSource              string
	LegFile                string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LegSeed                bool
	LegQueueReportSchedule string
}

// LoadConfig reads the configuration from the environment. Values from a
// .env file in the working directory are used for variables that are not
// already set; the file is optional.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds the configuration from lookup and reports every
// invalid or missing value together.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:   get("HTTP_PORT", "8080"),
		LegSource:  strings.ToLower(get("LEG_SOURCE", LegSourceBuiltin)),
		LegFile:    get("LEG_FILE", ""),
		DBHost:     get("DB_HOST", ""),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", ""),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", ""),
		DBSslMode:  get("DB_SSLMODE", "disable"),
	}

	var errList []error

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	seed, err := strconv.ParseBool(get("LEG_SEED", "false"))
	if err != nil {
		errList = append(errList, fmt.Errorf("LEG_SEED: %w", err))
	}
	cfg.LegSeed = seed

	// Unset means the default schedule; set but empty disables the report.
	cfg.LegQueueReportSchedule = jobs.DefaultLegQueueReportSchedule
	if v, ok := lookup("LEG_QUEUE_REPORT_SCHEDULE"); ok {
		cfg.LegQueueReportSchedule = strings.TrimSpace(v)
	}

	if port, portErr := strconv.Atoi(cfg.HTTPPort); portErr != nil || port < 1 || port > 65535 {
		errList = append(errList, fmt.Errorf("HTTP_PORT: %q is not a valid port", cfg.HTTPPort))
	}

	switch cfg.LegSource {
	case LegSourceBuiltin:
	case LegSourceFile:
		if cfg.LegFile == "" {
			errList = append(errList, errors.New("LEG_FILE is required when LEG_SOURCE is file"))
		}
	case LegSourcePostgres:
		required := []struct{ key, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_USER", cfg.DBUser},
			{"DB_NAME", cfg.DBName},
		}
		for _, r := range required {
			if r.value == "" {
				errList = append(errList, fmt.Errorf("%s is required when LEG_SOURCE is postgres", r.key))
			}
		}
	default:
		errList = append(errList, fmt.Errorf("LEG_SOURCE: unknown source %q", cfg.LegSource))
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}
	return cfg, nil
}

// Postgres returns the connection settings of the leg store.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

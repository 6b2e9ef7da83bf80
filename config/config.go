package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/guttosm/bondcalc/internal/solver"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_RATE_LIMIT=60
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=bondcalc
//	SOLVER_TOLERANCE=1e-6
//	INGEST_MAX_ATTEMPTS=3
//	INGEST_HOLIDAYS=2025-01-01,2025-12-25
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Solver   SolverConfig   // Bisection search interval and stopping rules
	Ingest   IngestConfig   // Curve file ingestion settings
}

// ServerConfig holds HTTP server settings: listen port, per-IP requests per
// minute and the per-request deadline.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RequestTimeout time.Duration
}

// PostgresConfig defines connection details for PostgreSQL.
// URL is the computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// SolverConfig mirrors solver.Policy. MaxIterations and ResidualTolerance
// of zero mean "derived" and "disabled".
type SolverConfig struct {
	LowerBound        float64
	UpperBound        float64
	Tolerance         float64
	MaxIterations     int
	ResidualTolerance float64
}

// IngestConfig controls batch size, the retry policy for batch writes and
// the holiday calendar used to decide which days must have a curve file.
type IngestConfig struct {
	BatchSize      int
	MaxAttempts    int
	BackoffInitial time.Duration
	Holidays       []time.Time
}

// AppConfig is the globally accessible configuration instance, populated once by LoadConfig.
var AppConfig Config

// SolverPolicy converts the solver settings into a solver.Policy. An unset
// solver section (AppConfig built without LoadConfig) yields solver.DefaultPolicy.
func (c Config) SolverPolicy() solver.Policy {
	if c.Solver == (SolverConfig{}) {
		return solver.DefaultPolicy()
	}
	return solver.Policy{
		Lower:             c.Solver.LowerBound,
		Upper:             c.Solver.UpperBound,
		Tolerance:         c.Solver.Tolerance,
		MaxIterations:     c.Solver.MaxIterations,
		ResidualTolerance: c.Solver.ResidualTolerance,
	}
}

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Missing or inconsistent values terminate the process through validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_RATE_LIMIT", 60)
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "bondcalc")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	def := solver.DefaultPolicy()
	viper.SetDefault("SOLVER_LOWER_BOUND", def.Lower)
	viper.SetDefault("SOLVER_UPPER_BOUND", def.Upper)
	viper.SetDefault("SOLVER_TOLERANCE", def.Tolerance)
	viper.SetDefault("SOLVER_MAX_ITERATIONS", 0)
	viper.SetDefault("SOLVER_RESIDUAL_TOLERANCE", 0.0)

	viper.SetDefault("INGEST_BATCH_SIZE", 5000)
	viper.SetDefault("INGEST_MAX_ATTEMPTS", 3)
	viper.SetDefault("INGEST_BACKOFF_INITIAL", "200ms")
	viper.SetDefault("INGEST_HOLIDAYS", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	holidays, err := parseHolidays(viper.GetString("INGEST_HOLIDAYS"))
	if err != nil {
		log.Fatalf("invalid INGEST_HOLIDAYS: %v\n", err)
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RateLimit:      viper.GetInt("SERVER_RATE_LIMIT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Solver: SolverConfig{
			LowerBound:        viper.GetFloat64("SOLVER_LOWER_BOUND"),
			UpperBound:        viper.GetFloat64("SOLVER_UPPER_BOUND"),
			Tolerance:         viper.GetFloat64("SOLVER_TOLERANCE"),
			MaxIterations:     viper.GetInt("SOLVER_MAX_ITERATIONS"),
			ResidualTolerance: viper.GetFloat64("SOLVER_RESIDUAL_TOLERANCE"),
		},
		Ingest: IngestConfig{
			BatchSize:      viper.GetInt("INGEST_BATCH_SIZE"),
			MaxAttempts:    viper.GetInt("INGEST_MAX_ATTEMPTS"),
			BackoffInitial: viper.GetDuration("INGEST_BACKOFF_INITIAL"),
			Holidays:       holidays,
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// parseHolidays reads a comma-separated list of YYYY-MM-DD dates.
func parseHolidays(raw string) ([]time.Time, error) {
	var out []time.Time
	for _, part := range strings.Split(raw, ",") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", s, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// validateConfig ensures required variables are present and consistent and
// terminates the application with log.Fatalf if they are not.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}

	if AppConfig.Server.RateLimit <= 0 || AppConfig.Server.RequestTimeout <= 0 {
		log.Fatalf("Invalid SERVER_* settings: rate_limit=%d request_timeout=%s\n",
			AppConfig.Server.RateLimit, AppConfig.Server.RequestTimeout)
	}
	if err := AppConfig.SolverPolicy().Validate(); err != nil {
		log.Fatalf("Invalid SOLVER_* settings: %v\n", err)
	}
	if AppConfig.Ingest.BatchSize <= 0 || AppConfig.Ingest.MaxAttempts <= 0 || AppConfig.Ingest.BackoffInitial < 0 {
		log.Fatalf("Invalid INGEST_* settings: batch=%d attempts=%d backoff=%s\n",
			AppConfig.Ingest.BatchSize, AppConfig.Ingest.MaxAttempts, AppConfig.Ingest.BackoffInitial)
	}
}

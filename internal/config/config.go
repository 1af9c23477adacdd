package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"9446"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// In all cases the default behavior should be for the docker compose setup
	DBDriver         string `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	OperatorWorkers int  `env:"OPERATOR_WORKERS" envDefault:"4"`
	MigrateOnStart  bool `env:"MIGRATE_ON_START" envDefault:"true"`
}

// ProcessEnvironmentVariables loads an optional .env file and parses the
// environment into a validated Config.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("config: no .env file loaded")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DSN returns the connection string for the configured driver. Both lib/pq
// and pgx accept the postgres:// URL form.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid PORT %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid LOG_LEVEL %q", c.LogLevel))
	}

	if c.DBDriver != DriverPostgres && c.DBDriver != DriverPgx {
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER %q: must be %q or %q", c.DBDriver, DriverPostgres, DriverPgx))
	}

	if c.PostgresAddress == "" {
		problems = append(problems, "POSTGRES_ADDRESS cannot be empty")
	}

	if c.PostgresDB == "" {
		problems = append(problems, "POSTGRES_DB cannot be empty")
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid OPERATOR_WORKERS %d: must be at least 1", c.OperatorWorkers))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n- " + strings.Join(problems, "\n- "))
	}

	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basketsplit/internal/pkg/errs"
)

// Catalog sources selectable with CATALOG_SOURCE.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	CatalogSource          string
	CatalogPath            string
	CatalogRefreshSchedule string
	MetricsNamespace       string
	LogLevel               string
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}

	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"CATALOG_PATH",
				fmt.Errorf("required when CATALOG_SOURCE is %q", CatalogSourceFile),
			))
		}
	case CatalogSourcePostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
					name,
					fmt.Errorf("required when CATALOG_SOURCE is %q", CatalogSourcePostgres),
				))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"CATALOG_SOURCE",
			fmt.Errorf("%q is neither %q nor %q", c.CatalogSource, CatalogSourceFile, CatalogSourcePostgres),
		))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// UsesPostgres reports whether the catalog is kept in the database.
func (c Config) UsesPostgres() bool {
	return c.CatalogSource == CatalogSourcePostgres
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Level returns the configured log level, Info when unset or invalid.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

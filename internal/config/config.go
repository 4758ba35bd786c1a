// Package config resolves runtime settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultSQLitePath is used when DATABASE_URL is empty and the driver is sqlite.
	DefaultSQLitePath = "data/survey.db"
)

// Database selects the storage backend.
type Database struct {
	Driver string
	URL    string
}

// Config holds everything cmd/api needs to start.
type Config struct {
	Port         int
	Database     Database
	AllowOrigins string
	LogLevel     string
	LogFormat    string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadEnvFile loads variables from a .env file without overriding the process environment.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// Load parses args; every flag can also be set through its upper-case env var
// (database-url -> DATABASE_URL).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("readiness-api", flag.ContinueOnError)
	var (
		cfg Config
		_   = fs.String("config", "", "config file (optional), one 'flag value' pair per line")
	)
	fs.IntVar(&cfg.Port, "port", 8080, "port to listen on")
	fs.StringVar(&cfg.Database.Driver, "database-driver", DriverSQLite, "storage backend: sqlite or postgres")
	fs.StringVar(&cfg.Database.URL, "database-url", "", "sqlite file path or postgres DSN")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", "http://localhost:3000", "comma separated CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", "json", "json or console")
	fs.IntVar(&cfg.BodyLimit, "body-limit", 1024*1024, "maximum request body in bytes")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", 5*time.Second, "HTTP read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", 10*time.Second, "HTTP write timeout")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", 120*time.Second, "HTTP idle timeout")

	err := ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	db, err := resolveDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	cfg.Database = db

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return &cfg, nil
}

// DatabaseFromEnv reads DATABASE_DRIVER and DATABASE_URL with the same defaults as Load.
func DatabaseFromEnv() (Database, error) {
	return resolveDatabase(Database{
		Driver: os.Getenv("DATABASE_DRIVER"),
		URL:    os.Getenv("DATABASE_URL"),
	})
}

func resolveDatabase(db Database) (Database, error) {
	db.Driver = strings.ToLower(strings.TrimSpace(db.Driver))
	if db.Driver == "" {
		db.Driver = DriverSQLite
	}

	switch db.Driver {
	case DriverSQLite:
		if db.URL == "" {
			db.URL = DefaultSQLitePath
		}
	case DriverPostgres:
		if db.URL == "" {
			return db, errors.New("DATABASE_URL is not defined in the environment")
		}
	default:
		return db, fmt.Errorf("unsupported database driver %q", db.Driver)
	}
	return db, nil
}

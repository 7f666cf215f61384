// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort        = 3318
	DefaultMaxEntries  = 20
	DefaultSendBacklog = 64
	DefaultSQLiteURL   = "file:survey.db"
)

type Config struct {
	Port         int
	TCPPort      int
	DatabaseURL  string
	DatabaseType string
	MaxEntries   int
	AdminKeySalt string
	SaveInterval time.Duration
	SendBacklog  int
}

// LoadEnvFile loads KEY=value pairs from path into the environment.
// A missing file is not an error, and variables already set win.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("live-survey", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "HTTP/WebSocket port")
	fs.IntVar(&cfg.TCPPort, "tcp", -1, "Line protocol TCP port (0 disables)")

	// Storage
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.DurationVar(&cfg.SaveInterval, "save-interval", -1, "Periodic save interval (0 disables)")

	// Survey
	fs.IntVar(&cfg.MaxEntries, "m", 0, "Maximum number of survey entries")
	fs.IntVar(&cfg.SendBacklog, "backlog", 0, "Outbound messages buffered per connection")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = intFromEnv("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}
	if cfg.TCPPort < 0 {
		if cfg.TCPPort, err = intFromEnv("TCP_PORT", 0); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxEntries == 0 {
		if cfg.MaxEntries, err = intFromEnv("MAX_ENTRIES", DefaultMaxEntries); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxEntries <= 0 {
		return Config{}, errors.New("max entries must be positive")
	}
	if cfg.SendBacklog == 0 {
		if cfg.SendBacklog, err = intFromEnv("SEND_BACKLOG", DefaultSendBacklog); err != nil {
			return Config{}, err
		}
	}
	if cfg.SendBacklog <= 0 {
		return Config{}, errors.New("send backlog must be positive")
	}

	if cfg.SaveInterval < 0 {
		cfg.SaveInterval = 0
		if s := os.Getenv("SAVE_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil || d < 0 {
				return Config{}, errors.New("invalid SAVE_INTERVAL env variable")
			}
			cfg.SaveInterval = d
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	// Optional: without a salt the admin endpoint is disabled
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}

	return cfg, nil
}

func intFromEnv(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}

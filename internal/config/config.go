package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the time-helper application
type Config struct {
	Database    DatabaseConfig
	Report      ReportConfig
	Engine      EngineConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TH_DB_DIR"`
	Filename       string        `env:"TH_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TH_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TH_DB_DIR_PERMISSIONS"`
}

// ReportConfig holds report rendering configuration
type ReportConfig struct {
	Timezone      string `env:"TH_REPORT_TIMEZONE"`
	Precision     int    `env:"TH_REPORT_PRECISION"`
	DefaultFormat string `env:"TH_REPORT_FORMAT"`
}

// EngineConfig holds external time-tracking engine configuration
type EngineConfig struct {
	Binary  string        `env:"TH_ENGINE_BINARY"`
	Timeout time.Duration `env:"TH_ENGINE_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TH_APP_TIMEOUT"`
	Verbose bool          `env:"TH_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".time-helper")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "time_helper.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Report: ReportConfig{
			Timezone:      "", // empty means the process-local zone
			Precision:     2,
			DefaultFormat: "terminal",
		},
		Engine: EngineConfig{
			Binary:  "timew",
			Timeout: 30 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Location resolves the configured report time zone. An empty setting
// means day bucketing follows the process's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Report.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Report.Timezone)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TH_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TH_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TH_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("TH_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Report configuration
	if tz := os.Getenv("TH_REPORT_TIMEZONE"); tz != "" {
		c.Report.Timezone = tz
	}
	if precision := os.Getenv("TH_REPORT_PRECISION"); precision != "" {
		if n, err := strconv.Atoi(precision); err == nil && n > 0 {
			c.Report.Precision = n
		}
	}
	if format := os.Getenv("TH_REPORT_FORMAT"); format != "" {
		c.Report.DefaultFormat = format
	}

	// Engine configuration
	if binary := os.Getenv("TH_ENGINE_BINARY"); binary != "" {
		c.Engine.Binary = binary
	}
	if timeout := os.Getenv("TH_ENGINE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Engine.Timeout = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("TH_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TH_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Load creates a configuration from defaults and the environment
func Load() *Config {
	cfg := NewConfig()
	cfg.LoadFromEnvironment()
	return cfg
}

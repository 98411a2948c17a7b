package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "time_helper.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)
	assert.Empty(t, cfg.Report.Timezone)
	assert.Equal(t, 2, cfg.Report.Precision)
	assert.Equal(t, "terminal", cfg.Report.DefaultFormat)
	assert.Equal(t, "timew", cfg.Engine.Binary)
	assert.Equal(t, 30*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/tmp/th-test"
	cfg.Database.Filename = "cache.db"

	assert.Equal(t, filepath.Join("/tmp/th-test", "cache.db"), cfg.GetDatabasePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TH_DB_DIR", "/data/th")
	t.Setenv("TH_DB_FILENAME", "entries.db")
	t.Setenv("TH_DB_QUERY_TIMEOUT", "5s")
	t.Setenv("TH_DB_DIR_PERMISSIONS", "0700")
	t.Setenv("TH_REPORT_TIMEZONE", "Europe/London")
	t.Setenv("TH_REPORT_PRECISION", "3")
	t.Setenv("TH_REPORT_FORMAT", "markdown")
	t.Setenv("TH_ENGINE_BINARY", "/opt/timew/bin/timew")
	t.Setenv("TH_ENGINE_TIMEOUT", "10s")
	t.Setenv("TH_APP_TIMEOUT", "90s")
	t.Setenv("TH_APP_VERBOSE", "true")

	cfg := Load()

	assert.Equal(t, "/data/th", cfg.Database.Dir)
	assert.Equal(t, "entries.db", cfg.Database.Filename)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, "Europe/London", cfg.Report.Timezone)
	assert.Equal(t, 3, cfg.Report.Precision)
	assert.Equal(t, "markdown", cfg.Report.DefaultFormat)
	assert.Equal(t, "/opt/timew/bin/timew", cfg.Engine.Binary)
	assert.Equal(t, 10*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 90*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TH_DB_QUERY_TIMEOUT", "not-a-duration")
	t.Setenv("TH_REPORT_PRECISION", "-1")
	t.Setenv("TH_APP_VERBOSE", "maybe")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 2, cfg.Report.Precision)
	assert.False(t, cfg.Application.Verbose)
}

func TestLocation(t *testing.T) {
	cfg := NewConfig()

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Report.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Report.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
project_id: grants-platform-dev
source_db:
  dbname: grants_operational
warehouse_db:
  dbname: grants_warehouse
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "grants-platform-dev", cfg.ProjectID)
	assert.Equal(t, "localhost", cfg.SourceDB.Host)
	assert.Equal(t, 5432, cfg.WarehouseDB.Port)
	assert.Equal(t, time.Hour, cfg.Sync.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Sync.CycleTimeout)
	assert.Equal(t, 8, cfg.Sync.Workers)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "grantsync", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "grant.synced", cfg.RabbitMQ.RoutingKey)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_WAREHOUSE_PASSWORD", "hunter2")
	path := writeConfig(t, `
project_id: grants-platform-dev
source_db:
  dbname: grants_operational
warehouse_db:
  dbname: grants_warehouse
  password: ${TEST_WAREHOUSE_PASSWORD}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.WarehouseDB.Password)
}

func TestLoad_MissingProjectID(t *testing.T) {
	path := writeConfig(t, `
source_db:
  dbname: grants_operational
warehouse_db:
  dbname: grants_warehouse
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id")
}

func TestLoad_MissingWarehouseDB(t *testing.T) {
	path := writeConfig(t, `
project_id: grants-platform-dev
source_db:
  dbname: grants_operational
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse_db")
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "sync",
		Password: "secret",
		DBName:   "grants_warehouse",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=sync password=secret dbname=grants_warehouse sslmode=require",
		db.DSN(),
	)
}

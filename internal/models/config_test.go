package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.EqualValues(t, 10, cfg.DBMaxConns)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Seed.Customers)
	assert.Equal(t, 10, cfg.Seed.Restaurants)
	assert.Equal(t, 30, cfg.Seed.Orders)
	assert.Equal(t, 30, cfg.Seed.Deliveries)
	assert.False(t, cfg.Seed.StartDate.IsZero())
	assert.True(t, cfg.Seed.StartDate.Before(time.Now()))
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, "local", cfg.Export.Destination)

	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=foodadmin sslmode=disable", cfg.DSN())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FOODADMIN_DATABASE_URL", "postgres://u:p@db:5432/food")
	t.Setenv("FOODADMIN_SEED_CUSTOMERS", "5")
	t.Setenv("FOODADMIN_KAFKA_ENABLED", "true")
	t.Setenv("FOODADMIN_KAFKA_BROKER_LIST", "k1:9092, k2:9092,")
	t.Setenv("FOODADMIN_EXPORT_BUCKET", "reports")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/food", cfg.DSN())
	assert.Equal(t, 5, cfg.Seed.Customers)
	assert.Equal(t, 5, cfg.Seed.Count(KindCustomer))
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers())
	assert.Equal(t, "reports", cfg.Export.Bucket)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodadmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_host: pg.internal
http_addr: ":9090"
shutdown_timeout: 3s
seed:
  orders: 12
  random_seed: 7
  start_date: "2024-01-01T00:00:00Z"
export:
  destination: s3
  bucket: food-exports
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.DBHost)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 12, cfg.Seed.Count(KindOrder))
	assert.EqualValues(t, 7, cfg.Seed.RandomSeed)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Seed.StartDate.UTC())
	assert.Equal(t, "s3", cfg.Export.Destination)
	assert.Equal(t, "food-exports", cfg.Export.Bucket)
	// Unset keys keep their defaults.
	assert.Equal(t, 20, cfg.Seed.Customers)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

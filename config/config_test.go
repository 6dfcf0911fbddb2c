package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
http:
  address: ":8080"
grpc:
  address: ":9090"
database:
  host: localhost
  port: 5432
  user: routes
  password: secret
  name: schedule
  ssl_mode: disable
redis:
  addr: "localhost:6379"
  db: 2
kafka:
  brokers: ["localhost:9092", "localhost:9093"]
  queries_topic: route-queries
  results_topic: route-results
  group_id: route-worker
routes:
  cache_ttl_seconds: 90
worker:
  reload_interval_minutes: 5
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, "host=localhost port=5432 user=routes password=secret dbname=schedule sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
	assert.Equal(t, "route-queries", cfg.Kafka.QueriesTopic)
	assert.Equal(t, "route-results", cfg.Kafka.ResultsTopic)
	assert.Equal(t, 90*time.Second, cfg.Routes.CacheTTL())
	assert.Equal(t, 5*time.Minute, cfg.Worker.ReloadInterval())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0o600))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestWorkerConfig_DefaultReloadInterval(t *testing.T) {
	assert.Equal(t, 10*time.Minute, WorkerConfig{}.ReloadInterval())
}

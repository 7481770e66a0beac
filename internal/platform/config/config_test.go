package config

import (
	"testing"

	"animal-shelter-api/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverAuto, cfg.Driver)
	assert.Equal(t, DriverMemory, cfg.ResolvedDriver())
	assert.Equal(t, 27017, cfg.Mongo.Port)
	assert.Equal(t, "shelter", cfg.Mongo.Database)
	assert.Equal(t, logger.Info, cfg.Log.Level)
	assert.Equal(t, logger.FormatText, cfg.Log.Format)
	assert.Zero(t, cfg.RateLimit.RPS)
}

func TestFromLookup_Values(t *testing.T) {
	cfg, err := FromLookup(env(map[string]string{
		"PORT":             "9000",
		"MONGO_HOST":       "db",
		"MONGO_PORT":       "27018",
		"MONGO_USERNAME":   "aacuser",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, DriverMongo, cfg.ResolvedDriver())
	assert.Equal(t, MongoConfig{Host: "db", Port: 27018, Database: "shelter", Username: "aacuser"}, cfg.Mongo)
	assert.Equal(t, logger.Debug, cfg.Log.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
	assert.Equal(t, RateLimit{RPS: 2.5, Burst: 5}, cfg.RateLimit)
}

func TestResolvedDriver(t *testing.T) {
	cfg, err := FromLookup(env(map[string]string{"DB_DSN": "postgres://x"}))
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.ResolvedDriver())

	cfg, err = FromLookup(env(map[string]string{"DB_DSN": "postgres://x", "STORE_DRIVER": "memory"}))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.ResolvedDriver())
}

func TestFromLookup_Invalid(t *testing.T) {
	for _, m := range []map[string]string{
		{"MONGO_PORT": "abc"},
		{"RATE_LIMIT_RPS": "fast"},
		{"RATE_LIMIT_BURST": "-1"},
		{"STORE_DRIVER": "redis"},
	} {
		_, err := FromLookup(env(m))
		assert.Error(t, err, "env %v", m)
	}
}

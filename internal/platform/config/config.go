// Package config lee la configuración del proceso desde variables de entorno.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"animal-shelter-api/internal/platform/logger"
)

// StoreDriver elige el backend del document store.
type StoreDriver string

const (
	DriverAuto     StoreDriver = "auto"
	DriverMemory   StoreDriver = "memory"
	DriverMongo    StoreDriver = "mongo"
	DriverPostgres StoreDriver = "postgres"
)

// MongoConfig son los parámetros MONGO_*; cmd/api los pasa al adapter.
type MongoConfig struct {
	URI      string
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

type RateLimit struct {
	RPS   float64 // 0 = deshabilitado
	Burst int
}

type Config struct {
	Addr string

	Driver   StoreDriver
	Mongo    MongoConfig
	Postgres string // DB_DSN

	Log logger.Options

	RateLimit  RateLimit
	CORSOrigin string
}

// Load lee el entorno del proceso.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup arma la config con lookup (os.LookupEnv en producción).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Addr:       ":" + get("PORT", "8080"),
		Postgres:   get("DB_DSN", ""),
		CORSOrigin: get("CORS_ALLOWED_ORIGIN", ""),
		Log: logger.Options{
			Level:  logger.ParseLevel(get("LOG_LEVEL", "info")),
			Format: logger.ParseFormat(get("LOG_FORMAT", "text")),
			App:    get("APP_NAME", "animal-shelter-api"),
		},
		Mongo: MongoConfig{
			URI:      get("MONGO_URI", ""),
			Host:     get("MONGO_HOST", ""),
			Database: get("MONGO_DB", "shelter"),
			Username: get("MONGO_USERNAME", ""),
			Password: get("MONGO_PASSWORD", ""),
		},
	}

	var err error
	if cfg.Mongo.Port, err = atoi("MONGO_PORT", get("MONGO_PORT", "27017")); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.RPS, err = atof("RATE_LIMIT_RPS", get("RATE_LIMIT_RPS", "0")); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.Burst, err = atoi("RATE_LIMIT_BURST", get("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.RPS < 0 || cfg.RateLimit.Burst < 0 {
		return Config{}, fmt.Errorf("config: rate limit values must be >= 0")
	}

	switch d := StoreDriver(strings.ToLower(get("STORE_DRIVER", string(DriverAuto)))); d {
	case DriverAuto, DriverMemory, DriverMongo, DriverPostgres:
		cfg.Driver = d
	default:
		return Config{}, fmt.Errorf("config: STORE_DRIVER %q not supported", d)
	}

	return cfg, nil
}

// ResolvedDriver traduce auto: Mongo si hay host/URI, Postgres si hay DSN,
// memoria en otro caso.
func (c Config) ResolvedDriver() StoreDriver {
	if c.Driver != DriverAuto && c.Driver != "" {
		return c.Driver
	}
	switch {
	case c.Mongo.URI != "" || c.Mongo.Host != "":
		return DriverMongo
	case c.Postgres != "":
		return DriverPostgres
	default:
		return DriverMemory
	}
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func atof(key, v string) (float64, error) {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a number: %w", key, err)
	}
	return n, nil
}

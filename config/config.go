package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultStorageDriver      = StorageDriverMongo
	defaultMongoDatabase      = "trailpack"
	defaultConnectTimeout     = 10 * time.Second
)

// Supported storage drivers
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// RateLimit throttles the public read routes per client IP
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	// Storage selects the entity store backend
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// Catalog configuration for content management rules
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// QRCode configuration for package share QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines the token bucket applied to public routes
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// StorageConfig defines which store backs the repositories
type StorageConfig struct {
	// Driver is one of "mongo", "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates tables (gorm drivers) or indexes (mongo) on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// MongoConfig defines the MongoDB connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// SQLiteConfig defines the SQLite database used for local development
type SQLiteConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

// CatalogConfig defines content management rules
type CatalogConfig struct {
	// DeletePolicy is "orphan" (default) or "cascade"
	DeletePolicy string `json:"deletePolicy" yaml:"deletePolicy"`

	// EnforceBudgetOrdering rejects packages where budgetPerDay falls outside [minBudget, maxBudget]
	EnforceBudgetOrdering bool `json:"enforceBudgetOrdering" yaml:"enforceBudgetOrdering"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// New loads config.yaml from the working directory or a nearby config/ folder,
// applies environment overrides and fills defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills unset values and checks the storage section matches the chosen driver.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}

	switch cfg.Storage.Driver {
	case StorageDriverMongo:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo storage driver")
		}
		if cfg.Mongo.Database == "" {
			cfg.Mongo.Database = defaultMongoDatabase
		}
		if cfg.Mongo.ConnectTimeout <= 0 {
			cfg.Mongo.ConnectTimeout = defaultConnectTimeout
		}
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
		cfg.Postgres.Replicas = replicasFromEnv()
	case StorageDriverSQLite:
		if cfg.SQLite == nil || cfg.SQLite.DSN == "" {
			return errors.New("sqlite.dsn is required for the sqlite storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	return nil
}

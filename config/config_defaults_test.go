package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_Mongo(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://localhost:27017"}}

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "trailpack", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestApplyDefaults_DriverSectionRequired(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{"mongo without uri", "mongo"},
		{"postgres without section", "postgres"},
		{"sqlite without dsn", "sqlite"},
		{"unknown driver", "cassandra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Storage: StorageConfig{Driver: tt.driver}}
			assert.Error(t, cfg.applyDefaults())
		})
	}
}

func TestApplyDefaults_NormalisesDriver(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: "  SQLite "},
		SQLite:  &SQLiteConfig{DSN: "file::memory:"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"catalog": map[string]any{
			"deletePolicy": "orphan",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{"POSTGRES_SSLMODE", "postgres.sslMode"},
		{"POSTGRES_MASTER_USERNAME", "postgres.master.userName"},
		{"CATALOG_DELETEPOLICY", "catalog.deletePolicy"},
		{"QRCODE_BASEURL", "qrcode.baseUrl"},
		{"CATALOG__DELETEPOLICY", "catalog.deletePolicy"},
		{"NEW_FEATURE_FLAG", "new.feature.flag"},
		{"CATALOG_UNKNOWN_DELETEPOLICY", "catalog.unknown.deletepolicy"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  port: 8080
catalog:
  deletePolicy: orphan
mongo:
  uri: mongodb://localhost:27017
  connectTimeout: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trailpack-test.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_DELETEPOLICY", "cascade")

	cfg, err := LoadWithEnv[Config]("trailpack-test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "cascade", cfg.Catalog.DeletePolicy)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, 5*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent", "config")

	assert.ErrorContains(t, err, "config file absent.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

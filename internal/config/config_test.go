package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: production\n"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "hoshgeldi")
	assert.Contains(t, cfg.RedisURL, "redis://")
	assert.False(t, cfg.ObjectStorageEnabled())
}

func TestLoadAssemblesDSNAndRedisURL(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 9000
database:
  host: db.internal
  port: 3307
  user: blog
  password: s3cret
  name: blogdb
redis:
  host: cache.internal
  port: 6380
  db: 2
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Contains(t, cfg.DSN, "blog:s3cret@tcp(db.internal:3307)/blogdb")
	assert.Equal(t, "redis://cache.internal:6380/2", cfg.RedisURL)
}

func TestLoadExplicitDSNWins(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
dsn: "user:pw@tcp(1.2.3.4:3306)/custom?parseTime=true"
redis_url: "redis://1.2.3.4:6379/0"
`))
	require.NoError(t, err)

	assert.Equal(t, "user:pw@tcp(1.2.3.4:3306)/custom?parseTime=true", cfg.DSN)
	assert.Equal(t, "redis://1.2.3.4:6379/0", cfg.RedisURL)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "nonsense_key: true\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 70000\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestObjectStorageEnabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
storage:
  endpoint: minio.internal:9000
  access_key: ak
  secret_key: sk
  bucket: uploads
  base_url: https://cdn.example.com/
`))
	require.NoError(t, err)

	assert.True(t, cfg.ObjectStorageEnabled())
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.BaseURL)
}

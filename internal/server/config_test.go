package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.hcl")
	content := `
server {
  address         = "0.0.0.0"
  port            = 9090
  log_level       = "debug"
  allowed_origins = ["https://example.com"]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", config.Server.Address)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "debug", config.Server.LogLevel)
	assert.Equal(t, []string{"https://example.com"}, config.Server.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:9090", config.Addr())
}

func TestLoadServerConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {}\n"), 0o644))

	config, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", config.Server.Address)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "info", config.Server.LogLevel)
	assert.Empty(t, config.Server.AllowedOrigins)
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	config, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), config)
}

func TestLoadServerConfigInvalidHCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadPort(t *testing.T) {
	config := DefaultServerConfig()
	config.Server.Port = -1
	assert.Error(t, config.Validate())

	config.Server.Port = 70000
	assert.Error(t, config.Validate())
}

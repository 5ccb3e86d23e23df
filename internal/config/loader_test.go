package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestWriteDefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yml")

	err := WriteDefaultConfig(configPath)
	require.NoError(t, err)

	// Check that file exists
	_, err = os.Stat(configPath)
	assert.NoError(t, err)

	// Load config and check default values
	cfg := &Config{}
	f, err := os.Open(configPath)
	require.NoError(t, err)
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, float64(100), cfg.Server.HTTP.RateLimit.RPS)
	assert.Equal(t, 200, cfg.Server.HTTP.RateLimit.Burst)
}

func TestWriteDefaultConfig_WriteError(t *testing.T) {
	// Try to write to a directory that does not exist (should fail)
	configPath := "/nonexistent/path/test_config.yml"

	err := WriteDefaultConfig(configPath)
	assert.Error(t, err)
}

func TestLoad_FileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server_config.yml")

	err := WriteDefaultConfig(configPath)
	require.NoError(t, err)

	cfg := Load(configPath)
	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestLoad_CustomValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server_config.yml")

	cfg := &Config{}
	cfg.Server.Port = "9090"
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Env = "prod"
	cfg.Server.LogLevel = "warn"
	require.NoError(t, SaveConfig(cfg, configPath))

	loaded := Load(configPath)
	require.NotNil(t, loaded)
	assert.Equal(t, "9090", loaded.Server.Port)
	assert.Equal(t, "0.0.0.0", loaded.Server.Host)
	assert.Equal(t, "prod", loaded.Server.Env)
	assert.Equal(t, "warn", loaded.Server.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server_config.yml")

	err := os.WriteFile(configPath, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	// Load should not crash, even if YAML is invalid
	cfg := Load(configPath)
	require.NotNil(t, cfg)
}

//
//  Copyright © Opsrig Inc. All rights reserved.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	ResetConfig()

	assert.Equal(t, 9000, VConfig.GetInt(ServerPort))
	assert.Equal(t, 1<<20, VConfig.GetInt(ServerMaxBytes))
	assert.Equal(t, 64, VConfig.GetInt(ServerHistory))
	assert.Equal(t, ".:info", VConfig.GetString(logLevel))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SOV_SERVER_PORT", "8080")
	ResetConfig()

	assert.Equal(t, 8080, VConfig.GetInt(ServerPort))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: 7777\n  history: 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sov-config.yaml"), []byte(content), 0644))

	t.Setenv(ConfigPathEnv, dir)
	ResetConfig()

	assert.Equal(t, 7777, VConfig.GetInt(ServerPort))
	assert.Equal(t, 8, VConfig.GetInt(ServerHistory))
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1<<20, VConfig.GetInt(ServerMaxBytes))
}

func TestMissingConfigFileKeepsDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())
	ResetConfig()

	assert.Equal(t, 9000, VConfig.GetInt(ServerPort))
}

//
//  Copyright © Opsrig Inc. All rights reserved.
//

// Package config provides configuration management for the script
// output validator using [Viper].
//
// Configuration can be provided via:
//   - YAML configuration files
//   - Environment variables with the SOV_ prefix
//   - Programmatic defaults
//
// By default the tool looks for sov-config.yaml in the current
// directory. Override the location with environment variables:
//
//	SOV_CONFIG_PATH=/etc/scriptout
//	SOV_CONFIG_FILENAME=production-config
//
// Example configuration file:
//
//	log:
//	  level: ".:info"
//	server:
//	  port: 9000
//	  maxbytes: 1048576
//	  history: 64
//
// All keys can also be set via environment variables with the SOV_
// prefix; dots become underscores (SOV_SERVER_PORT=8080).
//
// [Viper]: https://github.com/spf13/viper
package config

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/opsrig/scriptout/internal/logging"
	"github.com/spf13/viper"
)

// Environment variable and default path constants for configuration loading.
const (
	// EnvVarPrefix is the prefix for all validator environment variables.
	EnvVarPrefix string = "SOV"

	// ConfigPathEnv names the directory containing the config file.
	ConfigPathEnv string = "SOV_CONFIG_PATH"

	// ConfigFileNameEnv names the config file (without extension).
	ConfigFileNameEnv string = "SOV_CONFIG_FILENAME"

	// ConfigDefaultPath is the default directory to search for config files.
	ConfigDefaultPath string = "."

	// ConfigDefaultFilename is the default config file name (without extension).
	ConfigDefaultFilename string = "sov-config"
)

// Configuration keys for use with [VConfig].
const (
	logLevel string = "log.level"

	// ServerPort is the TCP port the validation service listens on.
	ServerPort string = "server.port"

	// ServerMaxBytes caps the size of a script output body accepted by
	// the validation service. Larger submissions are rejected with
	// 413 Request Entity Too Large.
	ServerMaxBytes string = "server.maxbytes"

	// ServerHistory is the number of validation records the service
	// retains for replay via GET /v1/validations/:id.
	ServerHistory string = "server.history"
)

var (
	once     sync.Once
	loadOnce sync.Once

	// VConfig is the global Viper configuration instance.
	//
	// VConfig is initialized by [Init] (called automatically by [Load]).
	// Use the key constants to access settings:
	//
	//	port := config.VConfig.GetInt(config.ServerPort)
	VConfig *viper.Viper
	logger  = logging.GetLogger("config")
)

// Init initializes the configuration system without reading any files:
// file paths, SOV_ environment handling, and defaults. Safe to call more
// than once.
func Init() {
	once.Do(doInitialize)
}

func getConfigPath() string {
	if path, ok := os.LookupEnv(ConfigPathEnv); ok {
		return path
	}
	return ConfigDefaultPath
}

func getConfigFileName() string {
	if name, ok := os.LookupEnv(ConfigFileNameEnv); ok {
		return name
	}
	return ConfigDefaultFilename
}

func doInitialize() {
	VConfig = viper.New()

	// default is './sov-config.yaml', overridable with
	// $(SOV_CONFIG_PATH)/$(SOV_CONFIG_FILENAME).yaml
	VConfig.AddConfigPath(getConfigPath())
	VConfig.SetConfigName(getConfigFileName())
	VConfig.SetConfigType("yaml")

	// keys such as 'server.port' become 'SOV_SERVER_PORT'
	VConfig.SetEnvPrefix(EnvVarPrefix)
	VConfig.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	VConfig.AutomaticEnv()

	VConfig.SetDefault(logLevel, ".:info")
	VConfig.SetDefault(ServerPort, 9000)
	VConfig.SetDefault(ServerMaxBytes, 1<<20)
	VConfig.SetDefault(ServerHistory, 64)
}

// Load initializes configuration, reads the config file if one exists
// (a missing file is not an error), applies environment overrides, and
// updates log levels. Subsequent calls are no-ops.
func Load() {
	loadOnce.Do(func() {
		Init()

		// Early level update from the environment lets us debug the
		// config loading itself.
		if early := os.Getenv("SOV_LOG_LEVEL"); early != "" {
			logging.UpdateLogLevels(early)
		}

		logger.Debugf("Loading configuration from %s/%s.yaml", getConfigPath(), getConfigFileName())
		if err := VConfig.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				logger.Warnf("error reading config; using defaults: %+v", err)
			}
		}

		logging.UpdateLogLevels(VConfig.GetString(logLevel))
	})
}

// ResetConfig clears all configuration and reinitializes with defaults.
//
// WARNING: intended for testing only; it resets global state.
func ResetConfig() {
	VConfig = nil
	once = sync.Once{}
	loadOnce = sync.Once{}
	Init()
	Load()
}

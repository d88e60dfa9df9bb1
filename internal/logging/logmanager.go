//
//  Copyright © Opsrig Inc. All rights reserved.
//

package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// logManager tracks all instantiated loggers and the default level
// applied to ones created later.
type logManager struct {
	loggers  map[string]*Logger
	defLevel zapcore.Level
}

var (
	manager *logManager
	mu      sync.RWMutex
	once    sync.Once
)

func initManager() {
	manager = &logManager{
		loggers:  make(map[string]*Logger),
		defLevel: zapcore.InfoLevel,
	}
}

// resetForTesting clears the manager state. Tests only.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	manager = nil
	once = sync.Once{}
}

// GetLogger returns the logger for the given module, creating it at the
// current default level on first use.
func GetLogger(module string) *Logger {
	once.Do(initManager)

	mu.RLock()
	if l := manager.loggers[module]; l != nil {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l := manager.loggers[module]; l != nil {
		return l
	}

	l := newLogger(module)
	l.SetLevel(manager.defLevel)
	manager.loggers[module] = l
	return l
}

// parseLevel converts a level name to a zapcore.Level. Unknown names
// fall back to info.
func parseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	case "error":
		return zapcore.ErrorLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "debug", "trace":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// UpdateLogLevels applies a level spec of the form
// "mod1:debug;mod2:error;.:info". The "." entry sets the default level
// for modules without an explicit entry. Whitespace is permitted for
// readability; malformed entries are ignored.
func UpdateLogLevels(spec string) {
	once.Do(initManager)

	for _, ws := range []string{" ", "\t", "\n"} {
		spec = strings.ReplaceAll(spec, ws, "")
	}

	mu.Lock()
	defer mu.Unlock()

	explicit := make(map[string]bool)
	defLevel := manager.defLevel
	hasDefault := false

	for _, entry := range strings.Split(spec, ";") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			continue
		}
		module, level := parts[0], parseLevel(parts[1])

		if module == "." {
			defLevel = level
			hasDefault = true
			continue
		}

		explicit[module] = true
		l := manager.loggers[module]
		if l == nil {
			l = newLogger(module)
			manager.loggers[module] = l
		}
		l.SetLevel(level)
	}

	if hasDefault {
		manager.defLevel = defLevel
		for module, l := range manager.loggers {
			if !explicit[module] {
				l.SetLevel(defLevel)
			}
		}
	}
}

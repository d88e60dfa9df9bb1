//
//  Copyright © Opsrig Inc. All rights reserved.
//

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogger_OutputCarriesModuleField(t *testing.T) {
	resetForTesting()

	var buf bytes.Buffer
	l := GetLogger("testmod")
	l.SetOut(&buf)

	l.Infof("hello %s", "world")

	out := buf.String()
	assert.Contains(t, out, `"module":"testmod"`)
	assert.Contains(t, out, "hello world")
}

func TestLogger_LevelFiltersOutput(t *testing.T) {
	resetForTesting()

	var buf bytes.Buffer
	l := GetLogger("filter")
	l.SetOut(&buf)

	l.Debug("suppressed")
	assert.Empty(t, buf.String())

	l.SetLevel(zapcore.DebugLevel)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	logger, err := New("debug")
	assert.NoError(err)
	assert.NotNil(logger)
	assert.True(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New("warn")
	assert.NoError(err)
	assert.False(logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud")
	assert.ErrorContains(err, `unknown log level "loud"`)
}

package logger

import (
	"testing"

	"github.com/safar/go-chat-store/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Development: true}}

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewUnknownLevel(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "verbose"}}

	_, err := New(cfg)
	assert.Error(t, err)
}

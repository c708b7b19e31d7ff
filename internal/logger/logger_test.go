package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/config"
)

func TestNewProductionLogger(t *testing.T) {
	lg, err := New(&config.Config{Env: "production"})

	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, lg.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDevelopmentLogger(t *testing.T) {
	lg, err := New(&config.Config{Env: "local"})

	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))
}

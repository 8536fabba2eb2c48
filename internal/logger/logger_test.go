package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		require.NoError(t, Init("development", "debug"))
		assert.True(t, Get().Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		require.NoError(t, Init("production", "info"))
		assert.False(t, Get().Core().Enabled(zap.DebugLevel))
		assert.True(t, Get().Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		require.NoError(t, Init("development", "loud"))
	})
}

func TestGet_BeforeInit(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	assert.NotNil(t, Get())
	assert.NotNil(t, Named("infobar"))
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, Init("development", "info"))

	assert.True(t, SetLevel("debug"))
	assert.True(t, Get().Core().Enabled(zap.DebugLevel))

	assert.False(t, SetLevel("chatty"))
	assert.True(t, Get().Core().Enabled(zap.DebugLevel))

	assert.True(t, SetLevel("warn"))
	assert.False(t, Get().Core().Enabled(zap.InfoLevel))
}

func TestSync(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()
	Sync()

	require.NoError(t, Init("development", "info"))
	Sync()
}

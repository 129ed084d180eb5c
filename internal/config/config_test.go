package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval())
	assert.False(t, cfg.Mute)
	assert.Empty(t, cfg.RoomFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HEARTH_ENVIRONMENT", "production")
	t.Setenv("HEARTH_LOG_LEVEL", "debug")
	t.Setenv("HEARTH_SEED", "42")
	t.Setenv("HEARTH_TICK_MS", "250")
	t.Setenv("HEARTH_MUTE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval())
	assert.True(t, cfg.Mute)
}

func TestLoad_TickFloor(t *testing.T) {
	t.Setenv("HEARTH_TICK_MS", "1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval())
}

func TestSlogLevel_Fallback(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

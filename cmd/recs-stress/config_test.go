package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigEnvThenFlags(t *testing.T) {
	t.Setenv("RECS_WIDTH", "64")
	t.Setenv("RECS_PAGE_SIZE", "256")
	t.Setenv("RECS_DURATION", "2s")

	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 256, cfg.PageSize)
	assert.Equal(t, 2*time.Second, cfg.Duration)

	cfg, err = loadConfig([]string{"-width", "16", "-format", "json"})
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 256, cfg.PageSize)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"width", []string{"-width", "8"}},
		{"page size", []string{"-page-size", "1000"}},
		{"churn", []string{"-churn", "1.5"}},
		{"format", []string{"-format", "xml"}},
		{"profile", []string{"-profile", "block"}},
		{"log level", []string{"-log-level", "loud"}},
		{"entities", []string{"-entities", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestConfigLevel(t *testing.T) {
	cfg := defaultConfig()
	level, err := cfg.level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	cfg.LogLevel = "debug"
	level, err = cfg.level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	cfg.LogLevel = "loud"
	_, err = cfg.level()
	assert.Error(t, err)
	assert.Error(t, cfg.validate())
}

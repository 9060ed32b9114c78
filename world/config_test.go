package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"no points", func(c *Config) { c.PointsPerTile = 0 }},
		{"negative relaxations", func(c *Config) { c.Relaxations = -1 }},
		{"no padding", func(c *Config) { c.Padding = 0 }},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	// Zero relaxations is just the raw diagram
	cfg := DefaultConfig()
	cfg.Relaxations = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("relaxations: 1\npadding: 3\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{PointsPerTile: 5, Relaxations: 1, Padding: 3}, cfg)
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("points: 3\n"))
		assert.ErrorContains(t, err, "decoding config")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("points_per_tile: 0\n"))
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("padding: [1, 2\n"))
		assert.Error(t, err)
	})
}

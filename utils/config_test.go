package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"rows": 5, "cols": 7, "frame_rate": 1000000, "interactive": false}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Rows = 5
	want.Cols = 7
	want.FrameRate = time.Millisecond
	want.Interactive = false
	assert.Equal(t, want, config)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"rows": "many"`))
	assert.ErrorContains(t, err, "[LoadConfig] failed to unmarshal")
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -2 }},
		{"negative generations", func(c *Config) { c.Generations = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	zeroGenerations := DefaultConfig()
	zeroGenerations.Generations = 0
	assert.NoError(t, zeroGenerations.Validate())
}

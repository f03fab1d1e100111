package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.GetServerAddress())
	assert.Equal(t, 5, cfg.Room.SmallBlind)
	assert.Equal(t, 10, cfg.Room.BigBlind)
	assert.Equal(t, 1000, cfg.Room.StartingStack)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromHCL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

room {
  small_blind    = 25
  big_blind      = 50
  starting_stack = 5000
}
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.GetServerAddress())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 25, cfg.Room.SmallBlind)
	assert.Equal(t, 50, cfg.Room.BigBlind)
	assert.Equal(t, 5000, cfg.Room.StartingStack)
	require.NoError(t, cfg.Validate())

	rs := cfg.RoomSettings()
	assert.Equal(t, 25, rs.SmallBlind)
	assert.Equal(t, 5000, rs.StartingStack)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
server {
  port = 9999
}

room {
  big_blind = 20
}
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Room.SmallBlind)
	assert.Equal(t, 20, cfg.Room.BigBlind)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero small blind", func(c *Config) { c.Room.SmallBlind = 0 }},
		{"big blind below small", func(c *Config) { c.Room.BigBlind = 3 }},
		{"stack below big blind", func(c *Config) { c.Room.StartingStack = 5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`server { address = `), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

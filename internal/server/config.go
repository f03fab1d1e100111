package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/headsup/internal/room"
)

// Config represents the complete server configuration
type Config struct {
	Server Settings   `hcl:"server,block"`
	Room   RoomConfig `hcl:"room,block"`
}

// Settings contains server-level configuration
type Settings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RoomConfig defines the single table's stakes and stacks
type RoomConfig struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingStack int `hcl:"starting_stack,optional"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Room: RoomConfig{
			SmallBlind:    5,
			BigBlind:      10,
			StartingStack: 1000,
		},
	}
}

// LoadConfig loads server configuration from an HCL file. A missing file is
// not an error; the defaults apply.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = def.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = def.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = def.Server.LogLevel
	}
	if config.Room.SmallBlind == 0 {
		config.Room.SmallBlind = def.Room.SmallBlind
	}
	if config.Room.BigBlind == 0 {
		config.Room.BigBlind = def.Room.BigBlind
	}
	if config.Room.StartingStack == 0 {
		config.Room.StartingStack = def.Room.StartingStack
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Room.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Room.BigBlind <= c.Room.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if c.Room.StartingStack < c.Room.BigBlind {
		return fmt.Errorf("starting stack must cover at least one big blind")
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RoomSettings converts the room block to the engine's configuration.
func (c *Config) RoomSettings() room.Config {
	return room.Config{
		SmallBlind:    c.Room.SmallBlind,
		BigBlind:      c.Room.BigBlind,
		StartingStack: c.Room.StartingStack,
	}
}

// ABOUTME: Configuration management for the syscolor CLI
// ABOUTME: Handles loading and saving ~/.syscolor/config.json
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claudeup/syscolor"
)

// YesFlag skips confirmation prompts (set by the --yes global flag)
var YesFlag bool

// Config represents the config file structure
type Config struct {
	Preferences Preferences                       `json:"preferences"`
	Fallbacks   map[syscolor.Index]syscolor.Color `json:"fallbacks,omitempty"`
}

// Preferences represents user preferences
type Preferences struct {
	Format string `json:"format,omitempty"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		Preferences: Preferences{},
		Fallbacks:   make(map[syscolor.Index]syscolor.Color),
	}
}

// Fallback returns the configured replacement color for an unavailable role
func (c *Config) Fallback(idx syscolor.Index) (syscolor.Color, bool) {
	color, ok := c.Fallbacks[idx]
	return color, ok
}

// SetFallback records a replacement color for idx
func (c *Config) SetFallback(idx syscolor.Index, color syscolor.Color) {
	if c.Fallbacks == nil {
		c.Fallbacks = make(map[syscolor.Index]syscolor.Color)
	}
	c.Fallbacks[idx] = color
}

// RemoveFallback deletes the fallback for idx, returning false if none was set
func (c *Config) RemoveFallback(idx syscolor.Index) bool {
	if _, ok := c.Fallbacks[idx]; !ok {
		return false
	}
	delete(c.Fallbacks, idx)
	return true
}

// Load reads the config file in home, creating it with defaults if it doesn't exist
func Load(home string) (*Config, error) {
	cfgPath := ConfigPath(home)

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(home, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfgPath, err)
	}
	if cfg.Fallbacks == nil {
		cfg.Fallbacks = make(map[syscolor.Index]syscolor.Color)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(home string, cfg *Config) error {
	cfgPath := ConfigPath(home)

	// Ensure directory exists
	dir := filepath.Dir(cfgPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cfgPath, data, 0644)
}

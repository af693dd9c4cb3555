// Package config provides YAML-based platform configuration for dodge: which
// terminal backend to use, tick pacing, logging and the SSH server. Game rules
// are not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Backend selects the terminal driver for local play.
type Backend string

const (
	BackendTea   Backend = "tea"   // Bubble Tea program
	BackendTcell Backend = "tcell" // tcell screen with a polling loop
)

// ErrUnknownBackend is returned by Validate for an unsupported backend.
var ErrUnknownBackend = errors.New("config: unknown backend")

// Config is the full platform configuration.
type Config struct {
	Play   PlayConfig   `yaml:"play"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// PlayConfig controls local play.
type PlayConfig struct {
	Backend Backend       `yaml:"backend"`
	Tick    time.Duration `yaml:"tick"`
	Seed    int64         `yaml:"seed"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs during play
}

// ServerConfig controls `dodge serve`.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks values the drivers depend on.
func (c Config) Validate() error {
	switch c.Play.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("%w %q (want %q or %q)", ErrUnknownBackend, c.Play.Backend, BackendTea, BackendTcell)
	}
	if c.Play.Tick <= 0 {
		return fmt.Errorf("config: play.tick must be positive, got %s", c.Play.Tick)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, matching defaults/dodge.yaml.
func Default() Config {
	return Config{
		Play: PlayConfig{
			Backend: BackendTea,
			Tick:    10 * time.Millisecond,
			Seed:    0,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.dodge/dodge.log",
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

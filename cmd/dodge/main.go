// dodge is a terminal game: collect coins while enemies chase you.
//
// Usage:
//
//	dodge play    - Play in this terminal
//	dodge serve   - Start SSH server for remote play
//	dodge keys    - Show key bindings
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.dodge/config.yaml, ./configs/dodge.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--tick <duration>   - Input poll timeout (default: 10ms)
//	--log-file <path>   - Log file for play sessions
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTick     string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - collect coins, outrun the enemies",
	Long: `Dodge is a terminal game on a 150x30 grid. Move with w/a/s/d and
collect coins ($). Enemies (E) appear every 15 seconds, wait 5 seconds,
then chase you. Touching an active enemy ends the game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  keys     - Show key bindings

Examples:
  dodge play
  dodge play --backend tcell --seed 42
  dodge serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTick, "tick", "", "Input poll timeout, e.g. 10ms")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (empty in config discards logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Play.Seed = flagSeed
	}
	if flags.Changed("tick") {
		d, err := time.ParseDuration(flagTick)
		if err != nil {
			return cfg, fmt.Errorf("invalid --tick: %w", err)
		}
		cfg.Play.Tick = d
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

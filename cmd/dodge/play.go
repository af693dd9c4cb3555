package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/console"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play dodge in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  w/a/s/d    - Move up/left/down/right
  q/Ctrl+C   - Quit

The playfield needs a 152x33 terminal. The default (tea) backend waits
for you to resize a smaller window; the tcell backend clips.

Examples:
  dodge play
  dodge play --backend tcell
  dodge play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Terminal backend: tea or tcell (default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Play.Backend = config.Backend(flagBackend)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size for the initial layout check
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if fw, fh := dodge.FrameSize(dodge.DefaultGrid); width < fw || height < fh {
		logger.Warn("terminal smaller than playfield", "width", width, "height", height, "need_width", fw, "need_height", fh)
	}

	var result dodge.Result
	switch cfg.Play.Backend {
	case config.BackendTcell:
		result, err = playTcell(cfg, logger)
	default:
		result, err = tui.Run(core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Tick:    cfg.Play.Tick,
			Seed:    cfg.Play.Seed,
		}, logger)
	}
	if err != nil {
		return err
	}

	fmt.Println(result.Message())
	return nil
}

func playTcell(cfg config.Config, logger *log.Logger) (dodge.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return dodge.Result{}, fmt.Errorf("console: %w", err)
	}
	if err := screen.Init(); err != nil {
		return dodge.Result{}, fmt.Errorf("console: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return console.Run(ctx, screen, console.Options{
		Tick:   cfg.Play.Tick,
		Seed:   cfg.Play.Seed,
		Logger: logger,
	})
}

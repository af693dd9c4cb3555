package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// ErrNoPTY is reported to SSH clients that connect without a terminal.
var ErrNoPTY = errors.New("tui: dodge needs an interactive terminal, connect with ssh -t")

// resultKey is the ssh.Context key holding a session's *resultBox.
type resultKey struct{}

type resultBox struct {
	result *dodge.Result
}

// SSHServer serves one dodge session per SSH connection.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server from cfg.Server; play settings
// (tick, seed) apply to every session.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dodge-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.Server.HostKey
	if hostKeyPath == "" {
		hostKeyPath = "~/.dodge/host_key"
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps the PTY check, which wraps
	// the result report, which wraps the Bubble Tea program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.reportMiddleware,
			srv.ptyMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.Server.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Server.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Tick:    s.config.Play.Tick,
		Seed:    s.config.Play.Seed,
	}

	box, _ := sshSession.Context().Value(resultKey{}).(*resultBox)
	model := NewModel(cfg,
		WithLogger(s.logger.With("user", sshSession.User())),
		WithResultHandler(func(r dodge.Result) {
			if box != nil {
				box.result = &r
			}
		}),
	)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// reportMiddleware prints the exit message once the program has finished.
func (s *SSHServer) reportMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		box := &resultBox{}
		sshSession.Context().SetValue(resultKey{}, box)
		next(sshSession)

		if box.result == nil {
			return
		}
		s.logger.Info("game over",
			"user", sshSession.User(),
			"session", box.result.ID,
			"outcome", box.result.Outcome,
			"score", box.result.Score,
		)
		wish.Println(sshSession, box.result.Message())
	}
}

// ptyMiddleware rejects sessions without a terminal.
func (s *SSHServer) ptyMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		if _, _, ok := sshSession.Pty(); !ok {
			s.logger.Warn("no PTY requested", "user", sshSession.User())
			wish.Fatalln(sshSession, ErrNoPTY)
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Server.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}

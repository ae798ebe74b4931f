package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-crush/internal/audio"
	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH server. Zero fields take the values of
// DefaultSSHServerConfig.
type SSHServerConfig struct {
	Address     string
	HostKeyPath string // Generated at ~/.crush/host_key when empty
	DBPath      string
	IdleTimeout time.Duration
	TickRate    int
	Preset      config.DifficultyPreset // Difficulty the menu starts on
	Logger      *log.Logger
}

// DefaultSSHServerConfig returns the settings used by `crush serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.crush/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    defaultTickRate,
		Preset:      config.DifficultyNormal,
	}
}

func (c SSHServerConfig) withDefaults() SSHServerConfig {
	def := DefaultSSHServerConfig()
	if c.Address == "" {
		c.Address = def.Address
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Preset == "" {
		c.Preset = def.Preset
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "crush-ssh"})
	}
	return c
}

// SSHServer serves the game over SSH. Every connection gets its own
// SessionModel; all of them share one leaderboard.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	log    *log.Logger
}

// NewSSHServer builds the server. A leaderboard that cannot be opened is
// logged and the server runs without one.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	cfg = cfg.withDefaults()

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, log: cfg.Logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.log.Warn("could not open scores database, runs will not be saved", "path", cfg.DBPath, "err", err)
	}

	// Middleware runs last to first: log, require a terminal, then play
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".crush", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession starts the menu for one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	// Sound would play on the server host, so remote sessions stay silent
	model := NewSessionModel(rt, s.cfg.Preset, Options{
		Store:  s.store,
		Sound:  audio.Nop{},
		Logger: s.log.With("user", user),
		Player: user,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		l.Info("session started")
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Truncate(time.Second))
	}
}

// ListenAndServe accepts connections until ctx is done, then shuts down
// gracefully. It returns early if the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.log.Info("listening", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits up to shutdownGrace for
// open sessions to end.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

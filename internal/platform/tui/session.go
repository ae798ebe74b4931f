package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel hosts the menu, the scoreboard and the game in one program,
// switching between them instead of quitting. SSH sessions use it because
// a connection only ever runs a single program.
type SessionModel struct {
	opts   Options
	config core.RuntimeConfig
	preset config.DifficultyPreset
	screen sessionScreen

	menu   MenuModel
	scores ScoreboardModel
	game   *Model

	quitting bool
}

func NewSessionModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, opts Options) SessionModel {
	opts.InMenu = true
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		opts:   opts,
		config: cfg,
		preset: preset,
		menu:   NewMenuModel(opts.Store, cfg, preset),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// The child models return tea.Quit when they close. The session drops
// that command and switches screens instead.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.preset = m.menu.Preset()

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Player, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", id, "err", err)
		m.showMenu()
		return m, nil
	}
	if ds, ok := game.(registry.DifficultySetter); ok {
		ds.SetDifficulty(string(m.preset))
	}

	m.config = m.menu.Config()
	m.config.Seed = time.Now().UnixNano()
	model := NewModel(game, m.config, m.opts)
	m.game = &model
	m.screen = screenGame
	m.opts.Logger.Debug("game started", "game", id, "difficulty", m.preset)
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.showMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	model := next.(Model)
	m.game = &model

	switch {
	case m.game.BackToMenu():
		m.showMenu()
		return m, m.menu.Init()
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// showMenu rebuilds the menu so best scores include the last run.
func (m *SessionModel) showMenu() {
	m.game = nil
	m.menu = NewMenuModel(m.opts.Store, m.config, m.preset)
	m.screen = screenMenu
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame && m.game != nil:
		return m.game.View()
	case m.screen == screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

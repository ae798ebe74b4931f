package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

const menuBanner = "C A N D Y   C R U S H"

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).MarginBottom(1)
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is one mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Best score on record, 0 if none
}

// menuOutcome is why the menu closed.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPlay
	menuScores
	menuQuit
)

// MenuModel picks a mode and a difficulty preset. It quits its program as
// soon as a choice is made; SessionModel reads the choice instead.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	preset  int // Index into config.Presets
	config  core.RuntimeConfig
	keys    *KeyMapper
	outcome menuOutcome
}

// NewMenuModel lists the registered modes. The store is only read for the
// best score of each mode and may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		config: cfg,
		keys:   NewKeyMapper(),
		preset: presetIndex(preset),
	}
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		m.items = append(m.items, item)
	}
	return m
}

// presetIndex finds preset in config.Presets, defaulting to normal.
func presetIndex(preset config.DifficultyPreset) int {
	def := 0
	for i, p := range config.Presets {
		switch p {
		case preset:
			return i
		case config.DifficultyNormal:
			def = i
		}
	}
	return def
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(config.Presets)

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionLeft:
		m.preset = (m.preset + n - 1) % n
	case MenuActionRight:
		m.preset = (m.preset + 1) % n
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.outcome = menuPlay
		return m, tea.Quit
	case MenuActionScoreboard:
		m.outcome = menuScores
		return m, tea.Quit
	case MenuActionQuit, MenuActionBack:
		m.outcome = menuQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render(menuBanner),
		"Select a mode",
		"",
	}
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuPickStyle.Render("> " + item.Title)
		}
		if item.Best > 0 {
			line += menuBestStyle.Render(fmt.Sprintf("  (best %d)", item.Best))
		}
		lines = append(lines, line)
	}
	if item, ok := m.current(); ok && item.Description != "" {
		lines = append(lines, "", menuDimStyle.Render(item.Description))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		"",
		menuDimStyle.Render("↑/↓ mode · ←/→ difficulty · enter play · tab scores · q quit"),
	)

	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m MenuModel) current() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// Selected returns the chosen mode, or nil while none was chosen.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuPlay {
		return nil
	}
	item, _ := m.current()
	return &item
}

// Preset returns the difficulty preset shown in the menu.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

func (m MenuModel) IsQuitting() bool      { return m.outcome == menuQuit }
func (m MenuModel) WantsScoreboard() bool { return m.outcome == menuScores }

// Config returns the runtime config, updated by any resize seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is the choice a standalone menu program ended with.
type MenuResult struct {
	GameID          string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state to a MenuResult.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config, Preset: m.Preset()}
	switch m.outcome {
	case menuPlay:
		res.GameID = m.Selected().GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu full screen until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, preset), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: preset, Quit: true}, nil
	}
	return m.Result(), nil
}

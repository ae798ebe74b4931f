package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

const (
	boardRunLimit = 100 // Runs loaded per mode
	playerColumn  = 2   // Index of the column that takes spare width
	maxPlayerW    = 20
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = boardMutedStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeys are the scoreboard bindings. They double as the help
// bar content.
type ScoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Mine   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Mine, k.Back, k.Quit}
}

func (k ScoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys(player string) ScoreboardKeys {
	keys := ScoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Mode: key.NewBinding(
			key.WithKeys("left", "h", "right", "l", "tab", "shift+tab"),
			key.WithHelp("←/→", "mode"),
		),
		Mine: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	keys.Mine.SetEnabled(player != "")
	return keys
}

// ScoreboardModel shows the stored runs of one mode at a time, with the
// aggregate stats of that mode above the table. Runs of the current
// player are marked and can be filtered.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	store  *storage.Store
	player string
	mine   bool

	runs  []storage.ScoreEntry
	stats map[string]*storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeys

	width, height int
	back, quit    bool
}

// NewScoreboardModel creates a scoreboard. player may be empty for local
// play, which disables the "my runs" filter.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		player: player,
		help:   help.New(),
		keys:   newScoreboardKeys(player),
		width:  width,
		height: height,
	}
	if store != nil {
		// Stats are optional; the table works without them
		if stats, err := store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Chain", Width: 6},
		{Title: "Crushes", Width: 8},
		{Title: "Date", Width: 12},
	}

	used := 0
	for i, c := range cols {
		if i != playerColumn {
			used += c.Width + 2
		}
	}
	// Frame border and padding take 4 columns, the screen margin 4 more
	if spare := m.width - 8 - used - 2; spare > cols[playerColumn].Width {
		cols[playerColumn].Width = min(spare, maxPlayerW)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
		table.WithStyles(styles),
	)
}

func (m ScoreboardModel) currentMode() (registry.GameInfo, bool) {
	if len(m.modes) == 0 {
		return registry.GameInfo{}, false
	}
	return m.modes[m.mode], true
}

// reload fetches the runs of the current mode and rebuilds the rows.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	mode, ok := m.currentMode()
	if ok && m.store != nil {
		if runs, err := m.store.TopScores(mode.ID, boardRunLimit); err == nil {
			m.runs = runs
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		if m.mine && r.Player != m.player {
			continue
		}
		name := r.Player
		switch {
		case name == "":
			name = "-"
		case name == m.player:
			name = "* " + name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			name,
			strconv.Itoa(r.BestChain),
			strconv.Itoa(r.Crushes),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) shiftMode(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			switch msg.String() {
			case "left", "h", "shift+tab":
				m.shiftMode(-1)
			default:
				m.shiftMode(1)
			}
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.mine = !m.mine
			m.fillRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	title := "HIGH SCORES"
	if m.mine {
		title += " - " + m.player
	}

	parts := []string{
		boardTitleStyle.Render(title),
		"",
		m.tabs(),
		boardMutedStyle.Render(m.summary()),
		"",
		boardFrameStyle.Render(m.body()),
		"",
		boardMutedStyle.Render(m.help.View(m.keys)),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// tabs renders the mode selector, falling back to arrows around the
// current title when the tabs do not fit.
func (m ScoreboardModel) tabs() string {
	cur, ok := m.currentMode()
	if !ok {
		return boardMutedStyle.Render("Modes: none")
	}
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = boardActiveTab.Render("< " + cur.Title + " >")
	}
	return line
}

// summary is the one-line aggregate of the current mode.
func (m ScoreboardModel) summary() string {
	cur, ok := m.currentMode()
	if !ok {
		return ""
	}
	st := m.stats[cur.ID]
	if st == nil || st.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%d games · best %d · avg %.0f · chain x%d · %d bombs · last %s",
		st.GamesCount, st.HighScore, st.AvgScore, st.BestChain, st.TotalBombs,
		st.LastPlayed.Format("Jan 02"))
}

func (m ScoreboardModel) body() string {
	if len(m.table.Rows()) == 0 {
		msg := "No runs recorded yet.\nPlay a round to set a high score!"
		if m.mine && len(m.runs) > 0 {
			msg = "None of these runs are yours yet."
		}
		return boardEmptyStyle.Render(msg)
	}
	return strings.TrimRight(m.table.View(), "\n")
}

// IsGoingBack reports whether the player left for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.back }

// IsQuitting reports whether the player quit the program.
func (m ScoreboardModel) IsQuitting() bool { return m.quit }

// RunScoreboard shows the scoreboard full screen and reports whether the
// player went back to the menu.
func RunScoreboard(store *storage.Store, player string, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// Package tui runs the game modes in the terminal with Bubble Tea: the game
// loop, key and mouse mapping, the mode menu, the scoreboard and the SSH
// server. Crush signals from the game are turned into sounds here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg advances the game by one fixed step.
type TickMsg time.Time

// tickEvery schedules the next TickMsg. Non-positive rates fall back to
// defaultTickRate.
func tickEvery(rate int) tea.Cmd {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

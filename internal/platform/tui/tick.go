// Package tui provides the Bubble Tea front-end for the dodge simulation.
// It handles the terminal UI loop, turns key presses into button levels and
// paints the simulation's cell screen with lipgloss styles.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the deadline of the tick that started
// at tickStart. Time spent stepping and rendering is subtracted from the
// wait, and an overrun fires the next tick immediately.
func tickCmd(pacer *core.Pacer, clock core.Clock, tickStart time.Duration) tea.Cmd {
	delay := max(pacer.Deadline(tickStart)-clock.Now(), 0)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

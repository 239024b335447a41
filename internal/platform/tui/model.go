package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options configures the game screen.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Diagnostic sink; nil discards
	Clock   core.Clock  // Defaults to the system clock
}

// Model is the Bubble Tea model running one dodge session.
type Model struct {
	session *dodge.Session
	screen  *core.Screen
	latch   *core.KeyLatch
	clock   core.Clock
	pacer   *core.Pacer
	store   *storage.Store
	logger  *log.Logger
	led     *LED
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	runs     int // Runs recorded in the ledger by this model
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(cfg config.DodgeConfig, store *storage.Store, opts Options) Model {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}

	led := &LED{}
	sessionOpts := []dodge.Option{
		dodge.WithIndicator(led),
		dodge.WithSeed(rt.Seed),
	}
	if opts.Logger != nil {
		sessionOpts = append(sessionOpts, dodge.WithEventSink(opts.Logger))
	}

	m := Model{
		session: dodge.New(cfg, sessionOpts...),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH, cfg.Field.Width, cfg.Field.Height),
		latch:   core.NewKeyLatch(rt.Hold()),
		clock:   clock,
		pacer:   core.NewPacer(clock, rt.TickPeriod()),
		store:   store,
		logger:  opts.Logger,
		led:     led,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.session.Render(m.screen)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer, m.clock, m.pacer.Begin())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// No key releases arrive while unfocused
		m.latch.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	now := m.clock.Now()
	for _, b := range m.keys.Buttons(msg) {
		m.latch.Press(b, now)
	}
	return m, nil
}

// handleTick samples the latched buttons, steps the session and paints the
// screen buffer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := m.pacer.Begin()

	result := m.session.Step(m.latch.Sample(start))
	if result.Finished != nil {
		m.recordRun(result.Finished)
	}
	m.session.Render(m.screen)

	return m, tickCmd(m.pacer, m.clock, start)
}

// recordRun stores a finished run in the ledger.
func (m *Model) recordRun(sum *dodge.RunSummary) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Score:   sum.Score,
		Demo:    sum.Demo,
		Ticks:   sum.Ticks,
		Aborted: sum.Aborted,
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Error("cannot record run", "err", err)
		}
		return
	}
	m.runs++
}

// View renders the screen buffer, the status line and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(frameStyle.Render(RenderScreen(m.screen)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// statusLine shows the indicator, the current and best score and how many
// runs the ledger holds.
func (m Model) statusLine() string {
	mode := m.session.State().String()
	if m.session.Demo() && m.session.State() == dodge.StatePlaying {
		mode = "demo"
	}
	return m.led.View() + statusStyle.Render(fmt.Sprintf(
		" %-8s score %-5d best %-5d runs %d",
		mode, m.session.Score(), m.session.HighScore(), m.runs,
	))
}

// Session returns the running session.
func (m Model) Session() *dodge.Session {
	return m.session
}

// Runs returns how many runs this model recorded.
func (m Model) Runs() int {
	return m.runs
}

// Run starts the Bubble Tea program for one play session.
func Run(cfg config.DodgeConfig, store *storage.Store, opts Options) error {
	model := NewModel(cfg, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

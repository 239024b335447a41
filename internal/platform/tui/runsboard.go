package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Runs board layout constants
const (
	boardMinHeight = 12
	maxRuns        = 100 // Max runs to load
)

// RunsBoardKeyMap defines the key bindings for the runs board.
type RunsBoardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Demo  key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Demo, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k RunsBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Demo, k.Close}}
}

// DefaultRunsBoardKeyMap returns default key bindings.
func DefaultRunsBoardKeyMap() RunsBoardKeyMap {
	return RunsBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Demo: key.NewBinding(
			key.WithKeys("d", "tab"),
			key.WithHelp("d", "toggle demo runs"),
		),
		Close: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// RunsBoardModel is the Bubble Tea model listing the runs of this process.
type RunsBoardModel struct {
	store    *storage.Store
	runs     []storage.Run
	stats    *storage.Stats
	withDemo bool
	table    table.Model
	help     help.Model
	keys     RunsBoardKeyMap
	width    int
	height   int
	err      error
	closing  bool
}

// NewRunsBoardModel creates a new runs board model.
func NewRunsBoardModel(store *storage.Store, width, height int) RunsBoardModel {
	m := RunsBoardModel{
		store:    store,
		withDemo: true,
		help:     help.New(),
		keys:     DefaultRunsBoardKeyMap(),
		width:    width,
		height:   max(height, boardMinHeight),
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with the board's columns.
func (m *RunsBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Mode", Width: 9},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the ledger and refreshes the table.
func (m *RunsBoardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	runs, err := m.store.TopRuns(maxRuns, m.withDemo)
	if err != nil {
		m.err = err
	} else {
		m.runs = runs
	}
	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			runMode(r),
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	return rows
}

func runMode(r storage.Run) string {
	switch {
	case r.Demo && r.Aborted:
		return "demo (x)"
	case r.Demo:
		return "demo"
	default:
		return "player"
	}
}

// Init initializes the runs board.
func (m RunsBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs board.
func (m RunsBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.closing = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Demo):
			m.withDemo = !m.withDemo
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height, boardMinHeight)
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs board.
func (m RunsBoardModel) View() string {
	if m.closing {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "RUNS"
	if !m.withDemo {
		title = "RUNS (player only)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.summary()))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary renders the ledger statistics.
func (m RunsBoardModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs (%d demo)  best %d  avg %.1f  %d ticks played",
		m.stats.Runs, m.stats.DemoRuns, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalTicks)
}

// renderTableContent renders the table or an empty message.
func (m RunsBoardModel) renderTableContent() string {
	if m.err != nil {
		return fmt.Sprintf("cannot read runs: %v", m.err)
	}
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// RunRunsBoard shows the runs recorded in the ledger.
func RunRunsBoard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewRunsBoardModel(store, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: runs board: %w", err)
	}
	return nil
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func TestRunsBoardEmpty(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	m := NewRunsBoardModel(store, 80, 24)
	view := m.View()
	if !strings.Contains(view, "No runs recorded yet") {
		t.Errorf("empty board should say so:\n%s", view)
	}
	if !strings.Contains(view, "no runs yet") {
		t.Error("empty board should have an empty summary")
	}
}

func TestRunsBoardRows(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Score: 40, Ticks: 300})
	store.SaveRun(storage.Run{Score: 90, Ticks: 800, Demo: true})
	store.SaveRun(storage.Run{Score: 5, Ticks: 60, Demo: true, Aborted: true})

	m := NewRunsBoardModel(store, 80, 24)
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := [][]string{
		{"#1", "90", "demo", "800"},
		{"#2", "40", "player", "300"},
		{"#3", "5", "demo (x)", "60"},
	}
	for i, w := range want {
		for j, cell := range w {
			if rows[i][j] != cell {
				t.Errorf("row %d col %d = %q, want %q", i, j, rows[i][j], cell)
			}
		}
	}
	if !strings.Contains(m.View(), "3 runs (2 demo)") {
		t.Errorf("summary missing:\n%s", m.View())
	}

	// Toggle demo runs off
	next, _ := m.Update(runes("d"))
	m = next.(RunsBoardModel)
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "40" {
		t.Errorf("player-only rows = %v", rows)
	}
	if !strings.Contains(m.View(), "player only") {
		t.Error("title should mark the filter")
	}
}

func TestRunsBoardClose(t *testing.T) {
	m := NewRunsBoardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("close key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("close key should quit the board")
	}
	if next.(RunsBoardModel).View() != "" {
		t.Error("closed board should render nothing")
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-up/internal/storage"
)

func sampleRuns() []storage.Run {
	at := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	return []storage.Run{
		{ID: "0123456789abcdef", Score: 31.5, Thresholds: 3, Preset: "hard", Origin: storage.OriginSSH, CreatedAt: at},
		{ID: "abc", Score: 2, Origin: storage.OriginLocal, CreatedAt: at},
	}
}

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows(sampleRuns())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	tests := []struct {
		row  int
		col  int
		want string
	}{
		{0, 0, "01234567"},
		{0, 1, "31.50s"},
		{0, 2, "3"},
		{0, 3, "hard"},
		{0, 4, "ssh"},
		{1, 0, "abc"},
		{1, 3, "config"},
	}
	for _, tt := range tests {
		if got := rows[tt.row][tt.col]; got != tt.want {
			t.Errorf("rows[%d][%d] = %q, expected %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestHistoryModelView(t *testing.T) {
	stats := &storage.RunStats{Runs: 2, TotalTime: 33.5, LastPlayed: time.Now()}
	m := NewHistoryModel(sampleRuns(), stats, 100, 30)

	out := m.View()
	for _, want := range []string{"RUN HISTORY", "2 runs, 33.50s survived", "01234567"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if r := m.SelectedRun(); r == nil || r.ID != "0123456789abcdef" {
		t.Errorf("SelectedRun() = %+v", r)
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, &storage.RunStats{}, 80, 24)
	out := m.View()
	if !strings.Contains(out, "No runs recorded yet.") || !strings.Contains(out, "0 runs") {
		t.Errorf("empty view:\n%s", out)
	}
	if m.SelectedRun() != nil {
		t.Error("SelectedRun() on an empty journal should be nil")
	}
}

func TestHistoryModelNavigation(t *testing.T) {
	m := NewHistoryModel(sampleRuns(), nil, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(HistoryModel)
	if r := m.SelectedRun(); r == nil || r.ID != "abc" {
		t.Errorf("after G selected %+v", r)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(HistoryModel)
	if r := m.SelectedRun(); r == nil || r.ID != "abc" {
		t.Errorf("resize lost the cursor, selected %+v", r)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("esc should quit the browser")
	}
}

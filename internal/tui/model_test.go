package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/stats"
	"github.com/verte-zerg/tuidle/internal/wordlist"
)

type staticStats struct {
	agg stats.Aggregate
}

func (s staticStats) Aggregate() stats.Aggregate { return s.agg }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	words, err := wordlist.New([]string{"crane", "slate"}, []string{"abide", "speed"})
	if err != nil {
		t.Fatalf("wordlist: %v", err)
	}
	engine := game.NewEngine(words, game.WithTarget("crane", ""))
	agg := stats.Zero().Record(true, 1)
	return NewModel(engine, staticStats{agg: agg}, zerolog.Nop(), "")
}

func press(m *Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func TestKeyEventsFlagsModifiers(t *testing.T) {
	events := keyEvents(tea.KeyMsg{Type: tea.KeyCtrlA})
	if len(events) != 1 || !events[0].Ctrl {
		t.Fatalf("expected ctrl event, got %+v", events)
	}
	events = keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true})
	if len(events) != 1 || !events[0].Alt || events[0].Token != "a" {
		t.Fatalf("expected alt event, got %+v", events)
	}
	if events := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("crane"), Paste: true}); events != nil {
		t.Fatalf("expected paste to be dropped, got %+v", events)
	}
	if events := keyEvents(tea.KeyMsg{Type: tea.KeyTab}); events != nil {
		t.Fatalf("expected tab to produce nothing, got %+v", events)
	}
	events = keyEvents(tea.KeyMsg{Type: tea.KeyEnter})
	if len(events) != 1 || events[0].Token != game.TokenEnter || events[0].Modified() {
		t.Fatalf("unexpected enter mapping: %+v", events)
	}
	events = keyEvents(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(events) != 1 || events[0].Token != game.TokenBackspace {
		t.Fatalf("unexpected backspace mapping: %+v", events)
	}
}

func TestTypingAndCtrlChords(t *testing.T) {
	m := newTestModel(t)
	press(m, "cr")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if got := m.engine.Snapshot().CurrentGuess; got != "CR" {
		t.Fatalf("expected CR, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.engine.Snapshot().CurrentGuess; got != "C" {
		t.Fatalf("expected C, got %q", got)
	}
}

func TestCtrlHErases(t *testing.T) {
	events := keyEvents(tea.KeyMsg{Type: tea.KeyCtrlH})
	if len(events) != 1 || events[0].Token != game.TokenBackspace || events[0].Ctrl {
		t.Fatalf("expected ^H to map to backspace, got %+v", events)
	}

	m := newTestModel(t)
	press(m, "cra")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	if got := m.engine.Snapshot().CurrentGuess; got != "CR" {
		t.Fatalf("expected CR, got %q", got)
	}
}

func TestRevealThenWin(t *testing.T) {
	m := newTestModel(t)
	press(m, "crane")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected scheduled commands after submit")
	}
	snap := m.engine.Snapshot()
	if snap.RevealingRow != 0 {
		t.Fatalf("expected row 0 revealing, got %d", snap.RevealingRow)
	}

	for frame := 1; frame <= game.WordLength; frame++ {
		m.Update(revealFrameMsg{generation: snap.Generation, row: 0, frame: frame})
	}
	if m.revealed != game.WordLength {
		t.Fatalf("expected all tiles revealed, got %d", m.revealed)
	}

	_, cmd = m.Update(timerMsg{timer: game.Timer{Kind: game.TimerReveal, Generation: snap.Generation}})
	if cmd == nil {
		t.Fatalf("expected message and stats timers after win")
	}
	if m.engine.Status() != game.Won {
		t.Fatalf("expected win, got %v", m.engine.Status())
	}
	if !strings.Contains(m.View(), "Genius!") {
		t.Fatalf("expected win message in view")
	}

	m.Update(timerMsg{timer: game.Timer{Kind: game.TimerStatsPrompt, Generation: snap.Generation}})
	view := m.View()
	if !strings.Contains(view, "STATISTICS") || !strings.Contains(view, "CRANE") {
		t.Fatalf("expected stats overlay with target, got:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	after := m.engine.Snapshot()
	if after.Status != game.InProgress || after.StatsVisible || after.Generation != snap.Generation+1 {
		t.Fatalf("expected enter on overlay to start a new game, got %+v", after)
	}
}

func TestStaleRevealFrameIgnoredAfterNewGame(t *testing.T) {
	m := newTestModel(t)
	press(m, "crane")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	old := m.engine.Snapshot().Generation

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m.Update(revealFrameMsg{generation: old, row: 0, frame: 3})
	if m.revealed != 0 {
		t.Fatalf("expected stale frame ignored, got %d", m.revealed)
	}
	m.Update(timerMsg{timer: game.Timer{Kind: game.TimerReveal, Generation: old}})
	snap := m.engine.Snapshot()
	if snap.CurrentRow != 0 || snap.Status != game.InProgress {
		t.Fatalf("expected fresh session, got %+v", snap)
	}
}

func TestStatsToggleAndEscape(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.engine.Snapshot().StatsVisible {
		t.Fatalf("expected overlay after tab")
	}
	press(m, "ab")
	if m.engine.Snapshot().CurrentGuess != "" {
		t.Fatalf("expected letters ignored while overlay is open")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatalf("expected esc to close the overlay, not quit")
	}
	if m.engine.Snapshot().StatsVisible {
		t.Fatalf("expected overlay closed")
	}
}

func TestBoardRowsShowRevealProgress(t *testing.T) {
	snap := game.Snapshot{
		Rows: [][]game.Tile{{
			{Letter: 'C', State: game.Pending},
			{Letter: 'R', State: game.Pending},
			{Letter: 'A', State: game.Pending},
		}},
		Reveal: &game.Reveal{Row: 0, Guess: "CRA", Result: []game.Classification{game.Correct, game.Present, game.Absent}},
	}
	lines := boardRows(snap, 2)
	want := strings.Join([]string{
		renderTile(game.Tile{Letter: 'C', State: game.Correct}),
		renderTile(game.Tile{Letter: 'R', State: game.Present}),
		renderTile(game.Tile{Letter: 'A', State: game.Pending}),
	}, " ")
	if lines[0] != want {
		t.Fatalf("unexpected row %q, want %q", lines[0], want)
	}
}

func TestShakeOffsetsCurrentRowOnly(t *testing.T) {
	snap := game.Snapshot{
		Rows:       [][]game.Tile{make([]game.Tile, game.WordLength), make([]game.Tile, game.WordLength)},
		CurrentRow: 1,
		Shake:      true,
	}
	rows := boardRows(snap, 0)
	lines := strings.Split(renderBoard(snap, 0, 2), "\n\n")
	offset := shakeOffsets[2]
	if lines[0] != rows[0]+strings.Repeat(" ", maxShakeOffset) {
		t.Fatalf("expected first row unshifted, got %q", lines[0])
	}
	if lines[1] != strings.Repeat(" ", offset)+rows[1]+strings.Repeat(" ", maxShakeOffset-offset) {
		t.Fatalf("expected current row shifted by %d, got %q", offset, lines[1])
	}
}

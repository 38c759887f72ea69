// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/stats"
)

const shakeFrameInterval = 60 * time.Millisecond

// AggregateSource provides the numbers for the stats overlay.
type AggregateSource interface {
	Aggregate() stats.Aggregate
}

type timerMsg struct {
	timer game.Timer
}

type revealFrameMsg struct {
	generation uint64
	row        int
	frame      int
}

type shakeFrameMsg struct {
	generation uint64
	frame      int
}

// Model implements the Bubble Tea game UI. The engine holds all game state;
// the model only tracks animation frames and layout.
type Model struct {
	engine *game.Engine
	stats  AggregateSource
	log    zerolog.Logger
	title  string

	keys keyMap
	help help.Model

	width  int
	height int

	revealed   int
	shakeFrame int
	shaking    bool
}

// NewModel constructs the game UI around engine. statsSrc may be nil.
func NewModel(engine *game.Engine, statsSrc AggregateSource, logger zerolog.Logger, title string) *Model {
	if title == "" {
		title = "TUIDLE"
	}
	return &Model{
		engine: engine,
		stats:  statsSrc,
		log:    logger,
		title:  title,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case timerMsg:
		return m, m.schedule(m.engine.Fire(msg.timer))
	case revealFrameMsg:
		return m, m.advanceReveal(msg)
	case shakeFrameMsg:
		return m, m.advanceShake(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	snap := m.engine.Snapshot()
	switch {
	case key.Matches(msg, m.keys.Quit):
		if snap.StatsVisible && msg.Type == tea.KeyEsc {
			m.engine.SetStatsVisible(false)
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Stats):
		m.engine.SetStatsVisible(!snap.StatsVisible)
		return nil
	case key.Matches(msg, m.keys.NewGame):
		m.newGame()
		return nil
	}
	if snap.StatsVisible {
		if snap.Status.Terminal() && key.Matches(msg, m.keys.Submit) {
			m.newGame()
		}
		return nil
	}

	var timers []game.Timer
	for _, ev := range keyEvents(msg) {
		timers = append(timers, m.engine.HandleInput(ev)...)
	}
	return m.schedule(timers)
}

func (m *Model) newGame() {
	m.engine.Reset()
	m.revealed = 0
	m.shaking = false
	m.shakeFrame = 0
	m.log.Info().Uint64("generation", m.engine.Snapshot().Generation).Msg("new game")
}

// schedule turns engine timers into tick commands and starts the matching
// animations.
func (m *Model) schedule(timers []game.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers)+1)
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.After, func(time.Time) tea.Msg {
			return timerMsg{timer: t}
		}))
		switch t.Kind {
		case game.TimerReveal:
			cmds = append(cmds, m.startReveal(t.Generation))
		case game.TimerShake:
			cmds = append(cmds, m.startShake(t.Generation))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) startReveal(generation uint64) tea.Cmd {
	snap := m.engine.Snapshot()
	m.revealed = 0
	if snap.Reveal == nil {
		return nil
	}
	return m.revealTick(generation, snap.Reveal.Row, 1)
}

func (m *Model) revealTick(generation uint64, row, frame int) tea.Cmd {
	return tea.Tick(m.engine.Timings().RevealStep, func(time.Time) tea.Msg {
		return revealFrameMsg{generation: generation, row: row, frame: frame}
	})
}

func (m *Model) advanceReveal(msg revealFrameMsg) tea.Cmd {
	snap := m.engine.Snapshot()
	if snap.Generation != msg.generation || snap.RevealingRow != msg.row {
		return nil
	}
	m.revealed = msg.frame
	if msg.frame >= game.WordLength {
		return nil
	}
	return m.revealTick(msg.generation, msg.row, msg.frame+1)
}

func (m *Model) startShake(generation uint64) tea.Cmd {
	if m.shaking {
		return nil
	}
	m.shaking = true
	m.shakeFrame = 0
	return shakeTick(generation, 1)
}

func shakeTick(generation uint64, frame int) tea.Cmd {
	return tea.Tick(shakeFrameInterval, func(time.Time) tea.Msg {
		return shakeFrameMsg{generation: generation, frame: frame}
	})
}

func (m *Model) advanceShake(msg shakeFrameMsg) tea.Cmd {
	snap := m.engine.Snapshot()
	if snap.Generation != msg.generation || !snap.Shake {
		m.shaking = false
		m.shakeFrame = 0
		return nil
	}
	m.shakeFrame = msg.frame
	return shakeTick(msg.generation, msg.frame+1)
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	var body string
	if snap.StatsVisible {
		body = m.renderStats(snap)
	} else {
		body = m.renderGame(snap)
	}
	footer := m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	content := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) renderGame(snap game.Snapshot) string {
	parts := []string{
		titleStyle.Render(m.title),
		"",
		renderBoard(snap, m.revealed, m.shakeFrame),
		"",
	}
	// Keep the layout steady whether or not a message is showing.
	msg := renderMessage(snap.Message)
	if msg == "" {
		msg = " "
	}
	parts = append(parts, msg, "", renderKeyboard(snap.Knowledge))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderStats(snap game.Snapshot) string {
	agg := stats.Zero()
	if m.stats != nil {
		agg = m.stats.Aggregate()
	}
	cells := stats.SummaryCells(agg)
	cards := make([]string, len(cells))
	for i, c := range cells {
		cards[i] = statCard.Render(lipgloss.JoinVertical(lipgloss.Center,
			statValue.Render(c.Value),
			statLabel.Render(c.Label),
		))
	}

	highlight := -1
	if snap.Status == game.Won {
		highlight = snap.CurrentRow - 1
	}
	bars := stats.DistributionBars(agg, 32)
	for i, line := range bars {
		if i == highlight {
			bars[i] = barHighlight.Render(line)
		} else {
			bars[i] = barStyle.Render(line)
		}
	}

	lines := []string{
		titleStyle.Render("STATISTICS"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		titleStyle.Render("GUESS DISTRIBUTION"),
		strings.Join(bars, "\n"),
	}
	if snap.Status.Terminal() {
		outcome := fmt.Sprintf("The word was %s", snap.Target)
		lines = append(lines, "", outcome, statLabel.Render("enter: new game · tab: back"))
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#565758")).
			Padding(1, 3)
	statCard     = lipgloss.NewStyle().Padding(0, 2)
	statValue    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	statLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#818384"))
	barHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#538D4E")).Bold(true)
)

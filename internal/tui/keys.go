package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuidle/internal/game"
)

type keyMap struct {
	Submit  key.Binding
	Erase   key.Binding
	Stats   key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h", "delete"),
			key.WithHelp("⌫", "erase"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Erase, k.Stats, k.NewGame, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// keyEvents translates a terminal key press into engine events. Control
// chords come through flagged so the engine can drop them.
func keyEvents(msg tea.KeyMsg) []game.KeyEvent {
	if msg.Paste {
		return nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		return []game.KeyEvent{{Token: game.TokenEnter, Alt: msg.Alt}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		// Some terminals send ^H for backspace.
		return []game.KeyEvent{{Token: game.TokenBackspace, Alt: msg.Alt}}
	case tea.KeyDelete:
		return []game.KeyEvent{{Token: game.TokenDelete, Alt: msg.Alt}}
	case tea.KeyRunes:
		events := make([]game.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, game.KeyEvent{Token: string(r), Alt: msg.Alt})
		}
		return events
	}
	if isCtrl(msg.Type) {
		return []game.KeyEvent{{Token: msg.String(), Ctrl: true, Alt: msg.Alt}}
	}
	return nil
}

func isCtrl(t tea.KeyType) bool {
	switch t {
	case tea.KeyTab, tea.KeyEnter, tea.KeyEsc:
		return false
	}
	if t >= tea.KeyCtrlAt && t <= tea.KeyCtrlUnderscore {
		return true
	}
	switch t {
	case tea.KeyCtrlUp, tea.KeyCtrlDown, tea.KeyCtrlLeft, tea.KeyCtrlRight,
		tea.KeyCtrlHome, tea.KeyCtrlEnd, tea.KeyCtrlPgUp, tea.KeyCtrlPgDown,
		tea.KeyCtrlShiftUp, tea.KeyCtrlShiftDown, tea.KeyCtrlShiftLeft, tea.KeyCtrlShiftRight,
		tea.KeyCtrlShiftHome, tea.KeyCtrlShiftEnd:
		return true
	}
	return false
}

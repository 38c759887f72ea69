package game

import "strings"

// Key tokens understood by HandleInput besides single letters.
const (
	TokenEnter     = "ENTER"
	TokenBackspace = "BACKSPACE"
	TokenDelete    = "DELETE"
)

// KeyEvent is an abstract key press from a physical or on-screen keyboard.
type KeyEvent struct {
	Token string
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Modified reports whether a modifier was held.
func (k KeyEvent) Modified() bool {
	return k.Ctrl || k.Alt || k.Meta
}

// HandleInput dispatches a key event. Chorded keys and unknown tokens are
// ignored.
func (e *Engine) HandleInput(ev KeyEvent) []Timer {
	if ev.Modified() {
		return nil
	}
	token := strings.ToUpper(ev.Token)
	switch token {
	case TokenEnter:
		timers, err := e.Submit()
		if err != nil {
			e.log.Debug().Err(err).Msg("guess rejected")
		}
		return timers
	case TokenBackspace, TokenDelete:
		e.RemoveLetter()
		return nil
	}
	runes := []rune(token)
	if len(runes) == 1 && runes[0] >= 'A' && runes[0] <= 'Z' {
		e.AddLetter(runes[0])
	}
	return nil
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuidle/internal/game"
)

var (
	tileBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	correctTile = tileBase.Copy().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#538D4E"))
	presentTile = tileBase.Copy().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B59F3B"))
	absentTile  = tileBase.Copy().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3A3A3C"))
	pendingTile = tileBase.Copy().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#565758"))
	emptyTile   = tileBase.Copy().Foreground(lipgloss.Color("#3A3A3C")).Background(lipgloss.Color("#1A1A1B"))

	keyBase    = lipgloss.NewStyle().Padding(0, 1)
	unusedKey  = keyBase.Copy().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#818384"))
	messageBox = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#121213")).
			Background(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// shakeOffsets is the horizontal offset per shake frame.
var shakeOffsets = []int{0, 2, 4, 2, 0, 2, 4, 2}

const maxShakeOffset = 4

func tileStyle(state game.Classification) lipgloss.Style {
	switch state {
	case game.Correct:
		return correctTile
	case game.Present:
		return presentTile
	case game.Absent:
		return absentTile
	case game.Pending:
		return pendingTile
	default:
		return emptyTile
	}
}

func keyStyle(state game.Classification) lipgloss.Style {
	switch state {
	case game.Correct, game.Present, game.Absent:
		return tileStyle(state).Copy().Bold(false)
	default:
		return unusedKey
	}
}

func renderTile(t game.Tile) string {
	letter := "·"
	if t.Letter != 0 {
		letter = string(t.Letter)
	}
	return tileStyle(t.State).Render(letter)
}

// boardRows renders every board row. revealed is how many tiles of the
// revealing row already show their result.
func boardRows(snap game.Snapshot, revealed int) []string {
	lines := make([]string, 0, len(snap.Rows))
	for row, tiles := range snap.Rows {
		cells := make([]string, len(tiles))
		for i, tile := range tiles {
			if snap.Reveal != nil && row == snap.Reveal.Row && i < revealed && i < len(snap.Reveal.Result) {
				tile.State = snap.Reveal.Result[i]
			}
			cells[i] = renderTile(tile)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func renderBoard(snap game.Snapshot, revealed, shakeFrame int) string {
	lines := boardRows(snap, revealed)
	// Every row reserves the widest offset so the board does not move.
	for i, line := range lines {
		left := 0
		if snap.Shake && i == snap.CurrentRow {
			left = shakeOffsets[shakeFrame%len(shakeOffsets)]
		}
		lines[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", maxShakeOffset-left)
	}
	return strings.Join(lines, "\n\n")
}

func renderKeyboard(knowledge game.Knowledge) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			keys = append(keys, keyStyle(knowledge[r]).Render(string(r)))
		}
		lines[i] = strings.Join(keys, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderMessage(text string) string {
	if text == "" {
		return ""
	}
	return messageBox.Render(text)
}

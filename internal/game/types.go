// Package game implements guess scoring and the puzzle state machine.
package game

import "github.com/verte-zerg/tuidle/internal/model"

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5
	// MaxAttempts is the number of guesses allowed per game.
	MaxAttempts = 6
)

// Classification is the per-letter state of a tile or keyboard key.
type Classification int

const (
	Empty Classification = iota
	Pending
	Absent
	Present
	Correct
)

func (c Classification) String() string {
	switch c {
	case Pending:
		return "tbd"
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "empty"
	}
}

// Scored reports whether c is one of the values produced by Score.
func (c Classification) Scored() bool {
	return c == Absent || c == Present || c == Correct
}

// Status is the coarse game outcome.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Attempt is a submitted guess with its scored result.
type Attempt struct {
	Guess  string
	Result []Classification
}

// WordSource supplies targets and validates guesses.
type WordSource interface {
	RandomWord() string
	IsValid(word string) bool
}

// Recorder receives exactly one call per finished game.
type Recorder interface {
	RecordResult(won bool, attempt int) error
}

// History stores finished games. It is optional.
type History interface {
	RecordGame(record model.GameRecord) error
}

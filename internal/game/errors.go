package game

import "errors"

// Guess validation errors. Their text is shown to the player as is.
var (
	ErrIncompleteGuess = errors.New("Not enough letters")
	ErrUnknownWord     = errors.New("Not in word list")
)

package game

import (
	"time"

	"github.com/rs/zerolog"
)

// Timings controls the delays the engine asks its caller to schedule.
type Timings struct {
	// RevealStep is the per-letter flip duration.
	RevealStep time.Duration
	// RevealPad is added after the last letter before the commit.
	RevealPad time.Duration
	// Message is how long a toast stays up.
	Message time.Duration
	// LossMessage is how long the revealed target stays up after a loss.
	LossMessage time.Duration
	// Shake is how long the current row shakes after a rejected guess.
	Shake time.Duration
	// WinStats and LossStats delay the stats prompt after a finished game.
	WinStats  time.Duration
	LossStats time.Duration
}

// DefaultTimings returns the standard pacing.
func DefaultTimings() Timings {
	return Timings{
		RevealStep:  300 * time.Millisecond,
		RevealPad:   100 * time.Millisecond,
		Message:     1500 * time.Millisecond,
		LossMessage: 3000 * time.Millisecond,
		Shake:       500 * time.Millisecond,
		WinStats:    2000 * time.Millisecond,
		LossStats:   3000 * time.Millisecond,
	}
}

// RevealDelay is the time between submit and commit.
func (t Timings) RevealDelay() time.Duration {
	return time.Duration(WordLength)*t.RevealStep + t.RevealPad
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRecorder sets the statistics sink called once per finished game.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithHistory sets the finished-games sink.
func WithHistory(h History) Option {
	return func(e *Engine) {
		if h != nil {
			e.history = h
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithTimings overrides the default delays. Zero fields keep their defaults.
func WithTimings(t Timings) Option {
	return func(e *Engine) {
		d := e.timings
		if t.RevealStep > 0 {
			d.RevealStep = t.RevealStep
		}
		if t.RevealPad > 0 {
			d.RevealPad = t.RevealPad
		}
		if t.Message > 0 {
			d.Message = t.Message
		}
		if t.LossMessage > 0 {
			d.LossMessage = t.LossMessage
		}
		if t.Shake > 0 {
			d.Shake = t.Shake
		}
		if t.WinStats > 0 {
			d.WinStats = t.WinStats
		}
		if t.LossStats > 0 {
			d.LossStats = t.LossStats
		}
		e.timings = d
	}
}

// WithTarget fixes the first game's target instead of drawing one. The mode
// tags that game's history record, for example model.ModeDaily. Later games
// are drawn from the word source.
func WithTarget(word, mode string) Option {
	return func(e *Engine) {
		e.firstTarget = word
		if mode != "" {
			e.mode = mode
		}
	}
}

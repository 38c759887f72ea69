package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuidle/internal/model"
)

// TimerKind identifies a delayed callback requested by the engine.
type TimerKind int

const (
	TimerReveal TimerKind = iota + 1
	TimerMessage
	TimerShake
	TimerStatsPrompt
)

// Timer asks the caller to invoke Engine.Fire with it after the delay.
// Timers are never cancelled; stale ones are ignored when they fire.
type Timer struct {
	Kind       TimerKind
	Generation uint64
	After      time.Duration
}

var winMessages = []string{
	"Genius!",
	"Magnificent!",
	"Impressive!",
	"Splendid!",
	"Great!",
	"Phew!",
}

const fallbackWinMessage = "You won!"

// session is the state of one game. It is replaced wholesale on reset.
type session struct {
	Target     string
	Attempts   []Attempt
	Guess      []rune
	Status     Status
	Knowledge  Knowledge
	Generation uint64
	StartedAt  time.Time
}

type pendingReveal struct {
	generation uint64
	row        int
	guess      string
	result     []Classification
}

type toast struct {
	text    string
	expires time.Time
}

// Engine sequences guesses for one session at a time. It is not safe for
// concurrent use; the caller's event loop is expected to be the only user.
type Engine struct {
	words    WordSource
	recorder Recorder
	history  History
	now      func() time.Time
	log      zerolog.Logger
	timings  Timings
	mode     string

	firstTarget string

	generation   uint64
	session      session
	pending      *pendingReveal
	message      *toast
	shakeUntil   time.Time
	statsVisible bool
}

// NewEngine creates an engine and starts the first session.
func NewEngine(words WordSource, opts ...Option) *Engine {
	e := &Engine{
		words:   words,
		now:     time.Now,
		log:     zerolog.Nop(),
		timings: DefaultTimings(),
		mode:    model.ModeRandom,
	}
	for _, opt := range opts {
		opt(e)
	}
	target, mode := e.firstTarget, e.mode
	if target == "" {
		target, mode = words.RandomWord(), model.ModeRandom
	}
	e.start(target, mode)
	return e
}

// Reset discards the current session and starts a new one with a fresh target.
// Timers scheduled for the old session become no-ops.
func (e *Engine) Reset() {
	e.start(e.words.RandomWord(), model.ModeRandom)
}

func (e *Engine) start(target, mode string) {
	e.generation++
	e.mode = mode
	e.session = session{
		Target:     normalizeWord(target),
		Knowledge:  Knowledge{},
		Status:     InProgress,
		Generation: e.generation,
		StartedAt:  e.now(),
	}
	e.pending = nil
	e.message = nil
	e.shakeUntil = time.Time{}
	e.statsVisible = false
	e.log.Debug().Uint64("generation", e.generation).Msg("session started")
}

// Timings returns the delays in use.
func (e *Engine) Timings() Timings {
	return e.timings
}

// Status returns the current session status.
func (e *Engine) Status() Status {
	return e.session.Status
}

func (e *Engine) acceptsInput() bool {
	return e.session.Status == InProgress && e.pending == nil
}

// AddLetter appends ch to the current guess when there is room.
func (e *Engine) AddLetter(ch rune) {
	if !e.acceptsInput() || len(e.session.Guess) >= WordLength {
		return
	}
	up, ok := letter(ch)
	if !ok {
		return
	}
	e.session.Guess = append(e.session.Guess, up)
}

// RemoveLetter drops the last letter of the current guess.
func (e *Engine) RemoveLetter() {
	if !e.acceptsInput() || len(e.session.Guess) == 0 {
		return
	}
	e.session.Guess = e.session.Guess[:len(e.session.Guess)-1]
}

// Submit validates the current guess and starts its reveal. Validation
// failures return ErrIncompleteGuess or ErrUnknownWord and leave history and
// status untouched.
func (e *Engine) Submit() ([]Timer, error) {
	if !e.acceptsInput() {
		return nil, nil
	}
	guess := string(e.session.Guess)
	if len(e.session.Guess) != WordLength {
		return e.reject(ErrIncompleteGuess), ErrIncompleteGuess
	}
	if !e.words.IsValid(guess) {
		return e.reject(ErrUnknownWord), ErrUnknownWord
	}
	return []Timer{e.beginReveal(guess)}, nil
}

func (e *Engine) reject(err error) []Timer {
	e.shakeUntil = e.now().Add(e.timings.Shake)
	return []Timer{
		{Kind: TimerShake, Generation: e.generation, After: e.timings.Shake},
		e.showMessage(err.Error(), e.timings.Message),
	}
}

func (e *Engine) beginReveal(guess string) Timer {
	e.pending = &pendingReveal{
		generation: e.generation,
		row:        len(e.session.Attempts),
		guess:      guess,
		result:     Score(guess, e.session.Target),
	}
	return Timer{Kind: TimerReveal, Generation: e.generation, After: e.timings.RevealDelay()}
}

// Fire delivers a timer previously returned by the engine.
func (e *Engine) Fire(t Timer) []Timer {
	switch t.Kind {
	case TimerReveal:
		return e.commitReveal(t.Generation)
	case TimerMessage:
		if e.message != nil && !e.now().Before(e.message.expires) {
			e.message = nil
		}
	case TimerShake:
		if !e.shakeUntil.IsZero() && !e.now().Before(e.shakeUntil) {
			e.shakeUntil = time.Time{}
		}
	case TimerStatsPrompt:
		if t.Generation == e.generation && e.session.Status.Terminal() {
			e.statsVisible = true
		}
	}
	return nil
}

func (e *Engine) commitReveal(generation uint64) []Timer {
	p := e.pending
	if p == nil || p.generation != generation || generation != e.generation {
		e.log.Debug().Uint64("generation", generation).Uint64("current", e.generation).Msg("stale reveal ignored")
		return nil
	}
	e.pending = nil

	s := &e.session
	s.Attempts = append(s.Attempts, Attempt{Guess: p.guess, Result: p.result})
	s.Guess = nil
	s.Knowledge = s.Knowledge.Apply(p.guess, p.result)

	attempt := len(s.Attempts)
	won := p.guess == s.Target
	lost := !won && attempt >= MaxAttempts
	switch {
	case won:
		s.Status = Won
		text := fallbackWinMessage
		if attempt-1 < len(winMessages) {
			text = winMessages[attempt-1]
		}
		e.finish(true, attempt)
		return []Timer{
			e.showMessage(text, e.timings.Message),
			{Kind: TimerStatsPrompt, Generation: e.generation, After: e.timings.WinStats},
		}
	case lost:
		s.Status = Lost
		e.finish(false, 0)
		return []Timer{
			e.showMessage(s.Target, e.timings.LossMessage),
			{Kind: TimerStatsPrompt, Generation: e.generation, After: e.timings.LossStats},
		}
	}
	return nil
}

func (e *Engine) finish(won bool, attempt int) {
	s := e.session
	e.log.Info().
		Bool("won", won).
		Int("attempts", len(s.Attempts)).
		Uint64("generation", s.Generation).
		Msg("game finished")

	if e.recorder != nil {
		if err := e.recorder.RecordResult(won, attempt); err != nil {
			e.log.Warn().Err(err).Msg("record result")
		}
	}
	if e.history == nil {
		return
	}
	guesses := make([]string, len(s.Attempts))
	for i, a := range s.Attempts {
		guesses[i] = a.Guess
	}
	rec := model.GameRecord{
		ID:        uuid.NewString(),
		StartedAt: s.StartedAt,
		EndedAt:   e.now(),
		Target:    s.Target,
		Guesses:   guesses,
		Won:       won,
		Attempts:  len(s.Attempts),
		Mode:      e.mode,
	}
	if err := e.history.RecordGame(rec); err != nil {
		e.log.Warn().Err(err).Str("game", rec.ID).Msg("record game")
	}
}

// showMessage replaces any visible toast.
func (e *Engine) showMessage(text string, d time.Duration) Timer {
	e.message = &toast{text: text, expires: e.now().Add(d)}
	return Timer{Kind: TimerMessage, Generation: e.generation, After: d}
}

// SetStatsVisible toggles the statistics overlay flag.
func (e *Engine) SetStatsVisible(visible bool) {
	e.statsVisible = visible
}

func letter(ch rune) (rune, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch, true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 'A', true
	default:
		return 0, false
	}
}

func normalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

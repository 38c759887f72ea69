package wordlist

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/verte-zerg/tuidle/internal/generator"
)

// WordLength is the length every loaded word must have.
const WordLength = 5

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

// Picker chooses a target from the answer list.
type Picker interface {
	Pick(words []string) string
}

// List holds target answers and the accepted guesses. Answers are always
// accepted as guesses.
type List struct {
	answers []string
	allowed map[string]struct{}
	picker  Picker
}

// New builds a List from already normalized words.
func New(answers, allowed []string) (*List, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("answers list is empty")
	}
	set := make(map[string]struct{}, len(answers)+len(allowed))
	for _, w := range answers {
		set[w] = struct{}{}
	}
	for _, w := range allowed {
		set[w] = struct{}{}
	}
	return &List{
		answers: answers,
		allowed: set,
		picker:  generator.New(),
	}, nil
}

// Default returns the embedded lists.
func Default() (*List, error) {
	keep := FilterForLength(WordLength)
	answers, err := readWords(strings.NewReader(embeddedAnswers), keep)
	if err != nil {
		return nil, fmt.Errorf("embedded answers: %w", err)
	}
	allowed, err := readWords(strings.NewReader(embeddedAllowed), keep)
	if err != nil {
		return nil, fmt.Errorf("embedded allowed: %w", err)
	}
	return New(answers, allowed)
}

// Load reads lists from files.
//
// With both paths set, answers and extra guesses come from their own files.
// With only allowedPath set, that file serves as both lists. With only
// answersPath set, the embedded guesses are added to it. With neither, the
// embedded lists are used.
func Load(answersPath, allowedPath string) (*List, error) {
	keep := FilterForLength(WordLength)
	switch {
	case answersPath != "" && allowedPath != "":
		answers, err := LoadWords(answersPath, keep)
		if err != nil {
			return nil, err
		}
		allowed, err := LoadWords(allowedPath, keep)
		if err != nil {
			return nil, err
		}
		return New(answers, allowed)
	case allowedPath != "":
		words, err := LoadWords(allowedPath, keep)
		if err != nil {
			return nil, err
		}
		return New(words, nil)
	case answersPath != "":
		answers, err := LoadWords(answersPath, keep)
		if err != nil {
			return nil, err
		}
		allowed, err := readWords(strings.NewReader(embeddedAllowed), keep)
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		return New(answers, allowed)
	default:
		return Default()
	}
}

// SetPicker replaces the random target picker.
func (l *List) SetPicker(p Picker) {
	if p != nil {
		l.picker = p
	}
}

// RandomWord picks a target, uppercased.
func (l *List) RandomWord() string {
	return strings.ToUpper(l.picker.Pick(l.answers))
}

// IsValid reports whether word is an accepted guess. Case-insensitive.
func (l *List) IsValid(word string) bool {
	_, ok := l.allowed[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// IsAnswer reports whether word can be drawn as a target.
func (l *List) IsAnswer(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, a := range l.answers {
		if a == w {
			return true
		}
	}
	return false
}

// Answers returns the target list.
func (l *List) Answers() []string {
	return l.answers
}

// Stats returns the number of answers and accepted guesses.
func (l *List) Stats() (answers, allowed int) {
	return len(l.answers), len(l.allowed)
}

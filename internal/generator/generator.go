// Package generator draws target words.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator picks targets at random, steering away from recently played ones.
type Generator struct {
	rnd    *rand.Rand
	window int
	recent []string
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// AvoidRecent sets how many recent targets are excluded from the draw and
// seeds that history, most recent first.
func (g *Generator) AvoidRecent(window int, recent []string) {
	if window < 0 {
		window = 0
	}
	g.window = window
	g.recent = g.recent[:0]
	for i := len(recent) - 1; i >= 0; i-- {
		g.remember(recent[i])
	}
}

// Pick selects one word uniformly among those not picked recently. When every
// candidate is recent the draw covers all of them.
func (g *Generator) Pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	avoid := make(map[string]struct{}, len(g.recent))
	for _, w := range g.recent {
		avoid[w] = struct{}{}
	}

	candidates := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := avoid[strings.ToLower(word)]; !ok {
			candidates = append(candidates, word)
		}
	}
	if len(candidates) == 0 {
		candidates = words
	}
	word := candidates[g.rnd.Intn(len(candidates))]
	g.remember(word)
	return word
}

func (g *Generator) remember(word string) {
	if g.window == 0 {
		return
	}
	g.recent = append(g.recent, strings.ToLower(word))
	if over := len(g.recent) - g.window; over > 0 {
		g.recent = g.recent[over:]
	}
}

// Package stats contains the statistics aggregate, its persistence and reporting.
package stats

import (
	"fmt"
	"math"

	"github.com/verte-zerg/tuidle/internal/game"
)

// Aggregate is the persisted summary of every finished game.
type Aggregate struct {
	GamesPlayed       int   `json:"gamesPlayed"`
	GamesWon          int   `json:"gamesWon"`
	CurrentStreak     int   `json:"currentStreak"`
	MaxStreak         int   `json:"maxStreak"`
	GuessDistribution []int `json:"guessDistribution"`
}

// Zero returns the empty aggregate.
func Zero() Aggregate {
	return Aggregate{GuessDistribution: make([]int, game.MaxAttempts)}
}

// Record returns the aggregate with one more finished game. attempt is the
// 1-based winning attempt and is ignored on a loss. An out of range attempt
// on a win leaves the distribution unchanged.
func (a Aggregate) Record(won bool, attempt int) Aggregate {
	next := a.Clone()
	next.GamesPlayed++
	if !won {
		next.CurrentStreak = 0
		return next
	}
	next.GamesWon++
	next.CurrentStreak++
	if next.CurrentStreak > next.MaxStreak {
		next.MaxStreak = next.CurrentStreak
	}
	if attempt >= 1 && attempt <= len(next.GuessDistribution) {
		next.GuessDistribution[attempt-1]++
	}
	return next
}

// Clone returns a deep copy.
func (a Aggregate) Clone() Aggregate {
	out := a
	out.GuessDistribution = make([]int, game.MaxAttempts)
	copy(out.GuessDistribution, a.GuessDistribution)
	return out
}

// GamesLost returns played minus won.
func (a Aggregate) GamesLost() int {
	return a.GamesPlayed - a.GamesWon
}

// WinPercentage returns won/played as a whole percentage, rounded half away
// from zero. Zero games yields zero.
func (a Aggregate) WinPercentage() int {
	if a.GamesPlayed <= 0 {
		return 0
	}
	return int(math.Round(float64(a.GamesWon) / float64(a.GamesPlayed) * 100))
}

// Validate reports whether the aggregate is internally consistent enough to use.
func (a Aggregate) Validate() error {
	if len(a.GuessDistribution) != game.MaxAttempts {
		return fmt.Errorf("guess distribution has %d buckets, want %d", len(a.GuessDistribution), game.MaxAttempts)
	}
	if a.GamesPlayed < 0 || a.GamesWon < 0 || a.CurrentStreak < 0 || a.MaxStreak < 0 {
		return fmt.Errorf("negative counter")
	}
	if a.GamesWon > a.GamesPlayed {
		return fmt.Errorf("won %d exceeds played %d", a.GamesWon, a.GamesPlayed)
	}
	for i, n := range a.GuessDistribution {
		if n < 0 {
			return fmt.Errorf("negative count in bucket %d", i+1)
		}
	}
	return nil
}

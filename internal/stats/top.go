package stats

import (
	"sort"

	"github.com/verte-zerg/tuidle/internal/model"
)

// OpenerCount is how often a first guess was played and won.
type OpenerCount struct {
	Word  string
	Games int
	Wins  int
}

// TopOpeners returns the n most played first guesses.
func TopOpeners(games []model.GameRecord, n int) []OpenerCount {
	if n <= 0 || len(games) == 0 {
		return nil
	}
	byWord := map[string]*OpenerCount{}
	for _, g := range games {
		if len(g.Guesses) == 0 {
			continue
		}
		word := g.Guesses[0]
		item, ok := byWord[word]
		if !ok {
			item = &OpenerCount{Word: word}
			byWord[word] = item
		}
		item.Games++
		if g.Won {
			item.Wins++
		}
	}
	items := make([]OpenerCount, 0, len(byWord))
	for _, item := range byWord {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Games == items[j].Games {
			return items[i].Word < items[j].Word
		}
		return items[i].Games > items[j].Games
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

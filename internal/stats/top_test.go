package stats

import (
	"testing"

	"github.com/verte-zerg/tuidle/internal/model"
)

func TestTopOpeners(t *testing.T) {
	games := []model.GameRecord{
		{Guesses: []string{"CRANE", "SLATE"}, Won: true},
		{Guesses: []string{"SLATE"}, Won: true},
		{Guesses: []string{"CRANE"}, Won: false},
		{Guesses: []string{"ADIEU"}, Won: true},
		{Guesses: nil},
	}
	got := TopOpeners(games, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 openers, got %d", len(got))
	}
	if got[0] != (OpenerCount{Word: "CRANE", Games: 2, Wins: 1}) {
		t.Fatalf("unexpected top opener: %+v", got[0])
	}
	if got[1].Word != "ADIEU" {
		t.Fatalf("expected ties broken alphabetically, got %+v", got[1])
	}
	if TopOpeners(games, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

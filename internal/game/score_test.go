package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestScoreDuplicateLetters(t *testing.T) {
	cases := []struct {
		guess  string
		target string
		want   []Classification
	}{
		{"LOLLY", "ALLOY", []Classification{Present, Present, Correct, Absent, Correct}},
		{"ERASE", "SPEED", []Classification{Present, Absent, Absent, Present, Present}},
		{"EERIE", "CRANE", []Classification{Absent, Absent, Present, Absent, Correct}},
		{"CRANE", "CRANE", []Classification{Correct, Correct, Correct, Correct, Correct}},
		{"crane", "CRANE", []Classification{Correct, Correct, Correct, Correct, Correct}},
		{"SPEED", "ABIDE", []Classification{Absent, Absent, Present, Absent, Present}},
	}
	for _, tc := range cases {
		got := Score(tc.guess, tc.target)
		if len(got) != len(tc.want) {
			t.Fatalf("Score(%q, %q): expected %d results, got %d", tc.guess, tc.target, len(tc.want), len(got))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Score(%q, %q) = %v, want %v", tc.guess, tc.target, got, tc.want)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	first := Score("ERASE", "SPEED")
	for i := 0; i < 10; i++ {
		again := Score("ERASE", "SPEED")
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("expected identical results, got %v and %v", first, again)
			}
		}
	}
}

func TestScoreNeverOvercountsLetters(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const alphabet = "ABELS"
	randomWord := func() string {
		var b strings.Builder
		for i := 0; i < WordLength; i++ {
			b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
		}
		return b.String()
	}
	for n := 0; n < 2000; n++ {
		guess, target := randomWord(), randomWord()
		result := Score(guess, target)
		if len(result) != WordLength {
			t.Fatalf("expected %d results, got %d", WordLength, len(result))
		}
		hits := map[byte]int{}
		for i, c := range result {
			if !c.Scored() {
				t.Fatalf("unexpected classification %v for %s/%s", c, guess, target)
			}
			if c == Correct && guess[i] != target[i] {
				t.Fatalf("correct at %d without match for %s/%s", i, guess, target)
			}
			if c == Correct || c == Present {
				hits[guess[i]]++
			}
		}
		for ch, count := range hits {
			if limit := strings.Count(target, string(ch)); count > limit {
				t.Fatalf("%s/%s: letter %c matched %d times, target has %d", guess, target, ch, count, limit)
			}
		}
	}
}

func TestScoreMismatchedLengths(t *testing.T) {
	got := Score("ABCDE", "ABC")
	want := []Classification{Correct, Correct, Correct, Absent, Absent}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

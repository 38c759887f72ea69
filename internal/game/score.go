package game

import "strings"

// Score classifies every letter of guess against target.
//
// Exact matches are resolved first and claim their target index. Remaining
// guess letters, left to right, claim the first unclaimed target index holding
// the same letter and become Present; anything left over is Absent.
func Score(guess, target string) []Classification {
	g := []rune(strings.ToUpper(guess))
	t := []rune(strings.ToUpper(target))

	result := make([]Classification, len(g))
	for i := range result {
		result[i] = Absent
	}
	claimed := make([]bool, len(t))

	for i := range g {
		if i < len(t) && g[i] == t[i] {
			result[i] = Correct
			claimed[i] = true
		}
	}

	for i := range g {
		if result[i] == Correct {
			continue
		}
		for j := range t {
			if claimed[j] || t[j] != g[i] {
				continue
			}
			result[i] = Present
			claimed[j] = true
			break
		}
	}
	return result
}

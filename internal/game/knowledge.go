package game

// Knowledge maps a letter to the best classification seen for it so far.
type Knowledge map[rune]Classification

// Upgrade merges an observation into the stored classification.
// A Correct letter never changes, and a Present letter is never replaced by
// Absent. Every other observation overwrites.
func Upgrade(stored, observed Classification) Classification {
	if stored == Correct {
		return stored
	}
	if stored == Present && observed == Absent {
		return stored
	}
	return observed
}

// Apply returns a new Knowledge with every letter of guess merged in.
func (k Knowledge) Apply(guess string, result []Classification) Knowledge {
	next := k.Clone()
	for i, r := range []rune(guess) {
		if i >= len(result) {
			break
		}
		next[r] = Upgrade(next[r], result[i])
	}
	return next
}

// Clone copies the map so snapshots cannot alias engine state.
func (k Knowledge) Clone() Knowledge {
	out := make(Knowledge, len(k))
	for r, c := range k {
		out[r] = c
	}
	return out
}

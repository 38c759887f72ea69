package game

// Tile is one cell of the board.
type Tile struct {
	Letter rune
	State  Classification
}

// Reveal describes the row whose result is being animated before commit.
type Reveal struct {
	Row    int
	Guess  string
	Result []Classification
}

// Snapshot is a read-only copy of everything the presentation layer renders.
type Snapshot struct {
	Rows         [][]Tile
	Status       Status
	CurrentGuess string
	CurrentRow   int
	Knowledge    Knowledge
	Message      string
	Shake        bool
	RevealingRow int
	Reveal       *Reveal
	StatsVisible bool
	Generation   uint64
	// Target is only set once the game has ended.
	Target string
}

// Snapshot builds the current view state.
func (e *Engine) Snapshot() Snapshot {
	s := e.session
	snap := Snapshot{
		Rows:         make([][]Tile, MaxAttempts),
		Status:       s.Status,
		CurrentGuess: string(s.Guess),
		CurrentRow:   len(s.Attempts),
		Knowledge:    s.Knowledge.Clone(),
		Shake:        !e.shakeUntil.IsZero(),
		RevealingRow: -1,
		StatsVisible: e.statsVisible,
		Generation:   s.Generation,
	}
	if e.message != nil {
		snap.Message = e.message.text
	}
	if s.Status.Terminal() {
		snap.Target = s.Target
	}
	if p := e.pending; p != nil {
		snap.RevealingRow = p.row
		snap.Reveal = &Reveal{
			Row:    p.row,
			Guess:  p.guess,
			Result: append([]Classification(nil), p.result...),
		}
	}

	for row := range snap.Rows {
		tiles := make([]Tile, WordLength)
		switch {
		case row < len(s.Attempts):
			a := s.Attempts[row]
			for i, r := range []rune(a.Guess) {
				if i < WordLength {
					tiles[i] = Tile{Letter: r, State: a.Result[i]}
				}
			}
		case row == len(s.Attempts):
			for i, r := range s.Guess {
				tiles[i] = Tile{Letter: r, State: Pending}
			}
		}
		snap.Rows[row] = tiles
	}
	return snap
}

// Package cross_set checks the words that single new tiles make across the
// direction a word is being played in.
package cross_set

import (
	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/tilemapping"
)

// A Validator checks cross-words against a lexicon.
type Validator struct {
	Lex lexicon.Lexicon
}

// CrossWord returns the word that ml would form at row, col, perpendicular
// to dir, together with the tiles already on the board. The result has
// length 1 if ml would have no neighbors in that direction.
func (v Validator) CrossWord(b *board.GameBoard, row, col int, dir board.Direction,
	ml tilemapping.MachineLetter) tilemapping.MachineWord {

	_, _, w := b.WordAt(row, col, dir.Other(), ml)
	return w
}

// Allowed returns true if ml can go on row, col when playing in direction
// dir: either it makes no cross-word, or the cross-word is in the lexicon.
func (v Validator) Allowed(b *board.GameBoard, row, col int, dir board.Direction,
	ml tilemapping.MachineLetter) bool {

	w := v.CrossWord(b, row, col, dir, ml)
	if len(w) < 2 {
		return true
	}
	return v.Lex.HasWord(w)
}

// CrossSet works out every letter allowed on an empty square when playing
// in direction dir. An occupied square gets an empty set.
func (v Validator) CrossSet(b *board.GameBoard, row, col int, dir board.Direction) board.CrossSet {
	var cs board.CrossSet
	if b.HasLetter(row, col) {
		return cs
	}
	pr, pc := board.Pos(dir.Other(), 0, 1)
	if !b.HasLetter(row-pr, col-pc) && !b.HasLetter(row+pr, col+pc) {
		cs.SetAll()
		return cs
	}
	n := v.Lex.GetAlphabet().NumLetters()
	for ml := tilemapping.MachineLetter(1); ml <= tilemapping.MachineLetter(n); ml++ {
		if v.Allowed(b, row, col, dir, ml) {
			cs.Set(ml)
		}
	}
	return cs
}

// LineChecker returns a check for the squares of one line of the board,
// by offset along the line. Each square's cross-set is worked out the
// first time it is asked about. A LineChecker must not be shared between
// goroutines.
func (v Validator) LineChecker(b *board.GameBoard, line int, dir board.Direction) func(int, tilemapping.MachineLetter) bool {
	sets := make([]board.CrossSet, b.Dim())
	known := make([]bool, b.Dim())
	return func(offset int, ml tilemapping.MachineLetter) bool {
		if !known[offset] {
			r, c := board.Pos(dir, line, offset)
			sets[offset] = v.CrossSet(b, r, c, dir)
			known[offset] = true
		}
		return sets[offset].Allowed(ml)
	}
}

package movegen

import (
	"github.com/domino14/lexigrid/tilemapping"
)

// Tiles counts the tiles left to play, by machine letter; blanks are at 0.
// It is an array, so assigning or passing a Tiles copies it. Every search
// branch works on its own copy.
type Tiles [tilemapping.MaxAlphabetSize + 1]uint8

// TilesFromRack counts the tiles on a rack.
func TilesFromRack(r *tilemapping.Rack) Tiles {
	var t Tiles
	for ml, ct := range r.LetArr {
		t[ml] = uint8(ct)
	}
	return t
}

// take uses up a tile for letter ml: the letter itself if there is one,
// else a blank. It returns what goes on the board, which is a designated
// blank in the second case.
func (t *Tiles) take(ml tilemapping.MachineLetter) (tilemapping.MachineLetter, bool) {
	if t[ml] > 0 {
		t[ml]--
		return ml, true
	}
	if t[0] > 0 {
		t[0]--
		return ml.Blank(), true
	}
	return 0, false
}

// Count returns how many tiles there are in total.
func (t Tiles) Count() int {
	n := 0
	for _, ct := range t {
		n += int(ct)
	}
	return n
}

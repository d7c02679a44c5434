package board

import (
	"github.com/domino14/lexigrid/tilemapping"
)

const (
	// TrivialCrossSet allows every possible letter.
	TrivialCrossSet = (1 << (tilemapping.MaxAlphabetSize + 1)) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional, as it depends on which direction we are
// searching in. If we are searching HORIZONTALLY, a letter on a square must
// make a good VERTICAL word with the tiles above and below it.
type CrossSet uint64

// Allowed checks a letter; designated blanks are checked as the letter
// they stand for.
func (c CrossSet) Allowed(letter tilemapping.MachineLetter) bool {
	return c&(1<<uint8(letter.Unblank())) != 0
}

func (c *CrossSet) Set(letter tilemapping.MachineLetter) {
	*c = *c | (1 << letter.Unblank())
}

func CrossSetFromString(letters string, alph *tilemapping.TileMapping) (CrossSet, error) {
	c := CrossSet(0)
	for _, l := range letters {
		v, err := alph.Val(l)
		if err != nil {
			return 0, err
		}
		c.Set(v)
	}
	return c, nil
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

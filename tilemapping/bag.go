package tilemapping

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles!
type Bag struct {
	tiles              []MachineLetter
	letterDistribution *LetterDistribution
}

// NewBag creates an unshuffled bag holding every tile of the distribution.
func NewBag(ld *LetterDistribution) *Bag {
	tiles := make([]MachineLetter, 0, ld.NumTotalTiles())
	for ml, ct := range ld.Distribution() {
		for j := uint8(0); j < ct; j++ {
			tiles = append(tiles, MachineLetter(ml))
		}
	}
	return &Bag{tiles: tiles, letterDistribution: ld}
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag into ml. It returns an error if the bag
// has fewer than n tiles.
func (b *Bag) Draw(n int, ml []MachineLetter) error {
	if n > len(b.tiles) {
		return fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	l := len(b.tiles)
	copy(ml, b.tiles[l-n:l])
	b.tiles = b.tiles[:l-n]
	return nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and returns the number drawn.
func (b *Bag) DrawAtMost(n int, ml []MachineLetter) int {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	// Draw cannot fail once n is clamped.
	_ = b.Draw(n, ml)
	return n
}

// PutBack puts the tiles back in the bag and reshuffles it.
func (b *Bag) PutBack(letters []MachineLetter) {
	if len(letters) == 0 {
		return
	}
	for _, ml := range letters {
		if ml.IsBlanked() {
			ml = 0
		}
		b.tiles = append(b.tiles, ml)
	}
	b.Shuffle()
}

// RemoveTiles removes the given tiles from the bag. Designated blanks
// remove a blank.
func (b *Bag) RemoveTiles(tiles []MachineLetter) error {
	for _, t := range tiles {
		if t.IsBlanked() {
			t = 0
		}
		found := false
		for i := len(b.tiles) - 1; i >= 0; i-- {
			if b.tiles[i] == t {
				b.tiles[i] = b.tiles[len(b.tiles)-1]
				b.tiles = b.tiles[:len(b.tiles)-1]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tile %c is not in the bag",
				t.UserVisible(b.letterDistribution.TileMapping(), false))
		}
	}
	return nil
}

// TilesRemaining returns how many tiles are left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the remaining tiles.
func (b *Bag) Peek() []MachineLetter {
	ret := make([]MachineLetter, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}

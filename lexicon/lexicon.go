package lexicon

import (
	"github.com/domino14/lexigrid/tilemapping"
)

type Word = tilemapping.MachineWord

// A Lexicon answers word membership questions. Designated blanks in the
// words passed to HasWord count as the letters they stand for.
type Lexicon interface {
	Name() string
	GetAlphabet() *tilemapping.TileMapping
	HasWord(word Word) bool
}

// AcceptAll is a lexicon that accepts every word. It is handy for
// placing arbitrary words on a board.
type AcceptAll struct {
	Alph *tilemapping.TileMapping
}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) GetAlphabet() *tilemapping.TileMapping {
	return lex.Alph
}

func (lex AcceptAll) HasWord(word Word) bool {
	return true
}

package tilemapping

import (
	"github.com/rs/zerolog/log"
)

// Rack is a machine-friendly representation of a user's rack.
type Rack struct {
	// LetArr is an array of letter codes from 0 to alphabet.NumLetters.
	// The blank goes at 0.
	LetArr     []int
	numLetters uint8
	alphabet   *TileMapping
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(alph *TileMapping) *Rack {
	return &Rack{
		alphabet: alph,
		LetArr:   make([]int, int(alph.NumLetters())+1),
	}
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// RackFromString creates a Rack from a string and an alphabet. Illegal
// characters are logged and skipped.
func RackFromString(rack string, a *TileMapping) *Rack {
	r := NewRack(a)
	mls, err := ToMachineLetters(rack, a)
	if err != nil {
		log.Error().AnErr("err", err).Msg("unable to convert rack")
		return r
	}
	r.Set(mls)
	return r
}

// Set sets the rack from a list of machine letters. Designated blanks
// count as blanks.
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		r.Add(ml)
	}
}

func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

func (r *Rack) idx(letter MachineLetter) MachineLetter {
	if letter.IsBlanked() {
		return 0
	}
	return letter
}

// Take removes a tile from the rack. It should only be called if the tile
// is on the rack; it doesn't check if it's there!
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[r.idx(letter)]--
	r.numLetters--
}

func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[r.idx(letter)] > 0
}

func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[r.idx(letter)]
}

func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[r.idx(letter)]++
	r.numLetters++
}

// TilesOn returns the MachineLetters of the rack's current tiles. It is alphabetized.
func (r *Rack) TilesOn() MachineWord {
	letters := make([]MachineLetter, 0, r.numLetters)
	for i, ct := range r.LetArr {
		for j := 0; j < ct; j++ {
			letters = append(letters, MachineLetter(i))
		}
	}
	return MachineWord(letters)
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	for i, ct := range r.LetArr {
		score += ld.Score(MachineLetter(i)) * ct
	}
	return score
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}

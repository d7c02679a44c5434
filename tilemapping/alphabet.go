package tilemapping

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/rs/zerolog/log"
)

// A "letter" or tile is internally represented by a byte.
// The 0 value is used to represent various things:
// - an empty square on the board
// - a blank (wildcard) on your rack
// - a "played-through" letter on the board, when used in the description of a play.
// Real letters are numbered from 1 in alphabet order.
// A designated blank is the same letter but with the high bit set (0x80 | ml)
const (
	// MaxAlphabetSize should be below 64 so that a letterset can be a 64-bit int.
	MaxAlphabetSize = 62
	// ASCIIPlayedThrough is a somewhat user-friendly representation of a
	// played-through letter, used mostly for debug purposes.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
	// AltBlankToken is also accepted as a blank, in racks and patterns.
	AltBlankToken = '*'
)

const (
	BlankMask   = 0x80
	UnblankMask = (0x80 - 1)
)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// LetterSlice is a slice of runes. We make it a separate type for ease in
// defining sort functions on it.
type LetterSlice []rune

func (a LetterSlice) Len() int           { return len(a) }
func (a LetterSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a LetterSlice) Less(i, j int) bool { return a[i] < a[j] }

// A TileMapping contains the structures needed to map a user-visible "rune",
// like the letter Ψ, into its "MachineLetter" counterpart, and vice-versa.
type TileMapping struct {
	// vals is a map of the actual physical letter rune (like 'A') to a
	// number representing it, from 1 to MaxAlphabetSize.
	vals map[rune]MachineLetter
	// letters is a map of the 1 to MaxAlphabetSize value back to a letter.
	letters map[MachineLetter]rune
	// aliases map runes that are not letters of their own (like the Greek
	// final sigma) to a letter.
	aliases map[rune]rune

	letterSlice LetterSlice
}

// Init initializes the alphabet data structures
func (rm *TileMapping) Init() {
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
	rm.aliases = make(map[rune]rune)
}

// Letter returns the letter that this position in the alphabet corresponds to.
func (rm *TileMapping) Letter(b MachineLetter) rune {
	if b == 0 {
		return BlankToken
	}
	if b.IsBlanked() {
		return unicode.ToLower(rm.letters[b.Unblank()])
	}
	return rm.letters[b]
}

// Val returns the 'value' of this rune in the alphabet.
// Takes into account blanks (lowercase letters).
func (rm *TileMapping) Val(r rune) (MachineLetter, error) {
	if r == BlankToken || r == AltBlankToken {
		return 0, nil
	}
	if a, ok := rm.aliases[r]; ok {
		r = a
	}
	val, ok := rm.vals[r]
	if ok {
		return val, nil
	}
	if r == unicode.ToLower(r) {
		upper := unicode.ToUpper(r)
		if a, ok := rm.aliases[upper]; ok {
			upper = a
		}
		val, ok = rm.vals[upper]
		if ok {
			return val.Blank(), nil
		}
	}
	if r == ASCIIPlayedThrough {
		return 0, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// AddAlias makes `from` parse as the letter `to`.
func (rm *TileMapping) AddAlias(from, to rune) {
	rm.aliases[from] = to
}

// NumLetters returns the number of letters in this alphabet, not counting
// the blank.
func (rm *TileMapping) NumLetters() uint8 {
	return uint8(len(rm.letters))
}

// Letters returns the alphabet's letters in machine-letter order.
func (rm *TileMapping) Letters() []rune {
	return rm.letterSlice
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(rm *TileMapping, zeroForPlayedThrough bool) rune {
	if ml == 0 {
		if zeroForPlayedThrough {
			return ASCIIPlayedThrough
		}
		return BlankToken
	}
	return rm.Letter(ml)
}

// Blank turns the machine letter into its blank version
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank turns the machine letter into its non-blank version (if it's a blanked letter)
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is a designated blank letter.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// IsPlayedTile returns true if this represents a tile that was actually
// played on the board. It has to be an assigned blank or a letter, not
// a played-through-marker.
func (ml MachineLetter) IsPlayedTile() bool {
	return ml != 0
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, false)
	}
	return string(runes)
}

// UserVisiblePlayedTiles turns the passed-in machine word into a user-visible string.
// It assumes that the MachineWord represents played tiles and not just
// tiles on a rack, so it uses the PlayedThrough character for 0.
func (mw MachineWord) UserVisiblePlayedTiles(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, true)
	}
	return string(runes)
}

// Unblanked returns a copy of the word with designated blanks turned into
// the letters they stand for.
func (mw MachineWord) Unblanked() MachineWord {
	out := make(MachineWord, len(mw))
	for i, l := range mw {
		out[i] = l.Unblank()
	}
	return out
}

// Key returns a string usable as a map key for this word.
func (mw MachineWord) Key() string {
	return string(mw)
}

// ToMachineWord creates a MachineWord from the given string.
func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, tm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
func ToMachineLetters(word string, rm *TileMapping) ([]MachineLetter, error) {
	letters := make([]MachineLetter, 0, len(word))
	for _, ch := range word {
		ml, err := rm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters = append(letters, ml)
	}
	return letters, nil
}

func (rm *TileMapping) reconcile(order []rune) {
	rm.letterSlice = LetterSlice(order)
	if order == nil {
		rm.letterSlice = LetterSlice{}
		for rn := range rm.vals {
			rm.letterSlice = append(rm.letterSlice, rn)
		}
		sort.Sort(rm.letterSlice)
	}
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
	for idx, rn := range rm.letterSlice {
		rm.vals[rn] = MachineLetter(idx + 1)
		rm.letters[MachineLetter(idx+1)] = rn
	}
	log.Debug().Int("num-letters", len(rm.letterSlice)).Msg("tilemapping-reconciled")
}

// FromSlice creates an alphabet from the given letters, in order. The first
// letter becomes MachineLetter 1.
func FromSlice(arr []rune) *TileMapping {
	rm := &TileMapping{}
	rm.Init()
	rm.reconcile(arr)
	return rm
}

// GreekAlphabet returns the 24-letter upper-case Greek alphabet. The final
// sigma is accepted as a sigma.
func GreekAlphabet() *TileMapping {
	tm := FromSlice([]rune("ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"))
	tm.AddAlias('ς', 'σ')
	return tm
}

// EnglishAlphabet returns a TileMapping that corresponds to the English
// alphabet. This function should be used for testing.
func EnglishAlphabet() *TileMapping {
	return FromSlice([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
}

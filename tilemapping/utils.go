package tilemapping

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern is returned when a word pattern's wildcards do not
// line up with the letters given to fill them.
var ErrMalformedPattern = errors.New("malformed pattern")

// ParsePattern turns a word pattern into a MachineWord. Every wildcard
// (`?` or `*`) in the pattern is replaced, in order, by a designated blank
// standing for the next rune of substitutions. Lower-case letters in the
// pattern are designated blanks already. The `.` played-through marker
// is kept as 0.
func ParsePattern(pattern string, substitutions string, tm *TileMapping) (MachineWord, error) {
	subs := []rune(substitutions)
	wildcards := 0
	for _, r := range pattern {
		if r == BlankToken || r == AltBlankToken {
			wildcards++
		}
	}
	if wildcards != len(subs) {
		return nil, fmt.Errorf("%w: %d wildcards but %d substitution letters",
			ErrMalformedPattern, wildcards, len(subs))
	}
	word := make(MachineWord, 0, len(pattern))
	subIdx := 0
	for _, r := range pattern {
		if r == BlankToken || r == AltBlankToken {
			ml, err := tm.Val(subs[subIdx])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
			}
			if ml == 0 {
				return nil, fmt.Errorf("%w: substitution %q is not a letter",
					ErrMalformedPattern, subs[subIdx])
			}
			subIdx++
			word = append(word, ml.Unblank().Blank())
			continue
		}
		ml, err := tm.Val(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
		}
		word = append(word, ml)
	}
	return word, nil
}

// Leave calculates what stays on the rack after the tiles of play are used.
// Played-through markers in play are ignored; designated blanks use a blank.
func Leave(rack MachineWord, play MachineWord) (MachineWord, error) {
	counts := map[MachineLetter]int{}
	for _, l := range rack {
		counts[l]++
	}
	for _, t := range play {
		if t == 0 {
			continue
		}
		if t.IsBlanked() {
			t = 0
		}
		if counts[t] == 0 {
			return nil, fmt.Errorf("tile in play but not in rack: %v", t)
		}
		counts[t]--
	}
	leave := make(MachineWord, 0, len(rack))
	for _, l := range rack {
		if counts[l] > 0 {
			leave = append(leave, l)
			counts[l]--
		}
	}
	return leave, nil
}

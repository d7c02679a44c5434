package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParsePattern(t *testing.T) {
	is := is.New(t)
	tm := GreekAlphabet()
	word, err := ParsePattern("Τ?Ψ*", "ΑΙ", tm)
	is.NoErr(err)
	is.Equal(word, MachineWord{19, 1 | 0x80, 23, 9 | 0x80})

	// Lower-case substitutions work too.
	word, err = ParsePattern("?Α", "ω", tm)
	is.NoErr(err)
	is.Equal(word, MachineWord{24 | 0x80, 1})

	word, err = ParsePattern("ΤΑΨΙ", "", tm)
	is.NoErr(err)
	is.Equal(word, MachineWord{19, 1, 23, 9})
}

func TestParsePatternMalformed(t *testing.T) {
	is := is.New(t)
	tm := GreekAlphabet()
	for _, tc := range []struct {
		pattern, subs string
	}{
		{"Τ?Ψ?", "Α"},
		{"ΤΑΨΙ", "Α"},
		{"Τ?", "Q"},
		{"Q?", "Α"},
	} {
		_, err := ParsePattern(tc.pattern, tc.subs, tm)
		is.True(errors.Is(err, ErrMalformedPattern))
	}
}

func TestLeave(t *testing.T) {
	is := is.New(t)
	tm := GreekAlphabet()
	rack, err := ToMachineWord("ΑΒΓ?", tm)
	is.NoErr(err)
	play, err := ToMachineWord("Γ.αΒ", tm)
	is.NoErr(err)
	leave, err := Leave(rack, play)
	is.NoErr(err)
	is.Equal(leave, MachineWord{1})

	play, err = ToMachineWord("ΩΩ", tm)
	is.NoErr(err)
	_, err = Leave(rack, play)
	is.True(err != nil)
}

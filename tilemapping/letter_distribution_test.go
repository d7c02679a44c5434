package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/config"
)

var DefaultConfig = config.DefaultConfig()

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld, err := GreekLetterDistribution(DefaultConfig)
	is.NoErr(err)

	is.Equal(ld.Score(0), 0)
	is.Equal(ld.Score(0x81), 0)
	is.Equal(ld.Score(1), 1)   // Α
	is.Equal(ld.Score(2), 8)   // Β
	is.Equal(ld.Score(23), 10) // Ψ
	is.Equal(ld.Score(24), 3)  // Ω
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld, err := GreekLetterDistribution(DefaultConfig)
	is.NoErr(err)

	word, err := ToMachineWord("ΤΑΨΙ", ld.TileMapping())
	is.NoErr(err)
	is.Equal(ld.WordScore(word), 13)
	word, err = ToMachineWord("ΤαΨΙ", ld.TileMapping())
	is.NoErr(err)
	is.Equal(ld.WordScore(word), 12)
}

func TestLetterDistributionVowels(t *testing.T) {
	ld, err := GreekLetterDistribution(DefaultConfig)
	assert.NoError(t, err)
	uv := MachineWord(ld.Vowels).UserVisible(ld.TileMapping())
	assert.Equal(t, "ΑΕΗΙΟΥΩ", uv)
}

func TestLetterDistributionCached(t *testing.T) {
	is := is.New(t)
	ld1, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)
	ld2, err := NamedLetterDistribution(DefaultConfig, "English")
	is.NoErr(err)
	is.True(ld1 == ld2)
	is.Equal(ld1.Name, "english")
}

func TestLetterDistributionNotFound(t *testing.T) {
	_, err := NamedLetterDistribution(DefaultConfig, "klingon")
	assert.Error(t, err)
}

func TestScanLetterDistribution(t *testing.T) {
	is := is.New(t)
	ld, err := ScanLetterDistribution(strings.NewReader("?,1,0,0\nΒ,2,3,0\nΑ,4,1,1\n"))
	is.NoErr(err)
	is.Equal(ld.NumTotalTiles(), 7)
	is.Equal(ld.Distribution(), []uint8{1, 2, 4})
	v, err := ld.TileMapping().Val('Β')
	is.NoErr(err)
	is.Equal(v, MachineLetter(1))
	is.Equal(ld.Score(2), 1)

	_, err = ScanLetterDistribution(strings.NewReader("?,1,0,0\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader("Α,x,1,1\n"))
	is.True(err != nil)
}

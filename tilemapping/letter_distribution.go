package tilemapping

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/cache"
	"github.com/domino14/lexigrid/config"
)

//go:embed data/*.csv
var builtinDistributions embed.FS

const CacheKeyPrefix = "letterdist:"

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each tile there are and what each one is worth.
type LetterDistribution struct {
	tilemapping  *TileMapping
	Vowels       []MachineLetter
	distribution []uint8
	scores       []int
	numLetters   int
	Name         string
}

// ScanLetterDistribution reads a csv of letter,quantity,value,vowel rows.
// The blank is given by the `?` letter.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	letters := []rune{}
	dist := []uint8{0}
	ptValues := []int{0}
	vowelRunes := []rune{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter, size := utf8.DecodeRuneInString(strings.TrimSpace(record[0]))
		if size == 0 {
			return nil, errors.New("empty letter in letter distribution")
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if letter == BlankToken {
			dist[0] = uint8(n)
			ptValues[0] = p
			continue
		}
		if v == 1 {
			vowelRunes = append(vowelRunes, letter)
		}
		letters = append(letters, letter)
		dist = append(dist, uint8(n))
		ptValues = append(ptValues, p)
	}
	if len(letters) == 0 {
		return nil, errors.New("letter distribution has no letters")
	}
	if len(letters) > MaxAlphabetSize {
		return nil, fmt.Errorf("letter distribution has %d letters; max is %d",
			len(letters), MaxAlphabetSize)
	}
	alph := FromSlice(letters)
	if _, ok := alph.vals['Σ']; ok {
		alph.AddAlias('ς', 'σ')
	}
	vowels := make([]MachineLetter, len(vowelRunes))
	for i, rn := range vowelRunes {
		vowels[i], _ = alph.Val(rn)
	}
	return newLetterDistribution(alph, dist, ptValues, vowels), nil
}

func newLetterDistribution(alph *TileMapping, dist []uint8,
	ptValues []int, vowels []MachineLetter) *LetterDistribution {

	numTotalLetters := 0
	for _, v := range dist {
		numTotalLetters += int(v)
	}
	return &LetterDistribution{
		tilemapping:  alph,
		distribution: dist,
		scores:       ptValues,
		Vowels:       vowels,
		numLetters:   numTotalLetters,
	}
}

// Score gives the score of the given machine letter. Blanks, designated or
// not, are worth the blank's value.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml.IsBlanked() {
		return ld.scores[0]
	}
	return ld.scores[ml]
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// WordScore returns the face value of this word.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

// Distribution returns the number of tiles of each letter, indexed by
// machine letter; the blank count is at 0.
func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

// NumTotalTiles returns the number of tiles in a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// MakeBag returns a shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld)
	b.Shuffle()
	return b
}

func loadDistribution(cfg *config.Config, key string) (any, error) {
	name := strings.ToLower(strings.TrimPrefix(key, CacheKeyPrefix))
	filename := filepath.Join(cfg.GetString(config.ConfigLetterDistributionPath), name+".csv")
	f, err := os.Open(filename)
	if err == nil {
		defer f.Close()
		log.Debug().Str("filename", filename).Msg("loading letter distribution from file")
		ld, err := ScanLetterDistribution(f)
		if err != nil {
			return nil, err
		}
		ld.Name = name
		return ld, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	bf, err := builtinDistributions.Open("data/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("letter distribution %v not found", name)
	}
	defer bf.Close()
	ld, err := ScanLetterDistribution(bf)
	if err != nil {
		return nil, err
	}
	ld.Name = name
	return ld, nil
}

// NamedLetterDistribution loads a letter distribution by name, from the
// configured directory if a file exists there, or else from the built-in
// distributions. Results are cached.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	obj, err := cache.Load(cfg, CacheKeyPrefix+strings.ToLower(name), loadDistribution)
	if err != nil {
		return nil, err
	}
	return obj.(*LetterDistribution), nil
}

// GreekLetterDistribution returns the Greek letter distribution.
func GreekLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "greek")
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "english")
}

package game

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/placement"
	"github.com/domino14/lexigrid/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func newTestGame(t *testing.T, words ...string) *Game {
	ld, err := tilemapping.GreekLetterDistribution(DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(DefaultConfig, lexicon.NewTrieFromWords("test", words, ld.TileMapping()), ld)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGenerateMovesRanked(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "ΤΑΨΙ", "ΤΗΓΑΝΙΑ")
	rack := tilemapping.RackFromString("ΤΗΓΑΝΙΑ", g.Alphabet())

	plays, err := g.GenerateMoves(context.Background(), rack, 0)
	is.NoErr(err)
	is.Equal(len(plays), 7)
	got := make([]string, len(plays))
	scores := make([]int, len(plays))
	for i, p := range plays {
		got[i] = p.ShortDescription()
		scores[i] = p.Score()
	}
	is.Equal(got, []string{
		"8B ΤΗΓΑΝΙΑ", "8C ΤΗΓΑΝΙΑ", "8D ΤΗΓΑΝΙΑ", "8F ΤΗΓΑΝΙΑ",
		"8G ΤΗΓΑΝΙΑ", "8H ΤΗΓΑΝΙΑ", "8E ΤΗΓΑΝΙΑ"})
	is.Equal(scores, []int{78, 72, 72, 72, 72, 72, 70})

	top, err := g.GenerateMoves(context.Background(), rack, 2)
	is.NoErr(err)
	is.Equal(len(top), 2)
	is.Equal(top[0].Score(), 78)
	// Generating doesn't touch the board or the rack.
	is.True(g.Board().IsEmpty())
	is.Equal(rack.String(), "ΑΑΓΗΙΝΤ")
}

func TestPlayMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "ΤΑΨΙ", "ΤΗΓΑΝΙΑ")
	m, err := move.NewScoringMoveSimple(0, "H5", "ΤΑΨΙ", "", g.Alphabet())
	is.NoErr(err)
	res, err := g.PlayMove(m)
	is.NoErr(err)
	is.True(res.Score > 0)
	is.Equal(m.Score(), res.Score)
	is.Equal(g.Board().TilesPlayed(), 4)

	before := g.Board()
	bad, err := move.NewScoringMoveSimple(0, "6F", "ΤΗΓΑΝΙΑ", "", g.Alphabet())
	is.NoErr(err)
	_, err = g.PlayMove(bad)
	is.True(errors.Is(err, placement.ErrOccupiedConflict))
	is.True(g.Board().Equals(before))

	// Generated plays go through the Τ.
	plays, err := g.GenerateMoves(context.Background(),
		tilemapping.RackFromString("ΗΓΑΝΙΑΣ", g.Alphabet()), 0)
	is.NoErr(err)
	is.Equal(len(plays), 1)
	is.Equal(plays[0].ShortDescription(), "5H .ΗΓΑΝΙΑ")
}

func TestPlayFromRack(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "ΤΑΨΙ")
	rack := tilemapping.RackFromString("ΤΑ?ΙΩ", g.Alphabet())
	m, err := move.NewScoringMoveSimple(0, "8H", "ΤΑψΙ", "", g.Alphabet())
	is.NoErr(err)
	_, err = g.PlayFromRack(m, rack)
	is.NoErr(err)
	is.Equal(rack.String(), "Ω")
	is.Equal(m.LeaveString(), "Ω")

	m, err = move.NewScoringMoveSimple(0, "H8", ".ΑΨΙ", "", g.Alphabet())
	is.NoErr(err)
	_, err = g.PlayFromRack(m, rack)
	is.True(errors.Is(err, ErrRackMismatch))
	is.Equal(g.Board().TilesPlayed(), 4)
}

func TestSetWord(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "ΤΑ")
	// Not in the lexicon, but SetWord doesn't care.
	is.NoErr(g.SetWord("A1", "ΩΩΩ"))
	is.Equal(g.Board().TilesPlayed(), 3)
	is.True(g.SetWord("A14", "ΩΩΩ") != nil)
	is.True(g.SetWord("Z1", "ΩΩΩ") != nil)
	g.Reset()
	is.True(g.Board().IsEmpty())
}

func TestNewGameFromConfig(t *testing.T) {
	g, err := NewGameFromConfig(DefaultConfig)
	assert.NoError(t, err)
	assert.Equal(t, "greek", g.LetterDistribution().Name)
	assert.True(t, g.Lexicon().IsWord("ΤΑΨΙ"))
	assert.Equal(t, 15, g.Board().Dim())
}

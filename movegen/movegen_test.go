package movegen

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

func emptyBoard(t *testing.T) *board.GameBoard {
	b, err := board.MakeBoard(board.CrosswordGameLayout)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func descriptions(plays []*move.Move) []string {
	out := make([]string, len(plays))
	for i, p := range plays {
		out[i] = p.ShortDescription()
	}
	return out
}

func TestGenAllEmptyBoard(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.GreekAlphabet()
	trie := lexicon.NewTrieFromWords("test", []string{"ΤΑΨΙ", "ΤΗΓΑΝΙΑ"}, tm)
	gen := NewGenerator(trie, 4)

	plays, err := gen.GenAll(context.Background(), emptyBoard(t),
		tilemapping.RackFromString("ΤΑΨΙΩΩΩ", tm))
	is.NoErr(err)
	is.Equal(descriptions(plays), []string{"8E ΤΑΨΙ", "8F ΤΑΨΙ", "8G ΤΑΨΙ", "8H ΤΑΨΙ"})
	for _, p := range plays {
		is.Equal(p.TilesPlayed(), 4)
		is.Equal(p.LeaveString(), "ΩΩΩ")
	}
}

func TestGenAllThroughTile(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.GreekAlphabet()
	trie := lexicon.NewTrieFromWords("test", []string{"ΤΑΨΙ", "ΤΗΓΑΝΙΑ"}, tm)
	gen := NewGenerator(trie, 0)

	b := emptyBoard(t)
	word, err := tilemapping.ToMachineWord("ΤΑΨΙ", tm)
	is.NoErr(err)
	is.NoErr(b.PlaceTiles(4, 7, board.Vertical, word))

	plays, err := gen.GenAll(context.Background(), b, tilemapping.RackFromString("ΗΓΑΝΙΑΣ", tm))
	is.NoErr(err)
	is.Equal(descriptions(plays), []string{"5H .ΗΓΑΝΙΑ"})
	is.Equal(plays[0].TilesPlayed(), 6)
	is.Equal(plays[0].LeaveString(), "Σ")
}

func TestGenAllCrossCheck(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.GreekAlphabet()
	trie := lexicon.NewTrieFromWords("test", []string{"ΤΑ", "ΤΑΨΙ", "ΨΙ"}, tm)
	gen := NewGenerator(trie, 2)

	b := emptyBoard(t)
	_, err := b.SetRow(7, "       ΤΑ", tm)
	is.NoErr(err)
	rack := tilemapping.RackFromString("ΨΙ", tm)

	plays, err := gen.GenAll(context.Background(), b, rack)
	is.NoErr(err)
	is.Equal(descriptions(plays), []string{"8H ..ΨΙ"})

	// An Ω above the square the Ψ would take makes ΩΨ down the column.
	omega, _ := tm.Val('Ω')
	b.SetLetter(6, 9, omega)
	plays, err = gen.GenAll(context.Background(), b, rack)
	is.NoErr(err)
	is.Equal(len(plays), 0)
}

func TestGenAllDeterministic(t *testing.T) {
	tm := tilemapping.GreekAlphabet()
	trie := lexicon.NewTrieFromWords("test", greekWords, tm)
	b := emptyBoard(t)
	_, err := b.SetRow(7, "    ΘΑΛΑΣΣΑ", tm)
	assert.NoError(t, err)
	rack := tilemapping.RackFromString("ΤΑΨΙΡΩ?", tm)

	first, err := NewGenerator(trie, 1).GenAll(context.Background(), b, rack)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		again, err := NewGenerator(trie, 8).GenAll(context.Background(), b, rack)
		assert.NoError(t, err)
		assert.Equal(t, descriptions(first), descriptions(again))
	}
	// Sorted by position.
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, comparePlays(first[i-1], first[i]), 0)
	}
}

func TestGenAllCancelled(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.GreekAlphabet()
	trie := lexicon.NewTrieFromWords("test", greekWords, tm)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := emptyBoard(t)
	b.SetLetter(7, 7, 1)
	_, err := NewGenerator(trie, 2).GenAll(ctx, b, tilemapping.RackFromString("ΤΑΨΙ", tm))
	is.True(err != nil)
}

func TestCandidateToMove(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.GreekAlphabet()
	line := makeLine(t, "   Τ ΨΙ", tm)
	c := Candidate{Start: 3, Word: tilemapping.MachineWord{19, 1 | 0x80, 23, 9}, NumPlaced: 1}
	rack := tilemapping.RackFromString("?Ω", tm)
	m := CandidateToMove(c, line, 2, board.Vertical, rack.TilesOn(), tm)
	is.Equal(m.ShortDescription(), "C4 .α..")
	is.Equal(m.LeaveString(), "Ω")
	is.Equal(m.TilesPlayed(), 1)
}

// Package placement scores a play against a board: it finds every word the
// play forms, checks each one against a lexicon and adds up the points.
// Scoring never touches the board it is given; Commit does that.
package placement

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

var (
	ErrInvalidWord        = errors.New("play forms a word that is not in the lexicon")
	ErrOccupiedConflict   = errors.New("play puts a tile on a square holding another letter")
	ErrNoTilesPlaced      = errors.New("play must place at least one new tile")
	ErrOutOfBounds        = errors.New("play extends off of the board")
	ErrPlayedThroughEmpty = errors.New("a played-through marker was given for an empty square")
	ErrNotAPlay           = errors.New("move is not a tile placement")
)

// A Tile is a tile going onto an empty square.
type Tile struct {
	Row    int
	Col    int
	Letter tilemapping.MachineLetter
}

// A ScoredWord is one word formed by a play, with the square it starts on.
type ScoredWord struct {
	Word  tilemapping.MachineWord
	Row   int
	Col   int
	Dir   board.Direction
	Score int
}

// Result is a play that was scored successfully.
type Result struct {
	Score int
	// Words holds the main word first, followed by the cross-words in the
	// order of the tiles that formed them.
	Words  []ScoredWord
	Placed []Tile
	Bingo  bool
}

// Scorer scores plays. BingoTiles new tiles in one play earn BingoBonus.
type Scorer struct {
	Lex        lexicon.Lexicon
	Dist       *tilemapping.LetterDistribution
	BingoTiles int
	BingoBonus int
}

// NewScorer creates a scorer using the rack size and bingo bonus from cfg.
func NewScorer(cfg *config.Config, lex lexicon.Lexicon, dist *tilemapping.LetterDistribution) *Scorer {
	return &Scorer{
		Lex:        lex,
		Dist:       dist,
		BingoTiles: cfg.GetInt(config.ConfigRackSize),
		BingoBonus: cfg.GetInt(config.ConfigBingoBonus),
	}
}

type visit struct {
	row, col int
	dir      board.Direction
}

// Score scores a play without changing b. The play's tiles start at its
// coordinates; 0 marks a square played through, and a letter matching
// the one already on its square counts as played through too.
func (s *Scorer) Score(b *board.GameBoard, m *move.Move) (*Result, error) {
	if m.Action() != move.MoveTypePlay {
		return nil, ErrNotAPlay
	}
	row, col, vertical := m.CoordsAndVertical()
	dir := board.Horizontal
	if vertical {
		dir = board.Vertical
	}
	return s.ScoreTiles(b, row, col, dir, m.Tiles())
}

// ScoreTiles is Score for tiles that are not wrapped in a move.
func (s *Scorer) ScoreTiles(b *board.GameBoard, row, col int, dir board.Direction,
	tiles tilemapping.MachineWord) (*Result, error) {

	placed, err := stage(b, row, col, dir, tiles)
	if err != nil {
		return nil, err
	}
	staged := b.Copy()
	isNew := make(map[[2]int]bool, len(placed))
	for _, t := range placed {
		staged.SetLetter(t.Row, t.Col, t.Letter)
		isNew[[2]int{t.Row, t.Col}] = true
	}

	res := &Result{Placed: placed}
	visited := map[visit]bool{}
	for _, d := range []board.Direction{dir, dir.Other()} {
		for _, t := range placed {
			sr, sc, word := staged.WordAt(t.Row, t.Col, d, 0)
			v := visit{sr, sc, d}
			if visited[v] {
				continue
			}
			visited[v] = true
			if len(word) < 2 {
				continue
			}
			if !s.Lex.HasWord(word) {
				log.Debug().Str("word", word.UserVisible(s.Lex.GetAlphabet())).
					Msg("rejected-play")
				return nil, fmt.Errorf("%w: %v", ErrInvalidWord,
					word.UserVisible(s.Lex.GetAlphabet()))
			}
			pts := s.wordScore(b, sr, sc, d, word, isNew)
			res.Words = append(res.Words, ScoredWord{
				Word: word, Row: sr, Col: sc, Dir: d, Score: pts})
			res.Score += pts
		}
	}
	if s.BingoTiles > 0 && len(placed) >= s.BingoTiles {
		res.Bingo = true
		res.Score += s.BingoBonus
	}
	return res, nil
}

// stage works out which squares the tiles go on, checking them against
// what is on the board.
func stage(b *board.GameBoard, row, col int, dir board.Direction,
	tiles tilemapping.MachineWord) ([]Tile, error) {

	placed := []Tile{}
	for i, t := range tiles {
		r, c := board.Pos(dir, 0, i)
		r, c = row+r, col+c
		if !b.PosExists(r, c) {
			return nil, fmt.Errorf("%w: %v at %d,%d", ErrOutOfBounds, dir, row, col)
		}
		occupant := b.GetLetter(r, c)
		switch {
		case t == 0 && occupant == 0:
			return nil, fmt.Errorf("%w: %v", ErrPlayedThroughEmpty,
				move.ToBoardGameCoords(r, c, false))
		case t == 0:
		case occupant == 0:
			placed = append(placed, Tile{Row: r, Col: c, Letter: t})
		case occupant.Unblank() != t.Unblank():
			return nil, fmt.Errorf("%w: %v", ErrOccupiedConflict,
				move.ToBoardGameCoords(r, c, false))
		}
	}
	if len(placed) == 0 {
		return nil, ErrNoTilesPlaced
	}
	return placed, nil
}

// wordScore adds up a word. Bonus squares count only under new tiles.
func (s *Scorer) wordScore(b *board.GameBoard, sr, sc int, d board.Direction,
	word tilemapping.MachineWord, isNew map[[2]int]bool) int {

	pts, wordMult := 0, 1
	for i, ml := range word {
		r, c := board.Pos(d, 0, i)
		r, c = sr+r, sc+c
		lp := s.Dist.Score(ml)
		if isNew[[2]int{r, c}] {
			bonus := b.GetBonus(r, c)
			lp *= bonus.LetterMultiplier()
			wordMult *= bonus.WordMultiplier()
		}
		pts += lp
	}
	return pts * wordMult
}

// Commit puts the tiles of a scored play on the board. It fails without
// changing anything if one of the squares has been filled since.
func Commit(b *board.GameBoard, res *Result) error {
	for _, t := range res.Placed {
		if b.HasLetter(t.Row, t.Col) {
			return fmt.Errorf("%w: %v", ErrOccupiedConflict,
				move.ToBoardGameCoords(t.Row, t.Col, false))
		}
	}
	for _, t := range res.Placed {
		b.SetLetter(t.Row, t.Col, t.Letter)
	}
	return nil
}

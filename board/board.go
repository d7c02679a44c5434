package board

import (
	"errors"
	"fmt"

	"github.com/domino14/lexigrid/tilemapping"
)

// Direction is the orientation of a line of the board.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Pos converts an offset along a line into board coordinates. Horizontal
// lines are rows; vertical lines are columns.
func Pos(dir Direction, line, offset int) (row, col int) {
	if dir == Horizontal {
		return line, offset
	}
	return offset, line
}

var ErrBadLayout = errors.New("bad board layout")

// A GameBoard is the main board structure. It is a square grid of
// Squares, each with a fixed bonus and an occupant.
type GameBoard struct {
	squares     [][]Square
	tilesPlayed int
}

// MakeBoard creates a board from a layout: one string of bonus runes per
// row.
func MakeBoard(layout []string) (*GameBoard, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	rows := make([][]Square, len(layout))
	for i, s := range layout {
		row := make([]Square, 0, len(layout))
		for _, c := range s {
			b := BonusSquare(c)
			if !b.valid() {
				return nil, fmt.Errorf("%w: unknown bonus %q in row %d", ErrBadLayout, c, i+1)
			}
			row = append(row, Square{bonus: b})
		}
		if len(row) != len(layout) {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d",
				ErrBadLayout, i+1, len(row), len(layout))
		}
		rows[i] = row
	}
	return &GameBoard{squares: rows}, nil
}

// Dim is the dimension of the board. Boards are square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// Center returns the index of the center row and column.
func (g *GameBoard) Center() int {
	return g.Dim() / 2
}

func (g *GameBoard) PosExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.squares[row][col].bonus
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return &g.squares[row][col]
}

// SetLetter sets the occupant of a square; 0 empties it.
func (g *GameBoard) SetLetter(row int, col int, letter tilemapping.MachineLetter) {
	sq := &g.squares[row][col]
	if sq.letter == 0 && letter != 0 {
		g.tilesPlayed++
	} else if sq.letter != 0 && letter == 0 {
		g.tilesPlayed--
	}
	sq.letter = letter
}

func (g *GameBoard) GetLetter(row int, col int) tilemapping.MachineLetter {
	return g.squares[row][col].letter
}

// HasLetter returns true if the position exists and holds a tile.
func (g *GameBoard) HasLetter(row int, col int) bool {
	return g.PosExists(row, col) && g.squares[row][col].letter != 0
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	for i := range g.squares {
		for j := range g.squares[i] {
			g.squares[i][j].letter = 0
		}
	}
	g.tilesPlayed = 0
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	rows := make([][]Square, len(g.squares))
	for i := range g.squares {
		rows[i] = make([]Square, len(g.squares[i]))
		copy(rows[i], g.squares[i])
	}
	return &GameBoard{squares: rows, tilesPlayed: g.tilesPlayed}
}

// CopyFrom copies the letters of another board of the same layout onto
// this one.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	for i := range g.squares {
		copy(g.squares[i], other.squares[i])
	}
	g.tilesPlayed = other.tilesPlayed
}

// Line returns a copy of the letters of a row (Horizontal) or a column
// (Vertical). Empty squares are 0.
func (g *GameBoard) Line(idx int, dir Direction) []tilemapping.MachineLetter {
	line := make([]tilemapping.MachineLetter, g.Dim())
	for i := range line {
		r, c := Pos(dir, idx, i)
		line[i] = g.squares[r][c].letter
	}
	return line
}

// PlaceTiles puts the tiles of a word on the board, starting at row, col
// and going in direction dir. 0 tiles are played-through markers and leave
// the square alone. It does no validation beyond bounds.
func (g *GameBoard) PlaceTiles(row, col int, dir Direction, tiles tilemapping.MachineWord) error {
	dr, dc := 0, 1
	if dir == Vertical {
		dr, dc = 1, 0
	}
	if !g.PosExists(row, col) || !g.PosExists(row+dr*(len(tiles)-1), col+dc*(len(tiles)-1)) {
		return fmt.Errorf("tiles at %d,%d (%v) run off the board", row, col, dir)
	}
	for i, t := range tiles {
		if t == 0 {
			continue
		}
		g.SetLetter(row+dr*i, col+dc*i, t)
	}
	return nil
}

// WordAt returns the run of tiles through row, col going in direction dir,
// and the coordinates of its first tile. If ml is not 0 it is used as the
// occupant of row, col, whatever is on the board there; this is how a
// tile that is not yet placed gets checked.
func (g *GameBoard) WordAt(row, col int, dir Direction,
	ml tilemapping.MachineLetter) (int, int, tilemapping.MachineWord) {

	dr, dc := 0, 1
	if dir == Vertical {
		dr, dc = 1, 0
	}
	occupant := func(r, c int) tilemapping.MachineLetter {
		if r == row && c == col && ml != 0 {
			return ml
		}
		if !g.PosExists(r, c) {
			return 0
		}
		return g.squares[r][c].letter
	}
	sr, sc := row, col
	for occupant(sr-dr, sc-dc) != 0 {
		sr, sc = sr-dr, sc-dc
	}
	word := tilemapping.MachineWord{}
	for r, c := sr, sc; occupant(r, c) != 0; r, c = r+dr, c+dc {
		word = append(word, occupant(r, c))
	}
	return sr, sc, word
}

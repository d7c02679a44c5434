package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/lexigrid/tilemapping"
)

// MoveType is a type of move; a play or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

var ErrBadCoords = errors.New("bad coordinates")

// Move is a move. It can have a score and a position. Tiles that are
// already on the board are 0 (played through) in the move's tiles.
type Move struct {
	action      MoveType
	score       int
	coords      string
	tiles       tilemapping.MachineWord
	leave       tilemapping.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf(
			"<%p action: play word: %v %v score: %v tp: %v leave: %v>",
			m, m.coords, m.TilesString(), m.score, m.tilesPlayed, m.LeaveString())
	case MoveTypePass:
		return fmt.Sprintf("<%p action: pass leave: %v>", m, m.LeaveString())
	}
	return "<Unhandled move>"
}

// TilesString shows the tiles, with a . for every square played through.
func (m *Move) TilesString() string {
	return m.tiles.UserVisiblePlayedTiles(m.alph)
}

func (m *Move) LeaveString() string {
	return m.leave.UserVisible(m.alph)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.coords, m.TilesString())
	case MoveTypePass:
		return "(Pass)"
	}
	return "UNHANDLED"
}

func (m *Move) Action() MoveType {
	return m.action
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

func countPlayed(tiles tilemapping.MachineWord) int {
	n := 0
	for _, t := range tiles {
		if t.IsPlayedTile() {
			n++
		}
	}
	return n
}

// NewScoringMove creates a scoring *Move and returns it.
func NewScoringMove(score int, tiles tilemapping.MachineWord,
	leave tilemapping.MachineWord, vertical bool,
	alph *tilemapping.TileMapping, rowStart int, colStart int) *Move {

	return &Move{
		action: MoveTypePlay, score: score, tiles: tiles, leave: leave,
		vertical: vertical, tilesPlayed: countPlayed(tiles), alph: alph,
		rowStart: rowStart, colStart: colStart,
		coords: ToBoardGameCoords(rowStart, colStart, vertical),
	}
}

// NewScoringMoveSimple takes in user-visible strings. A `.` in the word is
// a square played through.
func NewScoringMoveSimple(score int, coords string, word string, leave string,
	alph *tilemapping.TileMapping) (*Move, error) {

	row, col, vertical, err := ParseCoords(coords)
	if err != nil {
		return nil, err
	}
	tiles, err := tilemapping.ToMachineWord(word, alph)
	if err != nil {
		return nil, err
	}
	leaveMW, err := tilemapping.ToMachineWord(leave, alph)
	if err != nil {
		return nil, err
	}
	return NewScoringMove(score, tiles, leaveMW, vertical, alph, row, col), nil
}

// NewPassMove creates a pass with the given leave.
func NewPassMove(leave tilemapping.MachineWord, alph *tilemapping.TileMapping) *Move {
	return &Move{
		action: MoveTypePass,
		leave:  leave,
		alph:   alph,
	}
}

// Alphabet is the alphabet used by this move
func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

func (m *Move) Score() int {
	return m.score
}

// SetScore sets the score of this move. It is calculated outside this package.
func (m *Move) SetScore(s int) {
	m.score = s
}

func (m *Move) Leave() tilemapping.MachineWord {
	return m.leave
}

func (m *Move) SetLeave(leave tilemapping.MachineWord) {
	m.leave = leave
}

func (m *Move) Tiles() tilemapping.MachineWord {
	return m.tiles
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// Equals checks whether two moves are the same play. If
// alsoCheckTransposition is set, a single-row play and the same play in
// the transposed position compare equal.
func (m *Move) Equals(other *Move, alsoCheckTransposition, ignoreLeave bool) bool {
	if m.action != other.action || m.score != other.score ||
		m.tilesPlayed != other.tilesPlayed {
		return false
	}
	if !ignoreLeave && !wordsEqual(m.leave, other.leave) {
		return false
	}
	if !wordsEqual(m.tiles, other.tiles) {
		return false
	}
	if m.rowStart == other.rowStart && m.colStart == other.colStart &&
		m.vertical == other.vertical {
		return true
	}
	return alsoCheckTransposition && m.rowStart == other.colStart &&
		m.colStart == other.rowStart && m.vertical != other.vertical
}

func wordsEqual(a, b tilemapping.MachineWord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// Bad coordinates come back as 0, 0, false; use ParseCoords to tell.
func FromBoardGameCoords(c string) (int, int, bool) {
	row, col, vertical, _ := ParseCoords(c)
	return row, col, vertical
}

// ParseCoords parses a coordinate like 8H (horizontal, row 8 column H) or
// H8 (vertical). Lower-case columns are accepted.
func ParseCoords(c string) (int, int, bool, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ := strconv.Atoi(vMatches[2])
		if row < 1 {
			return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(vMatches[1][0] - 'A'), true, nil
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		if row < 1 {
			return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(hMatches[2][0] - 'A'), false, nil
	}
	return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
}

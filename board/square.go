package board

import (
	"fmt"
	"os"

	"github.com/domino14/lexigrid/tilemapping"
)

var (
	ColorSupport = os.Getenv("LEXIGRID_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

// LetterMultiplier is what a tile newly placed on this square has its
// value multiplied by.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier is what a word covering this square with a newly placed
// tile has its value multiplied by.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

func (b BonusSquare) valid() bool {
	switch b {
	case NoBonus, Bonus2LS, Bonus3LS, Bonus2WS, Bonus3WS:
		return true
	}
	return false
}

// A Square is a single square in a game board. It contains the bonus
// marking, if any, and a letter, if any (0 if empty). Designated blanks
// keep their blank bit.
type Square struct {
	letter tilemapping.MachineLetter
	bonus  BonusSquare
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.letter, string(s.bonus))
}

func (s *Square) Letter() tilemapping.MachineLetter {
	return s.letter
}

func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

func (s *Square) IsEmpty() bool {
	return s.letter == 0
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return "?"
	}
}

func (s Square) DisplayString(alph *tilemapping.TileMapping) string {
	if s.letter == 0 {
		if s.bonus == NoBonus {
			return " "
		}
		return s.bonus.displayString()
	}
	return string(s.letter.UserVisible(alph, false))
}

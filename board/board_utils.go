package board

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/tilemapping"
)

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)

func (g *GameBoard) ToDisplayText(alph *tilemapping.TileMapping) string {
	var str strings.Builder
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString(alph) + " "
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

// SetFromPlaintext sets the board from a plaintext board like the one
// ToDisplayText prints (with colors off). Every row is written between
// bars, with a letter or bonus marker every other character. It returns
// all the tiles on the board.
func (g *GameBoard) SetFromPlaintext(text string,
	alph *tilemapping.TileMapping) ([]tilemapping.MachineLetter, error) {

	result := boardPlaintextRegex.FindAllStringSubmatch(text, -1)
	if len(result) != g.Dim() {
		return nil, fmt.Errorf("plaintext board has %d rows, want %d", len(result), g.Dim())
	}
	g.Clear()
	played := []tilemapping.MachineLetter{}
	for i := range result {
		j := -1
		for _, ch := range result[i][1] {
			j++
			if j%2 != 0 {
				continue
			}
			if j/2 >= g.Dim() {
				break
			}
			if BonusSquare(ch).valid() || ch == tilemapping.ASCIIPlayedThrough {
				continue
			}
			letter, err := alph.Val(ch)
			if err != nil {
				return nil, err
			}
			g.SetLetter(i, j/2, letter)
			played = append(played, letter)
		}
	}
	return played, nil
}

// SetRow sets the row in the board to the passed in letters; spaces and
// dots are empty squares. It returns the tiles it put on the board.
func (g *GameBoard) SetRow(rowNum int, letters string,
	alph *tilemapping.TileMapping) ([]tilemapping.MachineLetter, error) {

	for idx := 0; idx < g.Dim(); idx++ {
		g.SetLetter(rowNum, idx, 0)
	}
	lettersPlayed := []tilemapping.MachineLetter{}
	idx := -1
	for _, r := range letters {
		idx++
		if r == ' ' || r == tilemapping.ASCIIPlayedThrough {
			continue
		}
		if idx >= g.Dim() {
			return nil, fmt.Errorf("row %d is too long", rowNum+1)
		}
		letter, err := alph.Val(r)
		if err != nil {
			return nil, err
		}
		g.SetLetter(rowNum, idx, letter)
		lettersPlayed = append(lettersPlayed, letter)
	}
	return lettersPlayed, nil
}

// Equals checks the boards for equality. Two boards are equal if all
// the squares are equal.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Msgf("Dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	if g.tilesPlayed != g2.tilesPlayed {
		log.Debug().Msgf("Tiles played don't match: %v %v", g.tilesPlayed, g2.tilesPlayed)
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			if g.squares[row][col] != g2.squares[row][col] {
				log.Debug().Msgf("> Not equal, row %v col %v", row, col)
				return false
			}
		}
	}
	return true
}

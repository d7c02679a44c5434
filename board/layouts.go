package board

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const CrosswordGameLayoutName = "CrosswordGame"

var (
	// CrosswordGameLayout is the standard 15x15 layout.
	CrosswordGameLayout = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
)

// Layout is a named board layout, as stored in a yaml file:
//
//	name: Mini
//	rows:
//	  - "=   ="
//	  - ...
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadLayout reads a yaml layout and checks that it makes a square board.
func LoadLayout(r io.Reader) (*Layout, error) {
	l := &Layout{}
	if err := yaml.NewDecoder(r).Decode(l); err != nil {
		return nil, err
	}
	if _, err := MakeBoard(l.Rows); err != nil {
		return nil, err
	}
	return l, nil
}

// NamedLayout returns the built-in layout with this name, or else loads a
// yaml layout from the given path.
func NamedLayout(nameOrPath string) (*Layout, error) {
	if nameOrPath == "" || strings.EqualFold(nameOrPath, CrosswordGameLayoutName) {
		return &Layout{Name: CrosswordGameLayoutName, Rows: CrosswordGameLayout}, nil
	}
	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("board layout %v: %w", nameOrPath, err)
	}
	defer f.Close()
	return LoadLayout(f)
}

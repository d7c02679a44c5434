package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/game"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/placement"
	"github.com/domino14/lexigrid/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func newTestController(t *testing.T) *ShellController {
	ld, err := tilemapping.GreekLetterDistribution(DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	lex := lexicon.NewTrieFromWords("test", []string{"ΤΑΨΙ", "ΤΗΓΑΝΙΑ"}, ld.TileMapping())
	g, err := game.NewGame(DefaultConfig, lex, ld)
	if err != nil {
		t.Fatal(err)
	}
	return newController(DefaultConfig, g, &bytes.Buffer{})
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -players 3",
			&shellcmd{"autoplay", nil, CmdOptions{"players": {"3"}}},
			nil},
		{"gen 5",
			&shellcmd{"gen", []string{"5"}, CmdOptions{}},
			nil},
		{`score 8D "ΤΑ?Ι" Ψ`,
			&shellcmd{"score", []string{"8D", "ΤΑ?Ι", "Ψ"}, CmdOptions{}},
			nil},
		{"autoplay 10 -players",
			nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestGenAndAdd(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	_, err := sc.Execute("gen")
	is.True(err != nil) // no rack yet

	out, err := sc.Execute("rack ΤΗΓΑΝΙΑ")
	is.NoErr(err)
	is.Equal(out, "rack: ΑΑΓΗΙΝΤ")

	out, err = sc.Execute("gen 2")
	is.NoErr(err)
	lines := strings.Split(out, "\n")
	is.Equal(len(lines), 3)
	is.True(strings.HasPrefix(lines[1], "  1: 8B ΤΗΓΑΝΙΑ"))
	is.True(strings.Contains(lines[1], "78"))
	is.True(strings.HasPrefix(lines[2], "  2: 8C ΤΗΓΑΝΙΑ"))

	_, err = sc.Execute("add #3")
	is.True(err != nil)

	out, err = sc.Execute("add #1")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "8B ΤΗΓΑΝΙΑ scores 78"))
	is.True(sc.rack.Empty())
	is.Equal(sc.game.Board().TilesPlayed(), 7)
}

func TestScoreCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	out, err := sc.Execute("score 8D ΤΑ?Ι Ψ")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "8D ΤΑψΙ scores"))
	is.True(sc.game.Board().IsEmpty())

	_, err = sc.Execute("score 8D ΤΑ?Ι")
	is.True(errors.Is(err, tilemapping.ErrMalformedPattern))

	_, err = sc.Execute("score 8D ΤΑΨ")
	is.True(errors.Is(err, placement.ErrInvalidWord))
}

func TestAddRejected(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := sc.Execute("add H5 ΤΑΨΙ")
	is.NoErr(err)
	before := sc.game.Board()

	_, err = sc.Execute("add 6F ΤΗΓΑΝΙΑ")
	is.True(errors.Is(err, placement.ErrOccupiedConflict))
	is.True(sc.game.Board().Equals(before))

	_, err = sc.Execute("add 5H .ΗΓΑΝΙΑ")
	is.NoErr(err)
	is.Equal(sc.game.Board().TilesPlayed(), 10)
}

func TestSetAndNew(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	out, err := sc.Execute("set 8H ΩΩ")
	is.NoErr(err)
	is.True(strings.Contains(out, "Ω Ω"))
	is.Equal(sc.game.Board().TilesPlayed(), 2)

	_, err = sc.Execute("rack ΑΒ")
	is.NoErr(err)
	_, err = sc.Execute("new")
	is.NoErr(err)
	is.True(sc.game.Board().IsEmpty())
	is.True(sc.rack.Empty())
}

func TestRackErrors(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := sc.Execute("rack ΑΒΓΔΕΖΗΘ")
	is.True(err != nil)
	_, err = sc.Execute("rack ΑΒ1")
	is.True(err != nil)
	_, err = sc.Execute("rack αΒ")
	is.True(err != nil)
}

func TestAutoplayCommand(t *testing.T) {
	is := is.New(t)
	g, err := game.NewGameFromConfig(DefaultConfig)
	is.NoErr(err)
	sc := newController(DefaultConfig, g, &bytes.Buffer{})
	out, err := sc.Execute("autoplay 6 -players 2")
	is.NoErr(err)
	is.True(strings.Contains(out, "plays:"))
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	out, err := sc.Execute("help")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "Commands:"))
	out, err = sc.Execute("help score")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "score <coords>"))
	_, err = sc.Execute("help bogus")
	is.True(err != nil)
	_, err = sc.Execute("bogus")
	is.True(err != nil)
	_, err = sc.Execute("exit")
	is.True(errors.Is(err, errQuit))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(newTestController(t))
	matches, n := c.Do([]rune("ge"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("n")})

	matches, _ = c.Do([]rune("autoplay -pl"), 12)
	is.Equal(matches, [][]rune{[]rune("ayers")})
}

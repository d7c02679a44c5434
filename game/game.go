// Package game ties the pieces together: it generates plays on a board,
// scores and ranks them, and commits the ones that get played.
package game

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/movegen"
	"github.com/domino14/lexigrid/placement"
	"github.com/domino14/lexigrid/tilemapping"
)

var ErrRackMismatch = errors.New("play uses tiles that are not on the rack")

// Game holds the one authoritative board. Reads work on snapshots of it;
// plays are committed one at a time.
type Game struct {
	sync.Mutex

	cfg    *config.Config
	board  *board.GameBoard
	lex    *lexicon.Trie
	dist   *tilemapping.LetterDistribution
	scorer *placement.Scorer
	gen    *movegen.Generator
}

// NewGame creates a game with an empty board, using the layout, rack size
// and search threads from cfg.
func NewGame(cfg *config.Config, lex *lexicon.Trie, dist *tilemapping.LetterDistribution) (*Game, error) {
	layout, err := board.NamedLayout(cfg.GetString(config.ConfigBoardLayout))
	if err != nil {
		return nil, err
	}
	b, err := board.MakeBoard(layout.Rows)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:    cfg,
		board:  b,
		lex:    lex,
		dist:   dist,
		scorer: placement.NewScorer(cfg, lex, dist),
		gen:    movegen.NewGenerator(lex, cfg.GetInt(config.ConfigSearchThreads)),
	}, nil
}

// NewGameFromConfig loads the configured lexicon and letter distribution
// and creates a game with them.
func NewGameFromConfig(cfg *config.Config) (*Game, error) {
	dist, err := tilemapping.NamedLetterDistribution(cfg,
		cfg.GetString(config.ConfigDefaultLetterDistribution))
	if err != nil {
		return nil, err
	}
	lex, err := lexicon.Get(cfg, cfg.GetString(config.ConfigDefaultLexicon), dist.TileMapping())
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.NumWords()).
		Str("letter-distribution", dist.Name).Msg("loaded")
	return NewGame(cfg, lex, dist)
}

// Board returns a copy of the board.
func (g *Game) Board() *board.GameBoard {
	g.Lock()
	defer g.Unlock()
	return g.board.Copy()
}

func (g *Game) Alphabet() *tilemapping.TileMapping {
	return g.dist.TileMapping()
}

func (g *Game) Lexicon() *lexicon.Trie {
	return g.lex
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g *Game) Config() *config.Config {
	return g.cfg
}

// RackSize is the number of tiles on a full rack.
func (g *Game) RackSize() int {
	return g.cfg.GetInt(config.ConfigRackSize)
}

// Reset clears the board.
func (g *Game) Reset() {
	g.Lock()
	defer g.Unlock()
	g.board.Clear()
}

// GenerateMoves finds every play for the rack, scores them, and returns
// the best n of them, highest score first. Ties go by position and then
// by tiles. n <= 0 returns them all.
func (g *Game) GenerateMoves(ctx context.Context, rack *tilemapping.Rack, n int) ([]*move.Move, error) {
	b := g.Board()
	plays, err := g.gen.GenAll(ctx, b, rack)
	if err != nil {
		return nil, err
	}
	plays = lo.Filter(plays, func(m *move.Move, _ int) bool {
		res, err := g.scorer.Score(b, m)
		if err != nil {
			// Shouldn't happen: the search checks every word already.
			log.Error().Err(err).Str("play", m.ShortDescription()).Msg("generated-play-did-not-score")
			return false
		}
		m.SetScore(res.Score)
		return true
	})
	slices.SortStableFunc(plays, func(a, b *move.Move) int {
		if c := cmp.Compare(b.Score(), a.Score()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.BoardCoords(), b.BoardCoords()); c != 0 {
			return c
		}
		return cmp.Compare(a.TilesString(), b.TilesString())
	})
	if n > 0 && len(plays) > n {
		plays = plays[:n]
	}
	return plays, nil
}

// ScoreMove scores a play on the current board without playing it.
func (g *Game) ScoreMove(m *move.Move) (*placement.Result, error) {
	g.Lock()
	defer g.Unlock()
	return g.scorer.Score(g.board, m)
}

// PlayMove scores a play and, if it is valid, puts it on the board. The
// move's score is set to the result's.
func (g *Game) PlayMove(m *move.Move) (*placement.Result, error) {
	g.Lock()
	defer g.Unlock()
	res, err := g.scorer.Score(g.board, m)
	if err != nil {
		return nil, err
	}
	if err := placement.Commit(g.board, res); err != nil {
		return nil, err
	}
	m.SetScore(res.Score)
	log.Debug().Str("play", m.ShortDescription()).Int("score", res.Score).Msg("played")
	return res, nil
}

// PlayFromRack is PlayMove for a play that must come off rack. The tiles
// used are taken off the rack.
func (g *Game) PlayFromRack(m *move.Move, rack *tilemapping.Rack) (*placement.Result, error) {
	leave, err := tilemapping.Leave(rack.TilesOn(), m.Tiles())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRackMismatch, err)
	}
	res, err := g.PlayMove(m)
	if err != nil {
		return nil, err
	}
	m.SetLeave(leave)
	rack.Set(leave)
	return res, nil
}

// SetWord puts a word on the board without checking it against the
// lexicon. It is for setting up positions.
func (g *Game) SetWord(coords string, word string) error {
	row, col, vertical, err := move.ParseCoords(coords)
	if err != nil {
		return err
	}
	tiles, err := tilemapping.ToMachineWord(word, g.Alphabet())
	if err != nil {
		return err
	}
	dir := board.Horizontal
	if vertical {
		dir = board.Vertical
	}
	g.Lock()
	defer g.Unlock()
	return g.board.PlaceTiles(row, col, dir, tiles)
}

// ToDisplayText renders the board.
func (g *Game) ToDisplayText() string {
	return g.Board().ToDisplayText(g.Alphabet())
}

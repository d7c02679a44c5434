// Package movegen finds every word that can be played on a board with a
// rack. It walks a trie from the letters already on the board, in both
// directions, using rack tiles to fill gaps.
package movegen

import (
	"context"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/cross_set"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// Generator generates all the plays on a board.
type Generator struct {
	trie      *lexicon.Trie
	validator cross_set.Validator
	threads   int
}

// NewGenerator creates a generator. threads limits how many lines are
// searched at once; 0 or less means GOMAXPROCS.
func NewGenerator(trie *lexicon.Trie, threads int) *Generator {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		trie:      trie,
		validator: cross_set.Validator{Lex: trie},
		threads:   threads,
	}
}

func (gen *Generator) Trie() *lexicon.Trie {
	return gen.trie
}

type lineJob struct {
	idx int
	dir board.Direction
}

// GenAll generates every play for the rack on the board, every row across
// and every column down. Lines are searched in parallel. The returned
// moves are unscored and sorted by position, direction and then word.
//
// On an empty board only the center row is searched, and only plays that
// cover the center square are kept.
func (gen *Generator) GenAll(ctx context.Context, b *board.GameBoard,
	rack *tilemapping.Rack) ([]*move.Move, error) {

	tiles := TilesFromRack(rack)
	jobs := []lineJob{}
	if b.IsEmpty() {
		jobs = append(jobs, lineJob{idx: b.Center(), dir: board.Horizontal})
	} else {
		for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
			for idx := 0; idx < b.Dim(); idx++ {
				jobs = append(jobs, lineJob{idx: idx, dir: dir})
			}
		}
	}

	results := make([][]*move.Move, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(gen.threads)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = gen.genLine(b, job, tiles, rack)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plays := lo.Flatten(results)
	slices.SortStableFunc(plays, comparePlays)
	log.Debug().Int("plays", len(plays)).Int("lines", len(jobs)).
		Str("rack", rack.String()).Msg("generated-plays")
	return plays, nil
}

func (gen *Generator) genLine(b *board.GameBoard, job lineJob, tiles Tiles,
	rack *tilemapping.Rack) []*move.Move {

	line := b.Line(job.idx, job.dir)
	if !b.IsEmpty() && !lo.SomeBy(line, func(ml tilemapping.MachineLetter) bool { return ml != 0 }) {
		// Plays must hook onto tiles already on the line.
		return nil
	}
	cands := QueryLine(line, tiles, gen.trie, gen.validator.LineChecker(b, job.idx, job.dir))
	if b.IsEmpty() {
		center := b.Center()
		cands = lo.Filter(cands, func(c Candidate, _ int) bool {
			return c.Start <= center && center <= c.End()
		})
	}
	rackTiles := rack.TilesOn()
	return lo.Map(cands, func(c Candidate, _ int) *move.Move {
		return CandidateToMove(c, line, job.idx, job.dir, rackTiles, rack.Alphabet())
	})
}

// CandidateToMove turns a candidate on a line into an unscored move. Letters
// that were already on the line become played-through markers.
func CandidateToMove(c Candidate, line []tilemapping.MachineLetter, lineIdx int,
	dir board.Direction, rackTiles tilemapping.MachineWord,
	alph *tilemapping.TileMapping) *move.Move {

	tiles := make(tilemapping.MachineWord, len(c.Word))
	for i, ml := range c.Word {
		if line[c.Start+i] == 0 {
			tiles[i] = ml
		}
	}
	leave, err := tilemapping.Leave(rackTiles, tiles)
	if err != nil {
		// The search only uses tiles from the rack.
		log.Error().Err(err).Msg("candidate-uses-tiles-not-on-rack")
	}
	row, col := board.Pos(dir, lineIdx, c.Start)
	return move.NewScoringMove(0, tiles, leave, dir == board.Vertical, alph, row, col)
}

func comparePlays(a, b *move.Move) int {
	ar, ac, av := a.CoordsAndVertical()
	br, bc, bv := b.CoordsAndVertical()
	if ar != br {
		return ar - br
	}
	if ac != bc {
		return ac - bc
	}
	if av != bv {
		if !av {
			return -1
		}
		return 1
	}
	return slices.Compare(a.Tiles(), b.Tiles())
}

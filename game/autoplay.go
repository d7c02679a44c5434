package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/lexigrid/move"
)

// A Turn is one turn of an autoplayed game.
type Turn struct {
	Player int
	Rack   string
	Play   *move.Move
	Bingo  bool
}

// AutoplayResult is the record of an autoplayed game.
type AutoplayResult struct {
	Players []*Player
	Turns   []Turn
}

// Autoplay plays a game on a cleared board between numPlayers players
// who always make the highest-scoring play. The game ends when a player
// uses up their tiles with the bag empty, when every player passes in a
// row, or after maxTurns turns if maxTurns > 0.
func (g *Game) Autoplay(ctx context.Context, numPlayers int, maxTurns int) (*AutoplayResult, error) {
	if numPlayers < 1 {
		return nil, fmt.Errorf("need at least one player, got %d", numPlayers)
	}
	g.Reset()
	bag := g.dist.MakeBag()
	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = newPlayer(fmt.Sprintf("p%d", i+1), g.Alphabet(), g.RackSize())
		players[i].refill(bag)
	}
	res := &AutoplayResult{Players: players}

	passes := 0
	for onturn := 0; maxTurns <= 0 || len(res.Turns) < maxTurns; onturn = (onturn + 1) % numPlayers {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := players[onturn]
		turn := Turn{Player: onturn, Rack: p.rack.String()}
		plays, err := g.GenerateMoves(ctx, p.rack, 1)
		if err != nil {
			return res, err
		}
		p.turns++
		if len(plays) == 0 {
			turn.Play = move.NewPassMove(p.rack.TilesOn(), g.Alphabet())
			res.Turns = append(res.Turns, turn)
			passes++
			log.Debug().Str("player", p.Nickname).Str("rack", turn.Rack).Msg("pass")
			if passes == numPlayers {
				break
			}
			continue
		}
		passes = 0
		best := plays[0]
		placed, err := g.PlayFromRack(best, p.rack)
		if err != nil {
			return res, err
		}
		p.points += placed.Score
		if placed.Bingo {
			p.bingos++
			turn.Bingo = true
		}
		turn.Play = best
		res.Turns = append(res.Turns, turn)
		p.refill(bag)
		log.Debug().Str("player", p.Nickname).Str("rack", turn.Rack).
			Str("play", best.ShortDescription()).Int("score", best.Score()).
			Int("bag", bag.TilesRemaining()).Msg("autoplay-turn")
		if p.rack.Empty() && bag.TilesRemaining() == 0 {
			break
		}
	}
	return res, nil
}

// Scores returns the score of every play made, in order. Passes are left
// out.
func (r *AutoplayResult) Scores() []float64 {
	turns := lo.Filter(r.Turns, func(t Turn, _ int) bool {
		return t.Play.Action() == move.MoveTypePlay
	})
	return lo.Map(turns, func(t Turn, _ int) float64 {
		return float64(t.Play.Score())
	})
}

// AutoplayStats sums up the plays of an autoplayed game.
type AutoplayStats struct {
	Plays  int
	Passes int
	Bingos int
	Mean   float64
	StdDev float64
	Max    int
}

// Stats works out the AutoplayStats for the game.
func (r *AutoplayResult) Stats() AutoplayStats {
	scores := r.Scores()
	st := AutoplayStats{
		Plays:  len(scores),
		Passes: len(r.Turns) - len(scores),
		Bingos: lo.CountBy(r.Turns, func(t Turn) bool { return t.Bingo }),
	}
	if len(scores) == 0 {
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(scores, nil)
	if len(scores) == 1 {
		// MeanStdDev gives NaN for a single sample.
		st.StdDev = 0
	}
	st.Max = int(lo.Max(scores))
	return st
}

// String shows the final standings.
func (r *AutoplayResult) String() string {
	var sb strings.Builder
	for i, p := range r.Players {
		fmt.Fprintf(&sb, "%v\n", p.stateString(len(r.Turns) > 0 && r.Turns[len(r.Turns)-1].Player == i))
	}
	st := r.Stats()
	fmt.Fprintf(&sb, "plays: %d  passes: %d  bingos: %d  mean: %.2f  stddev: %.2f  max: %d\n",
		st.Plays, st.Passes, st.Bingos, st.Mean, st.StdDev, st.Max)
	return sb.String()
}

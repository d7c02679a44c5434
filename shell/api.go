package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/placement"
	"github.com/domino14/lexigrid/tilemapping"
)

const defaultNumPlays = 15

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func moveTableHeader() string {
	return "     Move                Leave  Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-20s%-7s%-6d", idx+1,
		m.ShortDescription(), m.LeaveString(), m.Score())
}

func (sc *ShellController) showBoard(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("rack: " + sc.rack.String()), nil
	}
	letters := strings.Join(cmd.args, "")
	mls, err := tilemapping.ToMachineLetters(letters, sc.game.Alphabet())
	if err != nil {
		return nil, err
	}
	if len(mls) > sc.game.RackSize() {
		return nil, fmt.Errorf("rack has %d tiles; the most is %d", len(mls), sc.game.RackSize())
	}
	for _, ml := range mls {
		if ml.IsBlanked() {
			return nil, errors.New("use ? for a blank on a rack")
		}
	}
	sc.rack.Set(mls)
	sc.curPlayList = nil
	return msg("rack: " + sc.rack.String()), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	numPlays := defaultNumPlays
	if len(cmd.args) > 0 {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	if sc.rack.Empty() {
		return nil, errors.New("please set a rack first with the `rack` command")
	}
	plays, err := sc.game.GenerateMoves(context.Background(), sc.rack, numPlays)
	if err != nil {
		return nil, err
	}
	sc.curPlayList = plays
	if len(plays) == 0 {
		return msg("no plays found"), nil
	}
	var sb strings.Builder
	sb.WriteString(moveTableHeader())
	for i, p := range plays {
		sb.WriteString("\n")
		sb.WriteString(MoveTableRow(i, p))
	}
	return msg(sb.String()), nil
}

// placementMove builds a play from <coords> <word> [substitutions]. Any
// wildcards in the word are filled in from the substitutions.
func (sc *ShellController) placementMove(args []string) (*move.Move, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errors.New("need coordinates and a word, and optionally the letters blanks stand for")
	}
	row, col, vertical, err := move.ParseCoords(args[0])
	if err != nil {
		return nil, err
	}
	subs := ""
	if len(args) == 3 {
		subs = args[2]
	}
	tiles, err := tilemapping.ParsePattern(args[1], subs, sc.game.Alphabet())
	if err != nil {
		return nil, err
	}
	return move.NewScoringMove(0, tiles, nil, vertical, sc.game.Alphabet(), row, col), nil
}

func scoredWordsMessage(m *move.Move, res *placement.Result, alph *tilemapping.TileMapping) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v scores %d", m.ShortDescription(), res.Score)
	for _, w := range res.Words {
		fmt.Fprintf(&sb, "\n  %-15s %d", w.Word.UserVisible(alph), w.Score)
	}
	if res.Bingo {
		sb.WriteString("\n  + bingo bonus")
	}
	return sb.String()
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	m, err := sc.placementMove(cmd.args)
	if err != nil {
		return nil, err
	}
	res, err := sc.game.ScoreMove(m)
	if err != nil {
		return nil, fmt.Errorf("placement rejected: %w", err)
	}
	return msg(scoredWordsMessage(m, res, sc.game.Alphabet())), nil
}

func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	var m *move.Move
	if len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#") {
		playID, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		idx := playID - 1 // since playID starts from 1
		if idx < 0 || idx > len(sc.curPlayList)-1 {
			return nil, errors.New("play outside range")
		}
		m = sc.curPlayList[idx]
	} else {
		var err error
		m, err = sc.placementMove(cmd.args)
		if err != nil {
			return nil, err
		}
	}
	var res *placement.Result
	var err error
	if sc.rack.Empty() {
		res, err = sc.game.PlayMove(m)
	} else {
		res, err = sc.game.PlayFromRack(m, sc.rack)
	}
	if err != nil {
		return nil, fmt.Errorf("placement rejected: %w", err)
	}
	sc.curPlayList = nil
	log.Debug().Str("play", m.ShortDescription()).Int("score", res.Score).Msg("added")
	return msg(scoredWordsMessage(m, res, sc.game.Alphabet()) + "\n" + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("need coordinates and a word")
	}
	if err := sc.game.SetWord(cmd.args[0], cmd.args[1]); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game.Reset()
	sc.rack.Clear()
	sc.curPlayList = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	players, err := cmd.options.IntDefault("players", 2)
	if err != nil {
		return nil, err
	}
	turns, err := cmd.options.IntDefault("turns", 0)
	if err != nil {
		return nil, err
	}
	if len(cmd.args) > 0 {
		turns, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	bins, err := cmd.options.IntDefault("bins", 10)
	if err != nil {
		return nil, err
	}
	res, err := sc.game.Autoplay(context.Background(), players, turns)
	if err != nil {
		return nil, err
	}
	sc.rack.Clear()
	sc.curPlayList = nil

	var sb strings.Builder
	sb.WriteString(sc.game.ToDisplayText())
	sb.WriteString("\n")
	sb.WriteString(res.String())
	if scores := res.Scores(); len(scores) > 1 {
		sb.WriteString("play scores:\n")
		if err := histogram.Fprint(&sb, histogram.Hist(bins, scores), histogram.Linear(40)); err != nil {
			return nil, err
		}
	}
	return msg(sb.String()), nil
}

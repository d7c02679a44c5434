package game

import (
	"fmt"

	"github.com/domino14/lexigrid/tilemapping"
)

// A Player is one seat in an autoplayed game.
type Player struct {
	Nickname string

	rack   *tilemapping.Rack
	points int
	bingos int
	turns  int

	// to minimize allocs:
	placeholderRack []tilemapping.MachineLetter
}

func newPlayer(nickname string, alph *tilemapping.TileMapping, rackSize int) *Player {
	return &Player{
		Nickname:        nickname,
		rack:            tilemapping.NewRack(alph),
		placeholderRack: make([]tilemapping.MachineLetter, rackSize),
	}
}

func (p *Player) Points() int {
	return p.points
}

func (p *Player) Bingos() int {
	return p.bingos
}

func (p *Player) Turns() int {
	return p.turns
}

func (p *Player) Rack() *tilemapping.Rack {
	return p.rack
}

// refill draws tiles from the bag until the rack is full or the bag is
// empty.
func (p *Player) refill(bag *tilemapping.Bag) {
	need := len(p.placeholderRack) - int(p.rack.NumTiles())
	if need <= 0 {
		return
	}
	drew := bag.DrawAtMost(need, p.placeholderRack)
	for _, ml := range p.placeholderRack[:drew] {
		p.rack.Add(ml)
	}
}

func (p *Player) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Nickname, p.rack.String(), p.points)
}

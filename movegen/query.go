package movegen

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/tilemapping"
)

// A Candidate is a word that fits on a line: it starts at offset Start and
// holds both the letters already on the line and the new tiles. New blanks
// are designated blanks.
type Candidate struct {
	Start     int
	Word      tilemapping.MachineWord
	NumPlaced int
}

// End is the offset of the last letter of the word.
func (c Candidate) End() int {
	return c.Start + len(c.Word) - 1
}

// Realized returns the word as plain letters, blanks standing for theirs.
func (c Candidate) Realized() tilemapping.MachineWord {
	return c.Word.Unblanked()
}

// Key identifies a candidate by its start and realized word.
func (c Candidate) Key() string {
	return strconv.Itoa(c.Start) + ":" + c.Realized().Key()
}

// CheckFunc decides whether a new tile may go at an offset of the line.
// It is how words made across the line get checked.
type CheckFunc func(offset int, ml tilemapping.MachineLetter) bool

type lineQuery struct {
	line  []tilemapping.MachineLetter
	trie  *lexicon.Trie
	check CheckFunc
	buf   tilemapping.MachineWord
	found []Candidate
}

// QueryLine finds every word in the trie that fits on the line using the
// letters on it and tiles from the rack. Every candidate uses at least one
// tile, is at least two letters long, and has no letter right before or
// after it on the line. Each new tile must pass check; a nil check allows
// anything.
//
// Each maximal run of letters on the line is anchored at its last letter.
// For every trie node holding that letter, the search first walks up to the
// root, matching letters before the anchor; then it walks down the trie to
// extend the word past the anchor. A line with no letters at all is
// searched from the root at every offset.
func QueryLine(line []tilemapping.MachineLetter, rack Tiles, trie *lexicon.Trie,
	check CheckFunc) []Candidate {

	if check == nil {
		check = func(int, tilemapping.MachineLetter) bool { return true }
	}
	q := &lineQuery{
		line:  line,
		trie:  trie,
		check: check,
		buf:   make(tilemapping.MachineWord, len(line)),
	}
	anchors := runEnds(line)
	if len(anchors) == 0 {
		for start := range line {
			q.down(lexicon.RootNode, start, start-1, rack, 0)
		}
	}
	for _, anchor := range anchors {
		q.buf[anchor] = line[anchor]
		for _, node := range trie.NodesWithLetter(line[anchor]) {
			depth := trie.Depth(node)
			if depth > anchor+1 {
				// The word would start before the line does.
				continue
			}
			remaining, used, ok := q.up(node, anchor, rack)
			if !ok {
				continue
			}
			q.down(node, anchor-depth+1, anchor, remaining, used)
		}
	}
	return lo.UniqBy(q.found, func(c Candidate) string { return c.Key() })
}

// runEnds returns the offsets of the last letter of each run of letters.
func runEnds(line []tilemapping.MachineLetter) []int {
	ends := []int{}
	for i, ml := range line {
		if ml != 0 && (i == len(line)-1 || line[i+1] == 0) {
			ends = append(ends, i)
		}
	}
	return ends
}

// up walks from node, which sits at offset pos, to the root. It fills
// q.buf with the word's letters before pos. It returns the tiles left
// and how many were used.
func (q *lineQuery) up(node int32, pos int, rack Tiles) (Tiles, int, bool) {
	used := 0
	for {
		parent := q.trie.Parent(node)
		pos--
		if parent == lexicon.RootNode {
			// pos is now just before the word.
			if pos >= 0 && q.line[pos] != 0 {
				return rack, 0, false
			}
			return rack, used, true
		}
		letter := q.trie.Letter(parent)
		if q.line[pos] != 0 {
			if q.line[pos].Unblank() != letter {
				return rack, 0, false
			}
			q.buf[pos] = q.line[pos]
		} else {
			tile, ok := rack.take(letter)
			if !ok || !q.check(pos, tile) {
				return rack, 0, false
			}
			q.buf[pos] = tile
			used++
		}
		node = parent
	}
}

// down extends the word that starts at start and ends at end (the offset
// of node's letter) along the trie's edges.
func (q *lineQuery) down(node int32, start, end int, rack Tiles, used int) {
	next := end + 1
	if used > 0 && q.trie.Terminal(node) && end-start+1 >= 2 &&
		(next == len(q.line) || q.line[next] == 0) {
		word := make(tilemapping.MachineWord, end-start+1)
		copy(word, q.buf[start:end+1])
		q.found = append(q.found, Candidate{Start: start, Word: word, NumPlaced: used})
	}
	if next == len(q.line) {
		return
	}
	if q.line[next] != 0 {
		child := q.trie.Child(node, q.line[next].Unblank())
		if child < 0 {
			return
		}
		q.buf[next] = q.line[next]
		q.down(child, start, next, rack, used)
		return
	}
	for _, child := range q.trie.Children(node) {
		branch := rack
		tile, ok := branch.take(q.trie.Letter(child))
		if !ok || !q.check(next, tile) {
			continue
		}
		q.buf[next] = tile
		q.down(child, start, next, branch, used+1)
	}
}

package lexicon

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/tilemapping"
)

// RootNode is the index of the trie's root. The root holds no letter.
const RootNode int32 = 0

type trieNode struct {
	parent   int32
	letter   tilemapping.MachineLetter
	depth    uint8
	terminal bool
	// children are kept in letter order; a node has at most one child
	// per letter.
	children []int32
}

// A Trie is a prefix tree of words, stored as an arena of nodes addressed
// by index. Each node knows its parent, so the tree can be walked towards
// the root as well as away from it. A letter index lists, for each letter,
// every node that holds it, so searches can start from any word position.
//
// A Trie is built once and is safe for concurrent reads afterwards.
type Trie struct {
	name        string
	alph        *tilemapping.TileMapping
	nodes       []trieNode
	letterIndex [][]int32
	numWords    int
}

// NewTrie creates an empty trie for words in the given alphabet.
func NewTrie(name string, alph *tilemapping.TileMapping) *Trie {
	return &Trie{
		name:        name,
		alph:        alph,
		nodes:       []trieNode{{parent: -1}},
		letterIndex: make([][]int32, int(alph.NumLetters())+1),
	}
}

// NewTrieFromWords creates a trie holding all the given user-visible words.
// Words that can't be represented in the alphabet are skipped.
func NewTrieFromWords(name string, words []string, alph *tilemapping.TileMapping) *Trie {
	t := NewTrie(name, alph)
	skipped := 0
	for _, w := range words {
		mw, err := tilemapping.ToMachineWord(w, alph)
		if err != nil || !t.Add(mw) {
			skipped++
			continue
		}
	}
	log.Debug().Str("lexicon", name).Int("words", t.numWords).
		Int("nodes", len(t.nodes)).Int("skipped", skipped).Msg("built-trie")
	return t
}

// Add inserts a word. Designated blanks are stored as the letters they
// stand for. Adding a word twice is harmless. It returns false, and adds
// nothing, if the word is empty or has a blank in it.
func (t *Trie) Add(word Word) bool {
	if len(word) == 0 || len(word) > 255 {
		return false
	}
	for _, ml := range word {
		u := ml.Unblank()
		if u == 0 || int(u) >= len(t.letterIndex) {
			return false
		}
	}
	cur := RootNode
	for _, ml := range word {
		ml = ml.Unblank()
		next := t.Child(cur, ml)
		if next < 0 {
			next = t.addChild(cur, ml)
		}
		cur = next
	}
	if !t.nodes[cur].terminal {
		t.nodes[cur].terminal = true
		t.numWords++
	}
	return true
}

func (t *Trie) addChild(parent int32, ml tilemapping.MachineLetter) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, trieNode{
		parent: parent,
		letter: ml,
		depth:  t.nodes[parent].depth + 1,
	})
	// Insert in letter order.
	ch := t.nodes[parent].children
	pos := len(ch)
	for i, c := range ch {
		if t.nodes[c].letter > ml {
			pos = i
			break
		}
	}
	ch = append(ch, 0)
	copy(ch[pos+1:], ch[pos:])
	ch[pos] = idx
	t.nodes[parent].children = ch
	t.letterIndex[ml] = append(t.letterIndex[ml], idx)
	return idx
}

func (t *Trie) node(idx int32) *trieNode {
	if idx < 0 || int(idx) >= len(t.nodes) {
		panic(fmt.Sprintf("trie node %d out of range (%d nodes)", idx, len(t.nodes)))
	}
	return &t.nodes[idx]
}

// NodesWithLetter returns every node holding the given letter. The
// returned slice must not be modified.
func (t *Trie) NodesWithLetter(ml tilemapping.MachineLetter) []int32 {
	ml = ml.Unblank()
	if ml == 0 || int(ml) >= len(t.letterIndex) {
		return nil
	}
	return t.letterIndex[ml]
}

// Child returns the child of node idx along letter ml, or -1.
func (t *Trie) Child(idx int32, ml tilemapping.MachineLetter) int32 {
	for _, c := range t.node(idx).children {
		l := t.nodes[c].letter
		if l == ml {
			return c
		}
		if l > ml {
			break
		}
	}
	return -1
}

// Children returns the children of node idx in letter order. The returned
// slice must not be modified.
func (t *Trie) Children(idx int32) []int32 {
	return t.node(idx).children
}

func (t *Trie) Letter(idx int32) tilemapping.MachineLetter {
	return t.node(idx).letter
}

// Depth is the distance of the node from the root; it is also the length
// of the prefix the node ends.
func (t *Trie) Depth(idx int32) int {
	return int(t.node(idx).depth)
}

func (t *Trie) Terminal(idx int32) bool {
	return t.node(idx).terminal
}

// Parent returns the parent of node idx, or -1 for the root.
func (t *Trie) Parent(idx int32) int32 {
	return t.node(idx).parent
}

// Prefix returns the letters from the root down to node idx.
func (t *Trie) Prefix(idx int32) Word {
	w := make(Word, t.Depth(idx))
	for i := len(w) - 1; i >= 0; i-- {
		w[i] = t.nodes[idx].letter
		idx = t.nodes[idx].parent
	}
	return w
}

// HasWord returns true if the word is in the trie.
func (t *Trie) HasWord(word Word) bool {
	if len(word) == 0 {
		return false
	}
	cur := RootNode
	for _, ml := range word {
		cur = t.Child(cur, ml.Unblank())
		if cur < 0 {
			return false
		}
	}
	return t.nodes[cur].terminal
}

// IsWord is HasWord for a user-visible word.
func (t *Trie) IsWord(word string) bool {
	mw, err := tilemapping.ToMachineWord(word, t.alph)
	if err != nil {
		return false
	}
	return t.HasWord(mw)
}

// Words returns every word in the trie, in letter order.
func (t *Trie) Words() []Word {
	words := make([]Word, 0, t.numWords)
	var walk func(idx int32)
	walk = func(idx int32) {
		if t.nodes[idx].terminal {
			words = append(words, t.Prefix(idx))
		}
		for _, c := range t.nodes[idx].children {
			walk(c)
		}
	}
	walk(RootNode)
	return words
}

func (t *Trie) Name() string {
	return t.name
}

func (t *Trie) GetAlphabet() *tilemapping.TileMapping {
	return t.alph
}

func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

func (t *Trie) NumWords() int {
	return t.numWords
}

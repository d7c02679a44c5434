package lexicon

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lexigrid/tilemapping"
)

func mw(t *testing.T, s string, alph *tilemapping.TileMapping) Word {
	w, err := tilemapping.ToMachineWord(s, alph)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestTrieAdd(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΑΨΙ", "ΤΗΓΑΝΙΑ", "ΤΑ"}, alph)

	is.Equal(trie.NumWords(), 3)
	// root + Τ Α Ψ Ι + Η Γ Α Ν Ι Α
	is.Equal(trie.NumNodes(), 11)
	is.True(trie.IsWord("ΤΑΨΙ"))
	is.True(trie.IsWord("ΤΑ"))
	is.True(trie.IsWord("ΤΗΓΑΝΙΑ"))
	is.True(!trie.IsWord("ΤΑΨ"))
	is.True(!trie.IsWord("Τ"))
	is.True(!trie.IsWord("ΑΤ"))
	is.True(!trie.IsWord(""))
	is.True(!trie.IsWord("QQ"))
}

func TestTrieAddIdempotent(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΑΨΙ"}, alph)
	nodes := trie.NumNodes()
	is.True(trie.Add(mw(t, "ΤΑΨΙ", alph)))
	is.Equal(trie.NumNodes(), nodes)
	is.Equal(trie.NumWords(), 1)
	is.Equal(len(trie.NodesWithLetter(1)), 1)
}

func TestTrieAddRejectsBlank(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrie("test", alph)
	is.True(!trie.Add(mw(t, "Τ?", alph)))
	is.True(!trie.Add(Word{}))
	is.Equal(trie.NumNodes(), 1)
}

func TestTrieHasWordBlanked(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΑΨΙ"}, alph)
	is.True(trie.HasWord(mw(t, "ΤαΨι", alph)))
}

func TestNodesWithLetter(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΑΨΙ", "ΤΗΓΑΝΙΑ"}, alph)
	alpha, _ := alph.Val('Α')
	nodes := trie.NodesWithLetter(alpha)
	// ΤΑ, ΤΗΓΑ and ΤΗΓΑΝΙΑ
	is.Equal(len(nodes), 3)
	depths := []int{}
	for _, n := range nodes {
		is.Equal(trie.Letter(n), alpha)
		depths = append(depths, trie.Depth(n))
	}
	is.Equal(depths, []int{2, 4, 7})
	is.True(trie.Terminal(nodes[2]))
	is.Equal(trie.Prefix(nodes[1]).UserVisible(alph), "ΤΗΓΑ")

	omega, _ := alph.Val('Ω')
	is.Equal(len(trie.NodesWithLetter(omega)), 0)
	is.Equal(len(trie.NodesWithLetter(0)), 0)
}

func TestParentWalk(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΑΨΙ"}, alph)
	last, _ := alph.Val('Ι')
	n := trie.NodesWithLetter(last)[0]
	letters := []rune{}
	for n != RootNode {
		letters = append([]rune{alph.Letter(trie.Letter(n))}, letters...)
		n = trie.Parent(n)
	}
	is.Equal(string(letters), "ΤΑΨΙ")
	is.Equal(trie.Parent(RootNode), int32(-1))
}

func TestChildrenSorted(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΩΣ", "ΑΣ", "ΜΑ"}, alph)
	ch := trie.Children(RootNode)
	is.Equal(len(ch), 3)
	got := ""
	for _, c := range ch {
		got += string(alph.Letter(trie.Letter(c)))
	}
	is.Equal(got, "ΑΜΩ")
	omega, _ := alph.Val('Ω')
	is.Equal(trie.Child(RootNode, omega), ch[2])
	beta, _ := alph.Val('Β')
	is.Equal(trie.Child(RootNode, beta), int32(-1))
}

func TestWords(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.GreekAlphabet()
	trie := NewTrieFromWords("test", []string{"ΤΗΓΑΝΙΑ", "ΤΑΨΙ", "ΤΑ"}, alph)
	words := []string{}
	for _, w := range trie.Words() {
		words = append(words, w.UserVisible(alph))
	}
	is.Equal(words, []string{"ΤΑ", "ΤΑΨΙ", "ΤΗΓΑΝΙΑ"})
}

func TestAcceptAll(t *testing.T) {
	is := is.New(t)
	var lex Lexicon = AcceptAll{Alph: tilemapping.GreekAlphabet()}
	is.True(lex.HasWord(Word{1, 2, 3}))
	is.Equal(lex.Name(), "AcceptAll")
}

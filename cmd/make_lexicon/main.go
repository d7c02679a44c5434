package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/tilemapping"
)

// make_lexicon normalizes a word list and writes it out as a utf-8 text
// list or a SQLite database, ready to be put in the lexicon path.
func main() {
	filename := flag.String("filename", "", "filename of the word list")
	encoding := flag.String("encoding", lexicon.EncodingUTF8, "encoding of the word list (utf-8 or iso-8859-7)")
	out := flag.String("out", "", "output file; a .db extension writes SQLite, anything else text")
	alphabet := flag.String("alphabet", "greek", "greek or english; words with other letters are dropped")
	flag.Parse()

	if *filename == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*filename, *encoding, *out, *alphabet); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func run(filename, encoding, out, alphabet string) error {
	var alph *tilemapping.TileMapping
	switch alphabet {
	case "greek":
		alph = tilemapping.GreekAlphabet()
	case "english":
		alph = tilemapping.EnglishAlphabet()
	default:
		return fmt.Errorf("unsupported alphabet %v", alphabet)
	}
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	words, err := lexicon.ReadWordList(f, encoding)
	if err != nil {
		return err
	}
	// Keep only the words the trie would take, deduplicated and sorted.
	name := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	trie := lexicon.NewTrieFromWords(name, words, alph)
	kept := make([]string, 0, trie.NumWords())
	for _, w := range trie.Words() {
		kept = append(kept, w.UserVisible(alph))
	}
	slices.Sort(kept)
	log.Info().Int("read", len(words)).Int("kept", len(kept)).Str("out", out).Msg("writing-lexicon")

	if filepath.Ext(out) == ".db" {
		return lexicon.SaveToSQLite(context.Background(), out, kept)
	}
	return os.WriteFile(out, []byte(strings.Join(kept, "\n")+"\n"), 0o644)
}

package lexicon

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/domino14/lexigrid/cache"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/tilemapping"
)

//go:embed data/*.txt
var builtinLexica embed.FS

const (
	CacheKeyPrefix = "lexicon:"

	EncodingUTF8     = "utf-8"
	EncodingISO88597 = "iso-8859-7"
)

// NormalizeWord strips diacritics (tonos, dialytika) and upper-cases the
// word with Greek case rules.
func NormalizeWord(word string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, strings.TrimSpace(word))
	if err != nil {
		return "", err
	}
	return cases.Upper(language.Greek).String(s), nil
}

// ReadWordList reads one word per line. Blank lines and lines starting
// with # are ignored. Words are normalized with NormalizeWord.
func ReadWordList(r io.Reader, encoding string) ([]string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
	case EncodingISO88597, "greek":
		r = transform.NewReader(r, charmap.ISO8859_7.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported word list encoding: %v", encoding)
	}
	scanner := bufio.NewScanner(r)
	words := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Only the first field counts; some lists carry definitions.
		if fields := strings.Fields(line); len(fields) > 1 {
			line = fields[0]
		}
		w, err := NormalizeWord(line)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadTextLexicon builds a trie from a plain-text word list.
func LoadTextLexicon(r io.Reader, name string, alph *tilemapping.TileMapping,
	encoding string) (*Trie, error) {

	words, err := ReadWordList(r, encoding)
	if err != nil {
		return nil, err
	}
	return NewTrieFromWords(name, words, alph), nil
}

// LoadFromSQLite builds a trie from the `word` column of the `words` table
// of a SQLite database.
func LoadFromSQLite(ctx context.Context, dsn string, name string,
	alph *tilemapping.TileMapping) (*Trie, error) {

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT word FROM words")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		nw, err := NormalizeWord(w)
		if err != nil {
			return nil, err
		}
		words = append(words, nw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewTrieFromWords(name, words, alph), nil
}

// SaveToSQLite writes words into the `words` table of a SQLite database,
// creating the table if needed.
func SaveToSQLite(ctx context.Context, dsn string, words []string) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY NOT NULL)`); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word) VALUES (?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Fingerprint returns a hash of a word list's contents.
func Fingerprint(contents []byte) uint64 {
	return xxhash.Sum64(contents)
}

func cacheKey(name string, contents []byte) string {
	return fmt.Sprintf("%s%s:%016x", CacheKeyPrefix, name, Fingerprint(contents))
}

// Get loads the named lexicon, looking in the configured lexicon path for
// <name>.db (SQLite) and then <name>.txt, and finally at the built-in word
// lists. Loaded tries are cached by name and content fingerprint, so an
// edited file is loaded afresh.
func Get(cfg *config.Config, name string, alph *tilemapping.TileMapping) (*Trie, error) {
	name = strings.ToLower(name)
	dir := cfg.GetString(config.ConfigLexiconPath)

	dbPath := filepath.Join(dir, name+".db")
	if contents, err := os.ReadFile(dbPath); err == nil {
		obj, err := cache.Load(cfg, cacheKey(name, contents),
			func(cfg *config.Config, key string) (any, error) {
				log.Debug().Str("path", dbPath).Msg("loading lexicon from sqlite")
				return LoadFromSQLite(context.Background(), dbPath, name, alph)
			})
		if err != nil {
			return nil, err
		}
		return obj.(*Trie), nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	contents, err := os.ReadFile(filepath.Join(dir, name+".txt"))
	if errors.Is(err, os.ErrNotExist) {
		contents, err = builtinLexica.ReadFile("data/" + name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("lexicon %v not found", name)
		}
		// Built-in lists are always utf-8.
		return loadCachedText(cfg, name, contents, alph, EncodingUTF8)
	}
	if err != nil {
		return nil, err
	}
	return loadCachedText(cfg, name, contents, alph, cfg.GetString(config.ConfigLexiconEncoding))
}

func loadCachedText(cfg *config.Config, name string, contents []byte,
	alph *tilemapping.TileMapping, encoding string) (*Trie, error) {

	obj, err := cache.Load(cfg, cacheKey(name, contents),
		func(cfg *config.Config, key string) (any, error) {
			log.Debug().Str("lexicon", name).Str("encoding", encoding).Msg("loading lexicon from text")
			return LoadTextLexicon(bytes.NewReader(contents), name, alph, encoding)
		})
	if err != nil {
		return nil, err
	}
	return obj.(*Trie), nil
}

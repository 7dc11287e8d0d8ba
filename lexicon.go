package vietnamese

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// WordReader yields dictionary words one by one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (string, error)
}

// Lexicon is a dictionary of Vietnamese words. It is immutable once loaded.
type Lexicon struct {
	words      *trie.Trie // lower case words
	substrings *trie.Trie // every suffix of every word, for substring queries
	size       int
	Identifier string // identifies the lexicon
}

// LoadLexicon reads a lexicon from a streaming, format-agnostic source.
// Package wordlist reads plain word lists. Words are stored lower case.
func LoadLexicon(name string, reader WordReader) (*Lexicon, error) {
	lx := &Lexicon{
		words:      trie.New(),
		substrings: trie.New(),
		Identifier: fmt.Sprintf("lexicon: %s", name),
	}
	for {
		word, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("%s: %v", lx.Identifier, err)
			return nil, err
		}
		word = strings.ToLower(compose(word))
		if _, found := lx.words.Find(word); found || word == "" {
			continue
		}
		lx.words.Add(word, nil)
		lx.size++
		for i := range word { // i runs over rune starts
			lx.substrings.Add(word[i:], nil)
		}
	}
	tracer().Infof("%s: %d words", lx.Identifier, lx.size)
	return lx, nil
}

// Len returns the number of distinct words.
func (lx *Lexicon) Len() int {
	return lx.size
}

// Has reports whether word is in the lexicon, ignoring case.
func (lx *Lexicon) Has(word string) bool {
	_, found := lx.words.Find(strings.ToLower(compose(word)))
	return found
}

// Contains reports whether s occurs anywhere inside a word of the lexicon,
// ignoring case. Every word contains the empty string.
//
// "gh" is contained in "ghế" without being a word itself.
func (lx *Lexicon) Contains(s string) bool {
	if s == "" {
		return true
	}
	return lx.substrings.HasKeysWithPrefix(strings.ToLower(compose(s)))
}

// Scan splits text into words and returns those which are not contained in
// the lexicon (wantIncorrect) or those which are (!wantIncorrect). Only
// Latin letters and Vietnamese letters count as parts of words, everything
// else is dropped. Every word is reported once, in order of first
// appearance. Containment is tested as with Contains.
func (lx *Lexicon) Scan(text string, wantIncorrect bool) []string {
	tokens := scanTokens(text)
	found := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if lx.Contains(token) != wantIncorrect {
			found = append(found, token)
		}
	}
	return found
}

func scanTokens(text string) []string {
	p := tables()
	keep := func(r rune) bool {
		if r == ' ' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
		_, ok := p.glyphs[r]
		return ok
	}
	spaces := runes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	})
	drop := runes.Remove(runes.Predicate(func(r rune) bool { return !keep(r) }))
	cleaned, _, err := transform.String(transform.Chain(spaces, drop), compose(text))
	assert(err == nil, "rune filter cannot fail")
	var tokens []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(cleaned) {
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ScanWords reports the words of text missing from the default lexicon
// (wantIncorrect) or present in it (!wantIncorrect). See Lexicon.Scan.
//
//	ScanWords("Xứ Wales thắng Nga", true) => ["Wales"]
func ScanWords(text string, wantIncorrect bool) []string {
	return defaultLexicon().Scan(text, wantIncorrect)
}

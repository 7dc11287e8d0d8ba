package vietnamese

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/npillmayer/vietnamese/data"
	"github.com/npillmayer/vietnamese/ruleset"
	"github.com/npillmayer/vietnamese/wordlist"
)

// DefaultRulebook returns the rule book shipped with the package. It is
// loaded on first use.
func DefaultRulebook() *Rulebook {
	return defaultRulebook()
}

// DefaultLexicon returns the dictionary shipped with the package. It is
// loaded on first use.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}

var defaultRulebook = sync.OnceValue(func() *Rulebook {
	placements, err := ruleset.NewPlacementReader(bytes.NewReader(data.Placements))
	assert(err == nil, fmt.Sprintf("embedded placement rules: %v", err))
	iy, err := ruleset.NewIYReader(bytes.NewReader(data.IY))
	assert(err == nil, fmt.Sprintf("embedded i/y rules: %v", err))
	rb, err := LoadRulebook("default", placements, iy)
	assert(err == nil, fmt.Sprintf("embedded rules: %v", err))
	return rb
})

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lx, err := LoadLexicon("default", wordlist.NewReader(bytes.NewReader(data.Words)))
	assert(err == nil, fmt.Sprintf("embedded word list: %v", err))
	return lx
})

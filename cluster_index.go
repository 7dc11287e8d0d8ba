package vietnamese

import (
	"fmt"
	"slices"
)

// clusterIndex answers longest-match questions for a closed set of letter
// clusters. It serves both syllable edges: onsets are matched as prefixes,
// codas as suffixes by storing them reversed and walking the input from its
// end.
type clusterIndex struct {
	name     string
	reversed bool
	trie     clusterTrie
	values   *valueStore
}

type clusterEntry struct {
	key   string
	value uint32
}

type clusterMatch struct {
	length int // in runes
	value  uint32
}

func newClusterIndex(name string, reversed bool, entries []clusterEntry) (*clusterIndex, error) {
	trie := newDATIndex()
	type pendingValue struct {
		pos   int
		value uint32
	}
	pending := make([]pendingValue, 0, len(entries))
	for _, e := range entries {
		key := e.key
		if reversed {
			rs := []rune(key)
			slices.Reverse(rs)
			key = string(rs)
		}
		pos := trie.Insert(key)
		if pos == 0 {
			return nil, fmt.Errorf("%s index: cannot insert cluster %q", name, e.key)
		}
		pending = append(pending, pendingValue{pos: pos, value: e.value})
	}
	trie.Freeze()
	ci := &clusterIndex{
		name:     name,
		reversed: reversed,
		trie:     trie,
		values:   newValueStore(),
	}
	for _, p := range pending {
		state := trie.Resolve(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("%s index: could not resolve position %d after freeze", name, p.pos)
		}
		if err := ci.values.Put(state, p.value); err != nil {
			return nil, err
		}
	}
	stats := trie.Stats()
	tracer().Infof("%s index stats backend=%s keys=%d used=%d total=%d fill=%.2f",
		name, stats.Backend, stats.Keys, stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return ci, nil
}

// matches returns every cluster found at the edge of rs, shortest first.
// rs is expected to be lower case.
func (ci *clusterIndex) matches(rs []rune) []clusterMatch {
	var found []clusterMatch
	it := ci.trie.Iterator()
	for i := range rs {
		r := rs[i]
		if ci.reversed {
			r = rs[len(rs)-1-i]
		}
		state := it.Next(r)
		if state == 0 {
			break
		}
		if v, ok := ci.values.Get(state); ok {
			found = append(found, clusterMatch{length: i + 1, value: v})
		}
	}
	return found
}

// longest returns the longest cluster at the edge of rs which leaves at least
// one rune over. It returns a zero match if there is none.
func (ci *clusterIndex) longest(rs []rune) clusterMatch {
	found := ci.matches(rs)
	for i := len(found) - 1; i >= 0; i-- {
		if found[i].length < len(rs) {
			return found[i]
		}
	}
	return clusterMatch{}
}

// lookup returns the value of rs if rs is a cluster as a whole.
func (ci *clusterIndex) lookup(rs []rune) (uint32, bool) {
	if len(rs) == 0 {
		return 0, false
	}
	key := rs
	if ci.reversed {
		key = slices.Clone(rs)
		slices.Reverse(key)
	}
	return ci.values.Get(ci.trie.State(key))
}

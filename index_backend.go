package vietnamese

// indexIterator walks successive prefix states for one key.
type indexIterator interface {
	// Next consumes one rune and returns the new state, or 0 if the walk
	// left the trie.
	Next(r rune) int
}

type indexStats struct {
	Backend    string
	Keys       int
	UsedSlots  int
	TotalSlots int
}

func (s indexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// clusterTrie is the storage abstraction behind a clusterIndex.
type clusterTrie interface {
	Insert(key string) int
	Freeze()
	Resolve(pos int) int
	Iterator() indexIterator
	State(key []rune) int // state reached by key as a whole, 0 if none
	Stats() indexStats
}

package vietnamese

import (
	"slices"

	"github.com/npillmayer/vietnamese/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datIndex collects keys in a pointer trie and compiles them into a frozen
// double-array trie. Keys are inserted before Freeze, looked up after it.
type datIndex struct {
	frozen      bool
	keys        int
	root        *datBuildNode
	nextNodeID  int
	runeToDense map[rune]uint16
	nextDenseID uint16
	resolved    map[int]uint32 // temporary node ID => frozen state
	compiled    *dat.DAT
}

func newDATIndex() *datIndex {
	return &datIndex{
		root:        &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID:  2,
		runeToDense: make(map[rune]uint16),
		compiled:    &dat.DAT{Root: 1},
	}
}

func (ix *datIndex) dense(r rune) uint16 {
	if d, ok := ix.runeToDense[r]; ok {
		return d
	}
	assert(r > 0 && r <= 0xFFFF, "cluster index supports BMP runes only")
	assert(ix.nextDenseID < ^uint16(0), "cluster index alphabet exhausted")
	ix.nextDenseID++
	ix.runeToDense[r] = ix.nextDenseID
	ix.compiled.Runes.Set(uint16(r), ix.nextDenseID)
	return ix.nextDenseID
}

// Insert adds key and returns a temporary position for it, valid until Freeze.
// Use Resolve to translate it into a frozen state afterwards.
func (ix *datIndex) Insert(key string) int {
	assert(!ix.frozen, "cannot insert into a frozen cluster index")
	if key == "" {
		return 0
	}
	n := ix.root
	for _, r := range key {
		c := ix.dense(r)
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    ix.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			ix.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	ix.keys++
	return n.tmpID
}

// Freeze lays out the collected nodes breadth-first into base/check arrays.
func (ix *datIndex) Freeze() {
	if ix.frozen {
		return
	}
	d := ix.compiled
	d.Sigma = ix.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	ix.resolved = make(map[int]uint32, ix.nextNodeID)
	ix.root.state = d.Root
	queue := []*datBuildNode{ix.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		ix.resolved[n.tmpID] = n.state
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	ix.root = nil
	ix.runeToDense = nil
	ix.frozen = true
}

// Resolve maps a position returned by Insert to its frozen state.
func (ix *datIndex) Resolve(pos int) int {
	if !ix.frozen {
		return 0
	}
	return int(ix.resolved[pos])
}

func (ix *datIndex) Iterator() indexIterator {
	assert(ix.frozen, "cluster index must be frozen before lookup")
	return &datIterator{d: ix.compiled, state: ix.compiled.Root}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(r rune) int {
	if it.dead {
		return 0
	}
	next, ok := it.d.Transition(it.state, it.d.Dense(r))
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			// slot 1 is the root, it never has a parent entry in check
			if t == 1 || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

// State walks key from the root of the frozen trie.
func (ix *datIndex) State(key []rune) int {
	assert(ix.frozen, "cluster index must be frozen before lookup")
	state, ok := ix.compiled.Walk(key)
	if !ok {
		return 0
	}
	return int(state)
}

func (ix *datIndex) Stats() indexStats {
	stats := indexStats{
		Backend:    "dat",
		Keys:       ix.keys,
		TotalSlots: ix.compiled.NStates(),
	}
	for i := range ix.compiled.Check {
		if i == int(ix.compiled.Root) || ix.compiled.Check[i] != 0 {
			stats.UsedSlots++
		}
	}
	return stats
}

/*
Package dat implements a frozen double-array trie over a dense rune alphabet.

The trie is built elsewhere and only read here. States are indices into
Base/Check; state 0 is unused and Root is typically 1. For a state s and a
dense symbol c, the successor is t = Base[s] + c, valid if Check[t] == s.

Symbols are dense IDs in [1..Sigma], obtained from a RuneMap. ID 0 means
"not in the alphabet" and never has a transition.
*/
package dat

// DAT is a frozen double-array trie.
type DAT struct {
	Root  uint32 // root state, commonly 1
	Sigma uint16 // size of the dense alphabet (maximum dense ID)

	// Base and Check are the classic double-array, len == number of slots.
	Base  []int32
	Check []int32

	// Runes maps BMP runes to dense symbol IDs.
	Runes RuneMap
}

// NStates returns the number of allocated slots.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns the successor of state on symbol dense, if any.
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to its dense symbol ID, or 0 if r is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.Runes.Dense(uint16(r))
}

// Walk follows the runes of key from the root and returns the final state.
// It returns false as soon as a rune has no transition.
func (d *DAT) Walk(key []rune) (uint32, bool) {
	state := d.Root
	for _, r := range key {
		next, ok := d.Transition(state, d.Dense(r))
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

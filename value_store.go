package vietnamese

import "fmt"

const absentValue = 0xFF
const initialValueStoreSlots = 2 // include slot 0 + root slot

// valueStore keeps one uint32 value per trie state, directly indexed by the
// state. A state without a value is not a key.
type valueStore struct {
	flags  []uint8 // absentValue or 1, will grow with demand
	values []uint32
}

func newValueStore() *valueStore {
	s := &valueStore{
		flags:  make([]uint8, initialValueStoreSlots),
		values: make([]uint32, initialValueStoreSlots),
	}
	for i := range s.flags {
		s.flags[i] = absentValue
	}
	return s
}

func (s *valueStore) ensure(pos int) {
	if pos < len(s.flags) {
		return
	}
	grow := pos + 1 - len(s.flags)
	old := len(s.flags)
	s.flags = append(s.flags, make([]uint8, grow)...)
	for i := old; i < len(s.flags); i++ {
		s.flags[i] = absentValue
	}
	s.values = append(s.values, make([]uint32, grow)...)
}

// Put stores v at trie state pos, overwriting any previous value.
func (s *valueStore) Put(pos int, v uint32) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie state: %d", pos)
	}
	s.ensure(pos)
	s.flags[pos] = 1
	s.values[pos] = v
	return nil
}

// Get returns the value stored at trie state pos.
func (s *valueStore) Get(pos int) (uint32, bool) {
	if pos <= 0 || pos >= len(s.flags) || s.flags[pos] == absentValue {
		return 0, false
	}
	return s.values[pos], true
}

package dat

import "testing"

// a tiny trie holding "a" and "ab" over the alphabet {a=1, b=2}
func smallDAT() *DAT {
	d := &DAT{
		Root:  1,
		Sigma: 2,
		Base:  []int32{0, 1, 2, 0, 0},
		Check: []int32{0, 0, 1, 0, 2},
	}
	d.Runes.Set('a', 1)
	d.Runes.Set('b', 2)
	return d
}

func TestTransition(t *testing.T) {
	d := smallDAT()
	s, ok := d.Transition(d.Root, d.Dense('a'))
	if !ok || s != 2 {
		t.Fatalf("expected transition root-a to state 2, got %d/%v", s, ok)
	}
	if _, ok := d.Transition(d.Root, d.Dense('b')); ok {
		t.Fatalf("did not expect a transition root-b")
	}
	if _, ok := d.Transition(d.Root, 0); ok {
		t.Fatalf("symbol 0 must never transition")
	}
}

func TestWalk(t *testing.T) {
	d := smallDAT()
	tests := []struct {
		key   string
		state uint32
		ok    bool
	}{
		{"", 1, true},
		{"a", 2, true},
		{"ab", 4, true},
		{"b", 0, false},
		{"abb", 0, false},
		{"ă", 0, false},
	}
	for _, tt := range tests {
		s, ok := d.Walk([]rune(tt.key))
		if ok != tt.ok || s != tt.state {
			t.Errorf("walk %q: got %d/%v, want %d/%v", tt.key, s, ok, tt.state, tt.ok)
		}
	}
}

func TestRuneMapPages(t *testing.T) {
	var m RuneMap
	m.Set('a', 1)
	m.Set('ệ', 2)
	m.Set('z', 0)
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	if m.Dense('a') != 1 || m.Dense('ệ') != 2 {
		t.Fatalf("unexpected dense IDs %d, %d", m.Dense('a'), m.Dense('ệ'))
	}
	if m.Dense('ơ') != 0 {
		t.Fatalf("expected unmapped rune to yield 0")
	}
	m.Set('a', 0)
	if m.Dense('a') != 0 {
		t.Fatalf("expected cleared mapping")
	}
}

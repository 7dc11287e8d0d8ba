package vietnamese

import "testing"

func TestValueStore(t *testing.T) {
	s := newValueStore()
	if err := s.Put(42, 7); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if v, ok := s.Get(42); !ok || v != 7 {
		t.Fatalf("expected value 7 at position 42, got %d/%v", v, ok)
	}
	if err := s.Put(42, 9); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if v, _ := s.Get(42); v != 9 {
		t.Fatalf("expected overwritten value 9, got %d", v)
	}
	if _, ok := s.Get(41); ok {
		t.Fatalf("did not expect a value at position 41")
	}
	if _, ok := s.Get(1000); ok {
		t.Fatalf("did not expect a value beyond the store")
	}
	if err := s.Put(0, 1); err == nil {
		t.Fatalf("expected error for position 0")
	}
}

func smallIndex(t *testing.T, reversed bool) *clusterIndex {
	t.Helper()
	ci, err := newClusterIndex("test", reversed, []clusterEntry{
		{key: "n", value: 1},
		{key: "ng", value: 2},
		{key: "ngh", value: 3},
		{key: "nh", value: 4},
		{key: "đ", value: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ci
}

func TestClusterIndexPrefix(t *testing.T) {
	ci := smallIndex(t, false)
	found := ci.matches([]rune("nghiêng"))
	if len(found) != 3 || found[0].value != 1 || found[2].length != 3 || found[2].value != 3 {
		t.Fatalf("unexpected matches %v", found)
	}
	if m := ci.longest([]rune("ngh")); m.length != 2 || m.value != 2 {
		t.Fatalf("longest must leave one rune over, got %v", m)
	}
	if m := ci.longest([]rune("đi")); m.length != 1 || m.value != 5 {
		t.Fatalf("expected đ, got %v", m)
	}
	if m := ci.longest([]rune("an")); m.length != 0 {
		t.Fatalf("expected no match, got %v", m)
	}
	if v, ok := ci.lookup([]rune("nh")); !ok || v != 4 {
		t.Fatalf("expected nh as a whole, got %d/%v", v, ok)
	}
	for _, s := range []string{"", "nhh", "g", "x"} {
		if _, ok := ci.lookup([]rune(s)); ok {
			t.Fatalf("did not expect %q to be a cluster", s)
		}
	}
}

func TestClusterIndexSuffix(t *testing.T) {
	ci := smallIndex(t, true)
	if m := ci.longest([]rune("anh")); m.length != 2 || m.value != 4 {
		t.Fatalf("expected trailing nh, got %v", m)
	}
	if m := ci.longest([]rune("iêng")); m.length != 2 || m.value != 2 {
		t.Fatalf("expected trailing ng, got %v", m)
	}
	if v, ok := ci.lookup([]rune("ngh")); !ok || v != 3 {
		t.Fatalf("expected ngh as a whole, got %d/%v", v, ok)
	}
}

func TestClusterIndexStats(t *testing.T) {
	ix := newDATIndex()
	for _, k := range []string{"c", "ch", "m", "n", "ng", "nh"} {
		if ix.Insert(k) == 0 {
			t.Fatalf("cannot insert %q", k)
		}
	}
	if ix.Insert("") != 0 {
		t.Fatalf("empty key must not be inserted")
	}
	ix.Freeze()
	stats := ix.Stats()
	if stats.Backend != "dat" || stats.Keys != 6 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	// root + c, m, n + h, g under n + h under c
	if stats.UsedSlots != 7 {
		t.Fatalf("expected 7 used slots, got %d", stats.UsedSlots)
	}
	if r := stats.FillRatio(); r <= 0 || r > 1 {
		t.Fatalf("fill ratio out of range: %f", r)
	}
}

func TestPhonologyTables(t *testing.T) {
	p := tables()
	if len(p.onsetNames) != len(onsetClusters) {
		t.Fatalf("expected %d onset names, got %d", len(onsetClusters), len(p.onsetNames))
	}
	if r, tone := p.strip('ậ'); r != 'â' || tone != DotBelow {
		t.Fatalf("strip(ậ) = %c/%v", r, tone)
	}
	if r := p.withTone('Ư', Grave); r != 'Ừ' {
		t.Fatalf("withTone(Ư, huyền) = %c", r)
	}
	if r := p.withTone('b', Grave); r != 'b' {
		t.Fatalf("consonants take no tone, got %c", r)
	}
	if _, ok := p.rhymes.lookup([]rune("uyêt")); !ok {
		t.Fatalf("expected uyêt among the rhymes")
	}
}

func TestDATIndexState(t *testing.T) {
	ix := newDATIndex()
	pos := ix.Insert("ngh")
	ix.Insert("ng")
	ix.Freeze()
	if s := ix.State([]rune("ngh")); s == 0 || s != ix.Resolve(pos) {
		t.Fatalf("expected state of ngh to be %d, is %d", ix.Resolve(pos), s)
	}
	if s := ix.State([]rune("nx")); s != 0 {
		t.Fatalf("did not expect a state for nx, got %d", s)
	}
	if s := ix.State([]rune("n")); s == 0 {
		t.Fatalf("n is a prefix and must have a state")
	}
}

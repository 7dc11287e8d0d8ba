package vietnamese

import (
	"errors"
	"io"
	"slices"
	"testing"
)

type sliceWordReader struct {
	words []string
	index int
	err   error
}

func (r *sliceWordReader) Next() (string, error) {
	if r.index >= len(r.words) {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}

func TestLexiconReader(t *testing.T) {
	lx, err := LoadLexicon("small", &sliceWordReader{
		words: []string{"Việt", "nam", "nam", "", "ghế"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if lx.Len() != 3 {
		t.Fatalf("expected 3 distinct words, got %d", lx.Len())
	}
	if lx.Identifier != "lexicon: small" {
		t.Fatalf("unexpected identifier %q", lx.Identifier)
	}
	for _, tc := range []struct {
		s             string
		has, contains bool
	}{
		{"VIỆT", true, true},
		{"nam", true, true},
		{"iệ", false, true},
		{"gh", false, true},
		{"ế", false, true},
		{"am", false, true},
		{"", false, true},
		{"xa", false, false},
		{"namm", false, false},
	} {
		if got := lx.Has(tc.s); got != tc.has {
			t.Fatalf("Has(%q) should be %v", tc.s, tc.has)
		}
		if got := lx.Contains(tc.s); got != tc.contains {
			t.Fatalf("Contains(%q) should be %v", tc.s, tc.contains)
		}
	}
}

func TestLexiconReaderError(t *testing.T) {
	broken := errors.New("broken stream")
	_, err := LoadLexicon("broken", &sliceWordReader{words: []string{"a"}, err: broken})
	if !errors.Is(err, broken) {
		t.Fatalf("expected stream error, got %v", err)
	}
}

func TestLexiconScan(t *testing.T) {
	lx, err := LoadLexicon("small", &sliceWordReader{words: []string{"việt", "nam"}})
	if err != nil {
		t.Fatal(err)
	}
	text := "Việt Nam,\tViệt\nNam; Hà-Nội 2024"
	if got := lx.Scan(text, false); !slices.Equal(got, []string{"Việt", "Nam"}) {
		t.Fatalf("expected known words [Việt Nam], got %v", got)
	}
	if got := lx.Scan(text, true); !slices.Equal(got, []string{"HàNội"}) {
		t.Fatalf("expected unknown words [HàNội], got %v", got)
	}
}

func TestScanWords(t *testing.T) {
	text := "Xứ Wales thắng Nga, đứng nhất bảng B"
	if got := ScanWords(text, true); !slices.Equal(got, []string{"Wales"}) {
		t.Fatalf("expected [Wales], got %v", got)
	}
	want := []string{"Xứ", "thắng", "Nga", "đứng", "nhất", "bảng", "B"}
	if got := ScanWords(text, false); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := ScanWords("", true); len(got) != 0 {
		t.Fatalf("expected nothing for empty text, got %v", got)
	}
}

func TestDefaultLexicon(t *testing.T) {
	lx := DefaultLexicon()
	if lx.Len() != 17809 {
		t.Fatalf("expected 17809 words, got %d", lx.Len())
	}
	for _, w := range []string{"nghiêng", "việt", "người", "Khuỷu"} {
		if !lx.Has(w) {
			t.Fatalf("expected %q in the default lexicon", w)
		}
	}
}

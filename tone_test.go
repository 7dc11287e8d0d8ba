package vietnamese

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/vietnamese/data"
	"github.com/npillmayer/vietnamese/wordlist"
)

func TestPlaceAccent(t *testing.T) {
	for _, tc := range []struct {
		word string
		tone Tone
		want string
	}{
		{"hoa", Hook, "hỏa"},
		{"Hoa", Hook, "Hỏa"},
		{"hoan", Hook, "hoản"},
		{"nghiêng", Acute, "nghiếng"},
		{"gìn", Flat, "gin"},
		{"gin", Grave, "gìn"},
		{"giếng", Flat, "giêng"},
		{"quý", Flat, "quy"},
		{"khuyên", DotBelow, "khuyện"},
		{"thuở", Grave, "thuờ"},
		{"người", Hook, "ngưởi"},
		{"HOÀNG", Acute, "HOÁNG"},
		{"Việt", Flat, "Viêt"},
		{"việt", Acute, "viết"},
		{"ươi", Grave, "ười"},
		{"oa", Grave, "òa"},
		{"oan", Acute, "oán"},
		{"uyên", Tilde, "uyễn"},
		{"gi", Grave, "gì"},
		{"qua", Tilde, "quã"},
		{"quốc", DotBelow, "quộc"},
		{"của", Acute, "cúa"},
		{"mưa", Grave, "mừa"},
		{"khuỷu", Flat, "khuyu"},
		{"ngoai", Grave, "ngoài"},
		// left alone
		{"xyz", Grave, "xyz"},
		{"nghiêngg", Grave, "nghiêngg"},
		{"", Grave, ""},
		{"hoa", Tone(9), "hoa"},
	} {
		if got := PlaceAccent(tc.word, tc.tone); got != tc.want {
			t.Fatalf("PlaceAccent(%q, %v) should be %q, is %q", tc.word, tc.tone, tc.want, got)
		}
	}
}

func TestPlaceAccentDecomposed(t *testing.T) {
	// hook above as a combining mark
	if got := PlaceAccent("ho\u0309a", Grave); got != "hòa" {
		t.Fatalf("expected tone of decomposed input to be replaced, is %q", got)
	}
}

func TestPlaceAccentKeepsLength(t *testing.T) {
	for _, w := range GenerateWords(true) {
		for tone := Flat; tone <= DotBelow; tone++ {
			toned := PlaceAccent(w, tone)
			if utf8.RuneCountInString(toned) != utf8.RuneCountInString(w) {
				t.Fatalf("PlaceAccent(%q, %v) = %q changed the length", w, tone, toned)
			}
		}
	}
}

// Every dictionary word must survive taking its tone off and putting it back.
func TestPlaceAccentRoundTrip(t *testing.T) {
	reader := wordlist.NewReader(bytes.NewReader(data.Words))
	p := tables()
	n := 0
	for {
		word, err := reader.Next()
		if err != nil {
			break
		}
		_, _, tone := p.untone([]rune(word))
		flat, err := PlaceAccentStrict(word, Flat)
		if err != nil {
			t.Fatalf("cannot strip tone of %q: %v", word, err)
		}
		if back := PlaceAccent(flat, tone); back != word {
			t.Fatalf("round trip of %q via %q yields %q", word, flat, back)
		}
		n++
	}
	if n < 17000 {
		t.Fatalf("expected the full word list, got %d words", n)
	}
}

func TestPlaceAccentStrict(t *testing.T) {
	for _, tc := range []struct {
		word string
		tone Tone
		err  error
	}{
		{"hoa", Tone(-1), ErrToneRange},
		{"hoa", Tone(6), ErrToneRange},
		{"", Grave, ErrWordLength},
		{"nghiêngg", Grave, ErrWordLength},
		{"xyz", Grave, ErrNotSyllable},
		{"ng", Grave, ErrNotSyllable},
	} {
		got, err := PlaceAccentStrict(tc.word, tc.tone)
		if !errors.Is(err, tc.err) {
			t.Fatalf("PlaceAccentStrict(%q, %d): expected %v, got %v", tc.word, tc.tone, tc.err, err)
		}
		if got != tc.word {
			t.Fatalf("PlaceAccentStrict(%q, %d) must return the word on error, is %q", tc.word, tc.tone, got)
		}
	}
	if got, err := PlaceAccentStrict("toan", Grave); err != nil || got != "toàn" {
		t.Fatalf("expected toàn, got %q/%v", got, err)
	}
}

func TestTonePosition(t *testing.T) {
	for _, tc := range []struct {
		nucleus string
		coda    bool
		want    int
	}{
		{"a", false, 0},
		{"oa", false, 0},
		{"oa", true, 1},
		{"iê", false, 1},
		{"uơ", false, 1},
		{"ươ", true, 1},
		{"ươi", false, 1},
		{"uyê", true, 2},
		{"oai", false, 1},
		{"uyu", false, 1},
	} {
		if got := tonePosition([]rune(tc.nucleus), tc.coda); got != tc.want {
			t.Fatalf("tone of %q (coda=%v) should sit at %d, is at %d", tc.nucleus, tc.coda, tc.want, got)
		}
	}
}

func TestDecompose(t *testing.T) {
	for _, tc := range []struct {
		word                 string
		onset, nucleus, coda string
		tone                 Tone
		permitted            bool
	}{
		{"Nghiêng", "Ngh", "iê", "ng", Flat, true},
		{"gìn", "g", "ì", "n", Grave, false},
		{"giếng", "g", "iế", "ng", Acute, true},
		{"quốc", "qu", "ố", "c", DotBelow, true},
		{"ười", "", "ười", "", Grave, true},
		{"anh", "", "a", "nh", Flat, true},
		{"khuỷu", "kh", "uỷu", "", Hook, true},
	} {
		s, err := Decompose(tc.word)
		if err != nil {
			t.Fatalf("Decompose(%q): %v", tc.word, err)
		}
		if s.Onset != tc.onset || s.Nucleus != tc.nucleus || s.Coda != tc.coda || s.Tone != tc.tone {
			t.Fatalf("Decompose(%q) = %+v", tc.word, s)
		}
		if s.String() != tc.word {
			t.Fatalf("syllable %+v does not reassemble to %q", s, tc.word)
		}
		if s.Permitted() != tc.permitted {
			t.Fatalf("expected Permitted() of %q to be %v", tc.word, tc.permitted)
		}
	}
	if _, err := Decompose("xyz"); !errors.Is(err, ErrNotSyllable) {
		t.Fatalf("expected ErrNotSyllable for xyz, got %v", err)
	}
}

func TestSyllablePermitted(t *testing.T) {
	s := Syllable{Onset: "gh", Nucleus: "a"}
	if s.Permitted() {
		t.Fatalf("gh must not combine with a")
	}
	s = Syllable{Onset: "k", Nucleus: "o"}
	if s.Permitted() {
		t.Fatalf("k must not combine with o")
	}
	s = Syllable{Onset: "Gh", Nucleus: "ế"}
	if !s.Permitted() {
		t.Fatalf("gh must combine with ê")
	}
	if (Syllable{Nucleus: "x"}).Permitted() {
		t.Fatalf("x is no rhyme")
	}
}

func TestToneString(t *testing.T) {
	if Acute.String() != "sắc" || Flat.String() != "ngang" {
		t.Fatalf("unexpected tone names %s, %s", Acute, Flat)
	}
	if Tone(7).String() != "Tone(7)" {
		t.Fatalf("unexpected name for invalid tone: %s", Tone(7))
	}
}

func TestGenerateWords(t *testing.T) {
	strict := GenerateWords(true)
	if len(strict) != 12708 {
		t.Fatalf("expected 12708 words in strict mode, got %d", len(strict))
	}
	all := GenerateWords(false)
	if len(all) != 26334 {
		t.Fatalf("expected 26334 words, got %d", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, w := range all {
		if seen[w] {
			t.Fatalf("word %q generated twice", w)
		}
		seen[w] = true
	}
	for _, w := range strict {
		if !seen[w] {
			t.Fatalf("strict word %q missing from full generation", w)
		}
	}
	for _, w := range []string{"nghiêng", "việt", "nam", "ười", "quốc"} {
		if !seen[w] {
			t.Fatalf("expected %q among generated words", w)
		}
	}
}

package vietnamese

import "testing"

func TestSpeak(t *testing.T) {
	for _, tc := range []struct {
		text, want string
	}{
		{"Việt Nam", "i ê tờ iêt, vờ iêt viêt nặng /việt/; a mờ am, nờ am /nam/; /việt nam/"},
		{"  nam ", "a mờ am, nờ am /nam/; /nam/"},
		{"chào\n", "a o chờ ao chao huyền /chào/; /chào/"},
		{"\tnam\nnam", "a mờ am, nờ am /nam/; a mờ am, nờ am /nam/; /nam nam/"},
		{"ngh", "/ngờ/"},
		{"Đ", "/đờ/"},
		{"a", "/a/"},
		{"", ""},
		{"   ", ""},
	} {
		if got := Speak(tc.text); got != tc.want {
			t.Fatalf("Speak(%q) should be\n%q, is\n%q", tc.text, tc.want, got)
		}
	}
}

func TestSplitForSpelling(t *testing.T) {
	p := tables()
	for _, tc := range []struct {
		word               string
		onset, vowel, coda string
	}{
		{"nghiêng", "ngh", "iê", "ng"},
		{"việt", "v", "iệ", "t"},
		{"trong", "tr", "o", "ng"},
		{"stop", "s", "to", "p"}, // outside the syllable model
	} {
		o, v, c := p.splitForSpelling([]rune(tc.word))
		if string(o) != tc.onset || string(v) != tc.vowel || string(c) != tc.coda {
			t.Fatalf("split of %q: %q|%q|%q", tc.word, string(o), string(v), string(c))
		}
	}
}

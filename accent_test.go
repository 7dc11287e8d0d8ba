package vietnamese

import "testing"

func TestRemoveAccent(t *testing.T) {
	for _, tc := range []struct {
		text string
		mode AccentMode
		want string
	}{
		{"Việt Nam", Remove, "Viet Nam"},
		{"Việt Đức", Remove, "Viet Duc"},
		{"NGUYỄN Thị Ánh", Remove, "NGUYEN Thi Anh"},
		{"Việt Đức", Alphabet, "Viêt Đưc"},
		{"Hoà Bình, 2024!", Remove, "Hoa Binh, 2024!"},
		{"Việt Nam", NCRDecimal, "Vi&#7879;t Nam"},
		{"Đà", NCRDecimal, "&#272;&#224;"},
		{"Việt", Remove, "Viet"},
		{"Việt", AccentMode(9), "Viet"},
		{"", NCRDecimal, ""},
		{"Vie\u0323\u0302t", Remove, "Viet"},
		{"Paris", Remove, "Paris"},
	} {
		if got := RemoveAccent(tc.text, tc.mode); got != tc.want {
			t.Fatalf("RemoveAccent(%q, %s) should be %q, is %q", tc.text, tc.mode, tc.want, got)
		}
	}
}

func TestRemoveAccentIdempotent(t *testing.T) {
	text := "Tiếng Việt có dấu, chữ Đ và ơ ư"
	for _, mode := range []AccentMode{Remove, Alphabet} {
		once := RemoveAccent(text, mode)
		if twice := RemoveAccent(once, mode); twice != once {
			t.Fatalf("%s not idempotent: %q => %q", mode, once, twice)
		}
	}
}

func TestParseAccentMode(t *testing.T) {
	for _, m := range []AccentMode{Remove, Alphabet, NCRDecimal} {
		got, err := ParseAccentMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseAccentMode(%q) = %v/%v", m.String(), got, err)
		}
	}
	if _, err := ParseAccentMode("html"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestCheckChar(t *testing.T) {
	for _, tc := range []struct {
		char string
		want bool
	}{
		{"a", true},
		{"đ", true},
		{"Đ", true},
		{"Ệ", true},
		{"ử", true},
		{"e\u0302", true},
		{"w", false},
		{"f", false},
		{"z", false},
		{" ", false},
		{"", false},
		{"ab", false},
		{"1", false},
	} {
		if got := CheckChar(tc.char); got != tc.want {
			t.Fatalf("CheckChar(%q) should be %v", tc.char, tc.want)
		}
	}
}

func TestComposeOnlyVietnameseLetters(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Å", "Å"}, // Angstrom sign
		{"ño", "ño"},
		{"豈", "豈"},
		{"D́", "D́"},
		{"Việt", "Việt"},
		{"Å Việt ñ", "Å Việt ñ"},
		{"ế", "ế"},
	} {
		if got := compose(tc.in); got != tc.want {
			t.Fatalf("compose(%q) should be %q, is %q", tc.in, tc.want, got)
		}
	}
	for _, in := range []string{"Å", "ño", "豈"} {
		if got := RemoveAccent(in, Remove); got != in {
			t.Fatalf("RemoveAccent(%q) must pass the text through, is %q", in, got)
		}
		if got := FixIY(in); got != in {
			t.Fatalf("FixIY(%q) must pass the text through, is %q", in, got)
		}
		if got := FixAccent(in); got != in {
			t.Fatalf("FixAccent(%q) must pass the text through, is %q", in, got)
		}
	}
}

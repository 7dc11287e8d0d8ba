package vietnamese

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AccentMode selects what RemoveAccent turns accented letters into.
type AccentMode int

const (
	// Remove drops every diacritic: "Việt Đức" => "Viet Duc".
	Remove AccentMode = iota
	// Alphabet drops tone marks only: "Việt Đức" => "Viêt Đưc".
	Alphabet
	// NCRDecimal writes accented letters as decimal numeric character
	// references: "ệ" => "&#7879;".
	NCRDecimal
)

var accentModeNames = [...]string{"remove", "alphabet", "ncr_decimal"}

func (m AccentMode) String() string {
	if m < Remove || m > NCRDecimal {
		return fmt.Sprintf("AccentMode(%d)", int(m))
	}
	return accentModeNames[m]
}

// ParseAccentMode returns the mode named s ("remove", "alphabet" or
// "ncr_decimal").
func ParseAccentMode(s string) (AccentMode, error) {
	for i, name := range accentModeNames {
		if s == name {
			return AccentMode(i), nil
		}
	}
	return Remove, fmt.Errorf("unknown accent mode %q", s)
}

// compose replaces decomposed Vietnamese letters in s by their precomposed
// form, which is what all tables hold. Only a normalization segment which
// composes to a single letter of the alphabet is rewritten; every other
// segment is copied as it is.
func compose(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	p := tables()
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 {
			_, n = utf8.DecodeRuneInString(s)
		}
		seg := s[:n]
		s = s[n:]
		if c := norm.NFC.String(seg); c != seg && p.isLetter(c) {
			b.WriteString(c)
			continue
		}
		b.WriteString(seg)
	}
	return b.String()
}

// isLetter reports whether s is a single letter of the Vietnamese alphabet,
// with or without diacritics.
func (p *phonology) isLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}
	if _, ok := p.glyphs[r]; ok {
		return true
	}
	_, ok := p.letterNames[unicode.ToLower(r)]
	return ok
}

// RemoveAccent converts every accented Vietnamese letter of text according
// to mode. Other characters are left alone. An unknown mode behaves like
// Remove.
func RemoveAccent(text string, mode AccentMode) string {
	if text == "" {
		return text
	}
	p := tables()
	text = compose(text)
	if mode == NCRDecimal {
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			if _, ok := p.glyphs[r]; ok {
				b.WriteString("&#")
				b.WriteString(strconv.Itoa(int(r)))
				b.WriteByte(';')
				continue
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	mapping := func(r rune) rune {
		if g, ok := p.glyphs[r]; ok {
			return g.plain
		}
		return r
	}
	if mode == Alphabet {
		mapping = func(r rune) rune {
			base, _ := p.strip(r)
			return base
		}
	}
	out, _, err := transform.String(runes.Map(mapping), text)
	assert(err == nil, "rune mapping cannot fail")
	return out
}

// CheckChar reports whether char is exactly one character of the
// Vietnamese alphabet, with or without diacritics, in either case.
func CheckChar(char string) bool {
	return tables().isLetter(compose(char))
}

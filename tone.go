package vietnamese

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

// Tone is one of the six Vietnamese tones. The values match the codes used
// throughout the tables: 0 is the unmarked tone, 1..5 carry a mark.
type Tone int

const (
	Flat     Tone = iota // ngang, no mark
	Grave                // huyền, à
	Hook                 // hỏi, ả
	Tilde                // ngã, ã
	Acute                // sắc, á
	DotBelow             // nặng, ạ
)

var toneNames = [...]string{"ngang", "huyền", "hỏi", "ngã", "sắc", "nặng"}

// String returns the Vietnamese name of the tone.
func (t Tone) String() string {
	if t < Flat || t > DotBelow {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// maxWordLen is the length of the longest Vietnamese syllable, "nghiêng".
const maxWordLen = 7

var (
	ErrToneRange   = errors.New("tone out of range")
	ErrWordLength  = errors.New("word length out of range")
	ErrNotSyllable = errors.New("not a Vietnamese syllable")
)

// PlaceAccent returns word with its tone mark set to tone, placed on the
// vowel Vietnamese orthography prescribes. A tone mark already present is
// removed first; Flat therefore strips the tone. Letter case is kept.
//
// Words which cannot be read as a single syllable, words longer than seven
// letters and tones out of range leave word unchanged. The split does not
// stop at the longest leading consonant cluster: if what follows it is no
// rhyme, shorter clusters are tried, so "gin" is read as g+in and toned.
//
// Example:
//
//	PlaceAccent("Hoa", Hook) => "Hỏa"
func PlaceAccent(word string, tone Tone) string {
	toned, err := placeAccent(word, tone)
	if err != nil {
		return word
	}
	return toned
}

// PlaceAccentStrict is like PlaceAccent but reports why a word could not be
// toned. The error wraps ErrToneRange, ErrWordLength or ErrNotSyllable.
func PlaceAccentStrict(word string, tone Tone) (string, error) {
	toned, err := placeAccent(word, tone)
	if err != nil {
		tracer().Debugf("place accent: %v", err)
		return word, err
	}
	return toned, nil
}

func placeAccent(word string, tone Tone) (string, error) {
	if tone < Flat || tone > DotBelow {
		return word, fmt.Errorf("%w: %d", ErrToneRange, int(tone))
	}
	p := tables()
	rs := []rune(compose(word))
	if len(rs) == 0 || len(rs) > maxWordLen {
		return word, fmt.Errorf("%w: %q", ErrWordLength, word)
	}
	base, out, _ := p.untone(rs)
	sp, ok := p.decompose(base)
	if !ok {
		return word, fmt.Errorf("%w: %q", ErrNotSyllable, word)
	}
	if tone != Flat {
		nucleus := base[sp.onset : sp.onset+sp.nucleus]
		pos := sp.onset + tonePosition(nucleus, sp.coda > 0)
		out[pos] = p.withTone(out[pos], tone)
	}
	return string(out), nil
}

// tonePosition returns the index of the vowel in nucleus which carries the
// tone mark. nucleus is lower case and untoned.
func tonePosition(nucleus []rune, hasCoda bool) int {
	if i := slices.Index(nucleus, 'ê'); i >= 0 {
		return i
	}
	if i := slices.Index(nucleus, 'ơ'); i >= 0 {
		return i
	}
	switch len(nucleus) {
	case 1:
		return 0
	case 2:
		if hasCoda {
			return 1 // hoàn
		}
		return 0 // hòa
	default:
		return 1 // khuỷu, ngoài
	}
}

// syllableSplit holds the lengths of the parts of a syllable, in runes.
type syllableSplit struct {
	onset, nucleus, coda int
}

// decompose splits a lower case, untoned syllable. The longest leading
// cluster is preferred; shorter ones are tried if what remains is not a
// known rhyme ("gin" is g+in, as "n" is no rhyme).
func (p *phonology) decompose(base []rune) (syllableSplit, bool) {
	onsets := p.onsets.matches(base)
	for i := len(onsets); i >= 0; i-- {
		n := 0
		if i > 0 {
			n = onsets[i-1].length
			if n >= len(base) {
				continue
			}
		}
		rhyme := base[n:]
		if _, ok := p.rhymes.lookup(rhyme); !ok {
			continue
		}
		coda := p.codas.longest(rhyme).length
		if nucleus := len(rhyme) - coda; nucleus <= 3 {
			return syllableSplit{onset: n, nucleus: nucleus, coda: coda}, true
		}
	}
	return syllableSplit{}, false
}

// untone removes tone marks from rs. It returns a lower case copy for
// matching, a copy with the original case and the last tone found.
func (p *phonology) untone(rs []rune) (base, cased []rune, tone Tone) {
	base = make([]rune, len(rs))
	cased = make([]rune, len(rs))
	for i, r := range rs {
		var t Tone
		cased[i], t = p.strip(r)
		base[i] = unicode.ToLower(cased[i])
		if t != Flat {
			tone = t
		}
	}
	return base, cased, tone
}

// Syllable is a word split into its parts. Nucleus keeps the tone mark; all
// parts keep the case they had in the input.
type Syllable struct {
	Onset   string // leading consonant cluster, may be empty
	Nucleus string // one to three vowels
	Coda    string // trailing consonant cluster, may be empty
	Tone    Tone
}

// String reassembles the syllable.
func (s Syllable) String() string {
	return s.Onset + s.Nucleus + s.Coda
}

// Rhyme returns nucleus and coda together.
func (s Syllable) Rhyme() string {
	return s.Nucleus + s.Coda
}

// Permitted reports whether the onset is one the rhyme combines with in
// Vietnamese. A syllable without onset is always permitted.
func (s Syllable) Permitted() bool {
	p := tables()
	rhyme, _, _ := p.untone([]rune(compose(s.Rhyme())))
	set, ok := p.rhymes.lookup(rhyme)
	if !ok {
		return false
	}
	if s.Onset == "" {
		return true
	}
	onset, _, _ := p.untone([]rune(compose(s.Onset)))
	i, ok := p.onsets.lookup(onset)
	return ok && set&(1<<i) != 0
}

// Decompose splits word into onset, nucleus and coda, the same way
// PlaceAccent does. It fails with ErrWordLength or ErrNotSyllable.
func Decompose(word string) (Syllable, error) {
	p := tables()
	rs := []rune(compose(word))
	if len(rs) == 0 || len(rs) > maxWordLen {
		return Syllable{}, fmt.Errorf("%w: %q", ErrWordLength, word)
	}
	base, _, tone := p.untone(rs)
	sp, ok := p.decompose(base)
	if !ok {
		return Syllable{}, fmt.Errorf("%w: %q", ErrNotSyllable, word)
	}
	return Syllable{
		Onset:   string(rs[:sp.onset]),
		Nucleus: string(rs[sp.onset : sp.onset+sp.nucleus]),
		Coda:    string(rs[sp.onset+sp.nucleus:]),
		Tone:    tone,
	}, nil
}

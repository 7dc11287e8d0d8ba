package vietnamese

import (
	"strings"
	"unicode/utf8"
)

// Speak spells text out the way Vietnamese children learn to read: for
// every word the vowels letter by letter, the rhyme with its final
// consonant, the leading consonant, then the whole word without and with
// its tone. The text is lower-cased; the transcript ends with the whole
// text. A single letter or consonant cluster is read by its name.
//
//	Speak("Việt Nam") => "i ê tờ iêt, vờ iêt viêt nặng /việt/; a mờ am, nờ am /nam/; /việt nam/"
//	Speak("ngh") => "/ngờ/"
func Speak(text string) string {
	text = strings.ToLower(collapseSpaces(compose(text)))
	if text == "" {
		return ""
	}
	p := tables()
	rs := []rune(text)
	if i, ok := p.onsets.lookup(rs); ok {
		return "/" + p.onsetNames[i] + "/"
	}
	if name, ok := p.letterNames[rs[0]]; ok && len(rs) == 1 {
		return "/" + name + "/"
	}
	var b strings.Builder
	for _, word := range strings.Split(text, " ") {
		p.spellWord(&b, word)
	}
	b.WriteString("/" + text + "/")
	return b.String()
}

func (p *phonology) spellWord(b *strings.Builder, word string) {
	rs := []rune(word)
	onset, vowel, coda := p.splitForSpelling(rs)
	plain := p.untoned(vowel)
	if len(vowel) > 0 {
		for _, r := range plain {
			b.WriteString(p.letterName(r) + " ")
		}
		if len(coda) > 0 {
			b.WriteString(p.clusterName(coda) + " ")
			b.WriteString(plain + string(coda) + ", ")
		}
	}
	if len(onset) > 0 {
		b.WriteString(p.clusterName(onset) + " ")
	}
	tone := Flat
	if residue := p.toneResidue(rs); utf8.RuneCountInString(residue) == 1 {
		r, _ := utf8.DecodeRuneInString(residue)
		_, tone = p.strip(r)
	}
	switch {
	case tone != Flat && len(rs) > 1:
		b.WriteString(plain + string(coda) + " " + p.untoned(rs) + " " + tone.String())
	case tone != Flat:
		b.WriteString(" " + tone.String())
	case len(rs) > 1:
		b.WriteString(plain + string(coda))
	}
	b.WriteString(" /" + word + "/; ")
}

// splitForSpelling splits a lower case word along the syllable model. For
// words outside of it, the longest leading and trailing clusters are split
// off without further checks.
func (p *phonology) splitForSpelling(rs []rune) (onset, vowel, coda []rune) {
	base, _, _ := p.untone(rs)
	if sp, ok := p.decompose(base); ok && len(rs) <= maxWordLen {
		return rs[:sp.onset], rs[sp.onset : sp.onset+sp.nucleus], rs[sp.onset+sp.nucleus:]
	}
	n := p.onsets.longest(base).length
	c := p.codas.longest(base[n:]).length
	return rs[:n], rs[n : len(rs)-c], rs[len(rs)-c:]
}

// toneResidue returns what is left of word after removing every letter
// which carries no tone.
func (p *phonology) toneResidue(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if g, ok := p.glyphs[r]; ok && g.tone == Flat {
			continue
		}
		if 'a' <= r && r <= 'z' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (p *phonology) untoned(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		base, _ := p.strip(r)
		b.WriteRune(base)
	}
	return b.String()
}

func (p *phonology) letterName(r rune) string {
	if name, ok := p.letterNames[r]; ok {
		return name
	}
	return string(r)
}

func (p *phonology) clusterName(rs []rune) string {
	if i, ok := p.onsets.lookup(rs); ok {
		return p.onsetNames[i]
	}
	return string(rs)
}

package vietnamese

import (
	"fmt"
	"sync"
	"unicode"
)

// phonology is the immutable table set every operation reads from. It is
// built once, on first use, and never written to afterwards.
type phonology struct {
	glyphs      map[rune]glyph   // the accent letters, both cases
	toneRows    map[rune][6]rune // vowel letter => its toned forms, same case
	letterNames map[rune]string
	onsetNames  []string // by onset ordinal
	onsets      *clusterIndex
	codas       *clusterIndex
	rhymes      *clusterIndex // value: set of permitted onset ordinals
	collation   map[rune]string
}

var tables = sync.OnceValue(func() *phonology {
	p, err := buildPhonology()
	assert(err == nil, fmt.Sprintf("phonology tables inconsistent: %v", err))
	return p
})

func buildPhonology() (*phonology, error) {
	p := &phonology{
		glyphs:      make(map[rune]glyph, 2*67),
		toneRows:    make(map[rune][6]rune, 2*len(toneVowels)),
		letterNames: make(map[rune]string, len(letters)),
		collation:   make(map[rune]string, 2*(6*len(toneVowels)+2)),
	}
	for _, l := range letters {
		p.letterNames[l.lower] = l.name
	}
	for _, row := range toneVowels {
		base := row.lower[0]
		plain, ok := plainVowel[base]
		if !ok {
			return nil, fmt.Errorf("vowel %q has no plain form", base)
		}
		p.toneRows[row.lower[0]] = row.lower
		p.toneRows[row.upper[0]] = row.upper
		for t := range row.lower {
			if t == 0 && base == plain {
				continue // a, e, i, o, u, y carry no diacritic at all
			}
			p.glyphs[row.lower[t]] = glyph{
				plain:    plain,
				alphabet: base,
				tone:     Tone(t),
			}
			p.glyphs[row.upper[t]] = glyph{
				plain:    unicode.ToUpper(plain),
				alphabet: row.upper[0],
				tone:     Tone(t),
			}
		}
	}
	p.glyphs['đ'] = glyph{plain: 'd', alphabet: 'đ'}
	p.glyphs['Đ'] = glyph{plain: 'D', alphabet: 'Đ'}
	p.buildCollation()

	ordinal := make(map[string]int, len(onsetClusters))
	entries := make([]clusterEntry, 0, len(onsetClusters))
	for i, c := range onsetClusters {
		ordinal[c.cluster] = i
		p.onsetNames = append(p.onsetNames, c.name)
		entries = append(entries, clusterEntry{key: c.cluster, value: uint32(i)})
	}
	var err error
	if p.onsets, err = newClusterIndex("onset", false, entries); err != nil {
		return nil, err
	}
	entries = entries[:0]
	for i, c := range codaClusters {
		entries = append(entries, clusterEntry{key: c, value: uint32(i)})
	}
	if p.codas, err = newClusterIndex("coda", true, entries); err != nil {
		return nil, err
	}
	entries = make([]clusterEntry, 0, len(syllableShapes))
	for _, shape := range syllableShapes {
		var set uint32
		for _, onset := range shape.onsets {
			i, ok := ordinal[onset]
			if !ok {
				return nil, fmt.Errorf("rhyme %q refers to unknown onset %q", shape.rhyme, onset)
			}
			set |= 1 << i
		}
		entries = append(entries, clusterEntry{key: shape.rhyme, value: set})
	}
	if p.rhymes, err = newClusterIndex("rhyme", false, entries); err != nil {
		return nil, err
	}
	return p, nil
}

// buildCollation derives the sort codes. Every letter with a diacritic gets
// a two-letter code: the Latin base letter, then a letter counting through
// the base's variants (a, à, ả, ã, á, ạ, ă, ằ, ... â, ..., ậ). d and đ are
// coded da and db. Upper case letters get upper case codes.
func (p *phonology) buildCollation() {
	code := func(base rune, n int) string {
		return string([]rune{base, 'a' + rune(n)})
	}
	variants := make(map[rune]int) // Latin base => number of variants coded so far
	for _, row := range toneVowels {
		base := plainVowel[row.lower[0]]
		for t := range row.lower {
			n := variants[base]
			variants[base]++
			lower := code(base, n)
			p.collation[row.lower[t]] = lower
			p.collation[row.upper[t]] = code(unicode.ToUpper(base), n)
		}
	}
	p.collation['d'], p.collation['D'] = code('d', 0), code('D', 0)
	p.collation['đ'], p.collation['Đ'] = code('d', 1), code('D', 1)
}

// strip returns r without its tone mark, keeping letter diacritics.
func (p *phonology) strip(r rune) (rune, Tone) {
	if g, ok := p.glyphs[r]; ok {
		return g.alphabet, g.tone
	}
	return r, Flat
}

// withTone returns the vowel r carrying tone t, keeping r's case. r must be
// untoned. Runes which cannot carry a tone are returned as they are.
func (p *phonology) withTone(r rune, t Tone) rune {
	if row, ok := p.toneRows[r]; ok {
		return row[t]
	}
	return r
}

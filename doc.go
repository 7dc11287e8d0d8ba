/*
Package vietnamese normalizes Vietnamese text.

It places and moves tone marks, strips or re-encodes diacritics, corrects
tone marks placed on the wrong vowel and i/y spelling variants, sorts words
and people's names in Vietnamese alphabetical order, spots words missing from
a dictionary, spells words out for reading aloud and writes numbers as words.

All of it rests on a small phonological model: a syllable is an optional
leading consonant cluster, a rhyme out of a closed list of 157 shapes (a vowel
nucleus of one to three letters plus an optional trailing consonant), and one
of six tones. PlaceAccent splits a syllable along this model, greedily taking
the longest cluster at either edge, and puts the tone mark on the vowel the
orthography asks for:

	PlaceAccent("hoa", Hook)    // "hỏa"
	PlaceAccent("hoan", Hook)   // "hoản"
	PlaceAccent("nghiêng", Acute) // "nghiếng"

Operations are total: text outside the model comes back unchanged instead of
producing an error. PlaceAccentStrict and Decompose report the failures.

Tables are immutable and built on first use, so every function may be called
from concurrent goroutines. Accent-placement and i/y rules and the dictionary
are shipped as embedded data (package data); other rule sets may be loaded
through the reader interfaces, see LoadRulebook and LoadLexicon.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package vietnamese

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vietnamese'
func tracer() tracing.Trace {
	return tracing.Select("vietnamese")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

package vietnamese

// GenerateWords lists every syllable of the phonological model: each rhyme
// with each of the six tones, on its own and after leading consonants. In
// strict mode only the leading consonants a rhyme is known to combine with
// are used, otherwise all of them. Words appear once, in generation order.
func GenerateWords(strict bool) []string {
	words := make([]string, 0, 6*len(syllableShapes)*8)
	seen := make(map[string]bool, cap(words))
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	all := make([]string, len(onsetClusters))
	for i, c := range onsetClusters {
		all[i] = c.cluster
	}
	for _, shape := range syllableShapes {
		onsets := shape.onsets
		if !strict {
			onsets = all
		}
		for tone := Flat; tone <= DotBelow; tone++ {
			add(PlaceAccent(shape.rhyme, tone))
			for _, onset := range onsets {
				add(PlaceAccent(onset+shape.rhyme, tone))
			}
		}
	}
	tracer().Infof("generated %d words (strict=%v) from %d rhymes", len(words), strict, len(syllableShapes))
	return words
}

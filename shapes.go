package vietnamese

// syllableShapes lists every rhyme (vowel nucleus plus optional trailing
// consonant) together with the leading consonant clusters it combines with.
// An empty list means the rhyme only occurs without a leading consonant.
var syllableShapes = []struct {
	rhyme  string
	onsets []string
}{
	{"a", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "p", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ă", nil},
	{"â", nil},
	{"e", []string{"b", "ch", "d", "đ", "gh", "gi", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ê", []string{"b", "ch", "d", "đ", "gh", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"i", []string{"b", "ch", "d", "đ", "g", "gh", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"o", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ô", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ơ", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"u", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ư", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v", "x"}},
	{"y", []string{"h", "k", "l", "m", "ngh", "qu", "s", "t", "th", "v"}},
	{"ac", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ai", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"am", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"an", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ao", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ap", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"at", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"au", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ay", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ăc", []string{"b", "c", "ch", "d", "đ", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v"}},
	{"ăm", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "qu", "r", "s", "t", "th", "tr", "x"}},
	{"ăn", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v"}},
	{"ăp", []string{"b", "c", "ch", "đ", "g", "kh", "l", "n", "ph", "qu", "r", "s", "t", "th"}},
	{"ăt", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "ng", "nh", "r", "s", "t", "th", "v", "x"}},
	{"âc", []string{"b", "g", "gi", "kh", "n", "nh", "t", "x"}},
	{"âm", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "x"}},
	{"ân", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "l", "m", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"âp", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "v", "x"}},
	{"ât", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v"}},
	{"âu", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ây", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ec", []string{"kh", "l", "m", "r", "s"}},
	{"em", []string{"ch", "đ", "gh", "gi", "h", "k", "l", "n", "nh", "r", "t", "th", "x"}},
	{"en", []string{"b", "ch", "đ", "gh", "gi", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "th", "v", "x"}},
	{"eo", []string{"b", "ch", "d", "đ", "gh", "gi", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ep", []string{"b", "ch", "d", "đ", "gh", "h", "k", "kh", "l", "m", "n", "nh", "ph", "t", "th", "x"}},
	{"et", []string{"b", "ch", "d", "đ", "gh", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "qu", "r", "s", "t", "tr", "v", "x"}},
	{"êm", []string{"ch", "đ", "k", "n", "th", "x"}},
	{"ên", []string{"b", "đ", "h", "k", "l", "m", "n", "nh", "ph", "qu", "r", "s", "t", "tr", "v"}},
	{"êp", []string{"b", "n", "r", "s", "th", "x"}},
	{"êt", []string{"b", "ch", "d", "h", "k", "l", "m", "n", "qu", "r", "s", "t", "v", "x"}},
	{"êu", []string{"b", "đ", "k", "l", "m", "n", "ngh", "r", "s", "t", "th", "tr"}},
	{"ia", []string{"b", "ch", "d", "đ", "k", "kh", "l", "m", "n", "ngh", "p", "ph", "r", "t", "th", "v", "x"}},
	{"ic", []string{"h", "t"}},
	{"im", []string{"b", "ch", "d", "gh", "h", "k", "l", "m", "nh", "ph", "s", "t", "th"}},
	{"in", []string{"b", "ch", "k", "m", "n", "nh", "ph", "t", "th", "v", "x"}},
	{"ip", []string{"b", "ch", "d", "k", "m", "nh", "s"}},
	{"it", []string{"b", "ch", "đ", "h", "k", "kh", "m", "n", "ngh", "r", "s", "t", "th", "v", "x"}},
	{"iu", []string{"b", "ch", "d", "h", "l", "n", "r", "t", "th", "x"}},
	{"oa", []string{"d", "đ", "g", "h", "kh", "l", "ng", "t", "th", "x"}},
	{"oc", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v"}},
	{"oe", []string{"h", "kh", "l", "ng", "nh", "t", "x"}},
	{"oi", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v", "x"}},
	{"om", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "n", "ng", "nh", "ph", "r", "s", "t", "v", "x"}},
	{"on", []string{"b", "c", "ch", "đ", "g", "gi", "h", "l", "m", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v"}},
	{"op", []string{"b", "c", "ch", "g", "h", "m", "ng", "nh", "th"}},
	{"ot", []string{"b", "c", "ch", "đ", "gi", "kh", "l", "m", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ôc", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "ph", "qu", "r", "s", "t", "th", "x"}},
	{"ôi", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ôm", []string{"c", "ch", "đ", "g", "h", "n", "nh", "t", "tr", "x"}},
	{"ôn", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "r", "t", "th", "tr", "v", "x"}},
	{"ôp", []string{"b", "c", "ch", "đ", "g", "l", "n", "ng", "r", "s", "t", "th", "x"}},
	{"ôt", []string{"b", "c", "ch", "d", "đ", "g", "h", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "x"}},
	{"ơi", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ơm", []string{"b", "c", "ch", "đ", "n", "r", "s", "th"}},
	{"ơn", []string{"b", "c", "ch", "đ", "g", "gi", "h", "l", "m", "nh", "r", "s", "t", "tr"}},
	{"ơp", []string{"b", "ch", "d", "đ", "h", "kh", "l", "n", "ng", "r"}},
	{"ơt", []string{"b", "c", "ch", "d", "đ", "h", "l", "ng", "nh", "ph", "qu", "r", "s", "th", "v"}},
	{"ua", []string{"b", "c", "ch", "d", "đ", "h", "kh", "l", "m", "n", "nh", "r", "s", "t", "th", "v", "x"}},
	{"uc", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "x"}},
	{"uê", []string{"d", "h", "kh", "s", "t", "th", "v", "x"}},
	{"ui", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"um", []string{"b", "c", "ch", "d", "đ", "gi", "kh", "l", "m", "n", "ng", "nh", "s", "t", "tr", "x"}},
	{"un", []string{"b", "c", "ch", "đ", "gi", "h", "l", "m", "ng", "nh", "ph", "r", "s", "t", "th", "v"}},
	{"up", []string{"b", "c", "ch", "gi", "h", "l", "m", "n", "ng", "r", "s", "t", "th"}},
	{"uơ", []string{"th"}},
	{"ut", []string{"b", "c", "ch", "h", "l", "m", "n", "ng", "ph", "r", "s", "t", "th", "tr", "v"}},
	{"uy", []string{"d", "h", "kh", "l", "ng", "nh", "ph", "s", "t", "th", "tr", "x"}},
	{"ưa", []string{"b", "c", "ch", "d", "đ", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ưc", []string{"b", "c", "ch", "đ", "h", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ưi", []string{"c", "ch", "g", "ng"}},
	{"ưm", []string{"h", "ng"}},
	{"ưt", []string{"b", "c", "d", "đ", "gi", "m", "n", "nh", "s", "v", "x"}},
	{"ưu", []string{"b", "c", "h", "kh", "l", "m", "ng", "s", "t", "tr"}},
	{"yt", []string{"qu"}},
	{"ach", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ang", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"anh", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ăng", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x"}},
	{"âng", []string{"b", "d", "l", "n", "t", "v"}},
	{"eng", []string{"b", "k", "l", "x"}},
	{"êch", []string{"ch", "k", "l", "ng", "nh", "ph", "th", "x"}},
	{"ênh", []string{"b", "ch", "d", "đ", "gh", "h", "k", "l", "m", "ngh", "t", "th", "v"}},
	{"ich", []string{"b", "ch", "d", "đ", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "r", "t", "th", "tr", "x"}},
	{"iêc", []string{"b", "ch", "d", "đ", "gh", "l", "nh", "t", "th", "v", "x"}},
	{"iêm", []string{"b", "ch", "d", "đ", "h", "k", "kh", "l", "n", "ngh", "nh", "ph", "t", "th", "v", "x"}},
	{"iên", []string{"b", "ch", "d", "đ", "gh", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "t", "th", "tr", "v", "x"}},
	{"iêp", []string{"d", "đ", "h", "ngh", "nh", "t", "th"}},
	{"iêt", []string{"b", "ch", "d", "g", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"iêu", []string{"b", "ch", "d", "đ", "h", "k", "kh", "l", "m", "n", "nh", "ph", "r", "s", "t", "th", "tr", "x"}},
	{"inh", []string{"b", "ch", "d", "đ", "h", "k", "kh", "l", "m", "n", "ngh", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"oac", []string{"ch", "kh", "ng"}},
	{"oai", []string{"ch", "đ", "h", "kh", "l", "ng", "nh", "s", "t", "th", "x"}},
	{"oam", []string{"ng"}},
	{"oan", []string{"d", "đ", "h", "kh", "l", "ng", "s", "t", "x"}},
	{"oat", []string{"đ", "h", "kh", "l", "s", "t", "th"}},
	{"oay", []string{"h", "kh", "l", "ng", "x"}},
	{"oăc", []string{"h", "ng"}},
	{"oăm", nil},
	{"oăn", []string{"th", "x"}},
	{"oăt", []string{"h", "th"}},
	{"oen", []string{"h", "kh"}},
	{"oeo", []string{"ng"}},
	{"oet", []string{"kh", "l", "t"}},
	{"ong", []string{"b", "c", "ch", "d", "đ", "gi", "h", "l", "m", "n", "ng", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ông", []string{"b", "c", "ch", "d", "đ", "g", "gh", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"uân", []string{"ch", "d", "h", "kh", "l", "nh", "t", "th", "x"}},
	{"uât", []string{"d", "kh", "l", "s", "t", "th", "tr", "x"}},
	{"uây", []string{"kh", "ng"}},
	{"ung", []string{"b", "c", "ch", "d", "đ", "h", "kh", "l", "m", "n", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
	{"uôc", []string{"b", "c", "ch", "đ", "g", "gi", "l", "nh", "r", "t", "th"}},
	{"uôi", []string{"c", "ch", "d", "đ", "m", "n", "ng", "s", "x"}},
	{"uôm", []string{"b", "c", "nh", "th"}},
	{"uôn", []string{"b", "c", "ch", "kh", "l", "m", "ng", "r", "s", "t", "th"}},
	{"uôt", []string{"b", "ch", "r", "t", "th", "tr"}},
	{"uya", []string{"kh"}},
	{"uyt", []string{"h", "s", "t"}},
	{"uyu", []string{"kh"}},
	{"ưng", []string{"b", "c", "ch", "d", "đ", "g", "h", "kh", "l", "m", "n", "ng", "nh", "r", "s", "t", "th", "tr", "v", "x"}},
	{"ươc", []string{"b", "c", "ch", "d", "đ", "kh", "l", "ng", "nh", "ph", "r", "t", "th", "tr", "x"}},
	{"ươi", []string{"b", "c", "d", "đ", "kh", "l", "m", "ng", "r", "s", "t"}},
	{"ươm", []string{"ch", "g", "l", "t"}},
	{"ươn", []string{"b", "l", "tr", "v"}},
	{"ươp", []string{"c", "m"}},
	{"ươt", []string{"l", "m", "ph", "r", "s", "t", "th", "tr", "v"}},
	{"ươu", []string{"b", "h", "kh", "r"}},
	{"yên", []string{"qu"}},
	{"yêt", []string{"qu"}},
	{"yêu", nil},
	{"ynh", []string{"qu"}},
	{"iêng", []string{"b", "ch", "đ", "g", "k", "kh", "l", "ngh", "r", "s", "t", "th", "v"}},
	{"oach", []string{"x"}},
	{"oang", []string{"ch", "đ", "h", "kh", "l", "nh", "th", "x"}},
	{"oanh", []string{"d", "h", "l", "t", "x"}},
	{"oăng", []string{"gi", "h"}},
	{"oong", []string{"b", "c", "đ", "k", "x"}},
	{"uâng", []string{"kh"}},
	{"uêch", []string{"kh"}},
	{"uênh", []string{"h"}},
	{"uông", []string{"b", "c", "ch", "đ", "h", "kh", "l", "m", "n", "t", "th", "tr", "v", "x"}},
	{"uych", nil},
	{"uyên", []string{"ch", "d", "h", "kh", "l", "ng", "nh", "s", "t", "th", "tr", "x"}},
	{"uyêt", []string{"d", "h", "kh", "ng", "t", "th", "x"}},
	{"uynh", []string{"h", "kh"}},
	{"ương", []string{"b", "c", "ch", "d", "đ", "g", "gi", "h", "kh", "l", "m", "n", "ng", "nh", "ph", "r", "s", "t", "th", "tr", "v", "x"}},
}

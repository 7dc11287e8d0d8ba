package vietnamese

// letters is the Vietnamese alphabet in alphabetical order, with the name
// each letter is read with when spelling a word.
var letters = []struct {
	lower, upper rune
	name         string
}{
	{'a', 'A', "a"}, {'ă', 'Ă', "á"}, {'â', 'Â', "ớ"}, {'b', 'B', "bờ"},
	{'c', 'C', "cờ"}, {'d', 'D', "dờ"}, {'đ', 'Đ', "đờ"}, {'e', 'E', "e"},
	{'ê', 'Ê', "ê"}, {'g', 'G', "gờ"}, {'h', 'H', "hờ"}, {'i', 'I', "i"},
	{'k', 'K', "k"}, {'l', 'L', "lờ"}, {'m', 'M', "mờ"}, {'n', 'N', "nờ"},
	{'o', 'O', "o"}, {'ô', 'Ô', "ô"}, {'ơ', 'Ơ', "ơ"}, {'p', 'P', "bờ"},
	{'q', 'Q', "quờ"}, {'r', 'R', "rờ"}, {'s', 'S', "sờ"}, {'t', 'T', "tờ"},
	{'u', 'U', "u"}, {'ư', 'Ư', "ư"}, {'v', 'V', "vờ"}, {'x', 'X', "xờ"},
	{'y', 'Y', "y"},
}

// onsetClusters are the consonant clusters which may start a syllable. The
// position in this list is the cluster's ordinal, used as bit index in the
// onset sets of syllableShapes.
var onsetClusters = []struct {
	cluster string
	name    string
}{
	{"b", "bờ"}, {"c", "cờ"}, {"ch", "chờ"}, {"d", "dờ"}, {"đ", "đờ"},
	{"g", "gờ"}, {"gh", "gờ"}, {"gi", "giờ"}, {"h", "hờ"}, {"k", "k"},
	{"kh", "khờ"}, {"l", "lờ"}, {"m", "mờ"}, {"n", "nờ"}, {"ng", "ngờ"},
	{"ngh", "ngờ"}, {"nh", "nhờ"}, {"p", "bờ"}, {"ph", "phờ"}, {"qu", "quờ"},
	{"r", "rờ"}, {"s", "sờ"}, {"t", "tờ"}, {"th", "thờ"}, {"tr", "trờ"},
	{"v", "vờ"}, {"x", "xờ"},
}

// codaClusters are the consonant clusters which may end a syllable.
var codaClusters = []string{"c", "ch", "m", "n", "ng", "nh", "p", "t"}

// toneVowels holds, for each of the twelve vowel letters, the letter itself
// followed by its five toned forms in Tone order.
var toneVowels = []struct {
	lower [6]rune
	upper [6]rune
}{
	{[6]rune{'a', 'à', 'ả', 'ã', 'á', 'ạ'}, [6]rune{'A', 'À', 'Ả', 'Ã', 'Á', 'Ạ'}},
	{[6]rune{'ă', 'ằ', 'ẳ', 'ẵ', 'ắ', 'ặ'}, [6]rune{'Ă', 'Ằ', 'Ẳ', 'Ẵ', 'Ắ', 'Ặ'}},
	{[6]rune{'â', 'ầ', 'ẩ', 'ẫ', 'ấ', 'ậ'}, [6]rune{'Â', 'Ầ', 'Ẩ', 'Ẫ', 'Ấ', 'Ậ'}},
	{[6]rune{'e', 'è', 'ẻ', 'ẽ', 'é', 'ẹ'}, [6]rune{'E', 'È', 'Ẻ', 'Ẽ', 'É', 'Ẹ'}},
	{[6]rune{'ê', 'ề', 'ể', 'ễ', 'ế', 'ệ'}, [6]rune{'Ê', 'Ề', 'Ể', 'Ễ', 'Ế', 'Ệ'}},
	{[6]rune{'i', 'ì', 'ỉ', 'ĩ', 'í', 'ị'}, [6]rune{'I', 'Ì', 'Ỉ', 'Ĩ', 'Í', 'Ị'}},
	{[6]rune{'o', 'ò', 'ỏ', 'õ', 'ó', 'ọ'}, [6]rune{'O', 'Ò', 'Ỏ', 'Õ', 'Ó', 'Ọ'}},
	{[6]rune{'ô', 'ồ', 'ổ', 'ỗ', 'ố', 'ộ'}, [6]rune{'Ô', 'Ồ', 'Ổ', 'Ỗ', 'Ố', 'Ộ'}},
	{[6]rune{'ơ', 'ờ', 'ở', 'ỡ', 'ớ', 'ợ'}, [6]rune{'Ơ', 'Ờ', 'Ở', 'Ỡ', 'Ớ', 'Ợ'}},
	{[6]rune{'u', 'ù', 'ủ', 'ũ', 'ú', 'ụ'}, [6]rune{'U', 'Ù', 'Ủ', 'Ũ', 'Ú', 'Ụ'}},
	{[6]rune{'ư', 'ừ', 'ử', 'ữ', 'ứ', 'ự'}, [6]rune{'Ư', 'Ừ', 'Ử', 'Ữ', 'Ứ', 'Ự'}},
	{[6]rune{'y', 'ỳ', 'ỷ', 'ỹ', 'ý', 'ỵ'}, [6]rune{'Y', 'Ỳ', 'Ỷ', 'Ỹ', 'Ý', 'Ỵ'}},
}

// plainVowel maps a vowel letter to the Latin letter it is written with
// when all diacritics are dropped.
var plainVowel = map[rune]rune{
	'a': 'a', 'ă': 'a', 'â': 'a', 'e': 'e', 'ê': 'e', 'i': 'i',
	'o': 'o', 'ô': 'o', 'ơ': 'o', 'u': 'u', 'ư': 'u', 'y': 'y',
}

// glyph describes one character of the accent table: what it becomes
// without any diacritics, without tone only, and the tone it carries.
type glyph struct {
	plain    rune
	alphabet rune
	tone     Tone
}

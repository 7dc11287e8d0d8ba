package vietnamese

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatName writes a person's or place's name the way Vietnamese names are
// written: runs of white space collapse to one space, and every part is
// lower case except for its first letter.
//
//	"  nguyễn   VĂN đảnh " => "Nguyễn Văn Đảnh"
func FormatName(text string) string {
	parts := strings.Fields(compose(text))
	if len(parts) == 0 {
		return ""
	}
	lower := cases.Lower(language.Vietnamese)
	upper := cases.Upper(language.Vietnamese)
	for i, part := range parts {
		part = lower.String(part)
		_, size := utf8.DecodeRuneInString(part)
		parts[i] = upper.String(part[:size]) + part[size:]
	}
	return strings.Join(parts, " ")
}

// collapseSpaces replaces every run of white space by a single space and
// trims white space at both ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

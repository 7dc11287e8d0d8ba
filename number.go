package vietnamese

import (
	"math"
	"strings"
)

var digitWords = [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// magnitudes are the words for the groups of three digits, highest first.
var magnitudes = [...]string{"tỉ", "triệu", "nghìn", ""}

const (
	wordHundred  = "trăm"
	wordOddUnits = "lẻ"
	wordNegative = "âm"
	maxAmount    = 1e12
)

// NumberToText writes amount in Vietnamese words. amount is rounded to the
// nearest integer, halves away from zero. Amounts of 10^12 or more (in
// absolute value), NaN and infinities yield "". Negative amounts are read
// with a leading "âm".
//
//	NumberToText(1452369) => "một triệu bốn trăm năm mươi hai nghìn ba trăm sáu mươi chín"
//	NumberToText(1005000) => "một triệu năm nghìn"
func NumberToText(amount float64) string {
	if math.IsNaN(amount) || math.Abs(amount) >= maxAmount {
		return ""
	}
	n := int64(math.Round(amount))
	if n >= maxAmount || n <= -maxAmount {
		return "" // rounded up to 10^12
	}
	if n < 0 {
		return wordNegative + " " + NumberToText(float64(-n))
	}
	if n == 0 {
		return digitWords[0]
	}
	var groups [len(magnitudes)]int
	for i := len(groups) - 1; i >= 0; i-- {
		groups[i] = int(n % 1000)
		n /= 1000
	}
	parts := make([]string, 0, 2*len(groups))
	for i, g := range groups {
		if g == 0 {
			continue
		}
		parts = append(parts, readTriple(g))
		if magnitudes[i] != "" {
			parts = append(parts, magnitudes[i])
		}
	}
	return strings.Join(parts, " ")
}

// readTriple reads a group of three digits, 0 < n < 1000. A group with
// leading zeros is read without them: 5 is "năm", not "không trăm lẻ năm".
func readTriple(n int) string {
	hundreds, tens, units := n/100, n/10%10, n%10
	switch {
	case hundreds == 0:
		return readPair(n)
	case tens > 0:
		return digitWords[hundreds] + " " + wordHundred + " " + readPair(n%100)
	case units > 0:
		return digitWords[hundreds] + " " + wordHundred + " " + wordOddUnits + " " + digitWords[units]
	default:
		return digitWords[hundreds] + " " + wordHundred
	}
}

// readPair reads 0 <= n < 100.
func readPair(n int) string {
	tens, units := n/10, n%10
	if tens == 0 {
		return digitWords[units]
	}
	var b strings.Builder
	if tens == 1 {
		b.WriteString("mười")
	} else {
		b.WriteString(digitWords[tens] + " mươi")
	}
	switch {
	case units == 0:
		// "mười", "hai mươi"
	case units == 1 && tens > 1:
		b.WriteString(" mốt")
	case units == 4 && tens == 4:
		b.WriteString(" tư")
	case units == 5:
		b.WriteString(" lăm")
	default:
		b.WriteString(" " + digitWords[units])
	}
	return b.String()
}

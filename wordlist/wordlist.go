// Package wordlist reads plain dictionary files: one word per line, blank
// lines and lines starting with '#' are ignored, surrounding white space is
// trimmed. Reader satisfies vietnamese.WordReader.
package wordlist

import (
	"bufio"
	"io"
	"strings"
)

// Reader streams words from a word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a reader for the word list in reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line the last word was read from.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		word := strings.TrimSpace(r.scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		return word, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

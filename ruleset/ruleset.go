/*
Package ruleset reads accent placement and i/y spelling rules from YAML.

Accent placement rules are a sequence of rules, each a sequence of
[wrong, right] pairs, one pair per case variant:

	- [["aì", "ài"], ["Aì", "Ài"], ["AÌ", "ÀI"]]
	- [["oà", "òa"], ["Oà", "Òa"], ["OÀ", "ÒA"]]

I/Y rules are grouped by letter and tier. Letters and tiers are read in file
order, which is the order the rules are applied in:

	- letter: i
	  tiers:
	  - tier: only
	    rules:
	    - pairs: [["by", "bi"], ["By", "Bi"], ["BY", "BI"]]
	  - tier: major
	    rules:
	    - pairs: [["kì", "kỳ"], ["Kì", "Kỳ"], ["KÌ", "KỲ"]]
	      bounded: true

The readers here satisfy vietnamese.PlacementReader and
vietnamese.IYReader.
*/
package ruleset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PlacementReader streams accent placement rules.
type PlacementReader struct {
	rules [][][]string
	index int
}

// NewPlacementReader decodes the YAML document in reader.
func NewPlacementReader(reader io.Reader) (*PlacementReader, error) {
	r := &PlacementReader{}
	if err := yaml.NewDecoder(reader).Decode(&r.rules); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding placement rules: %w", err)
	}
	return r, nil
}

// Len returns the number of rules in the document.
func (r *PlacementReader) Len() int {
	return len(r.rules)
}

// Next returns the pairs of the next rule.
// It returns io.EOF when exhausted.
func (r *PlacementReader) Next() ([][2]string, error) {
	if r.index >= len(r.rules) {
		return nil, io.EOF
	}
	r.index++
	pairs, err := decodePairs(r.rules[r.index-1])
	if err != nil {
		return nil, fmt.Errorf("placement rule %d: %w", r.index, err)
	}
	return pairs, nil
}

type iyLetter struct {
	Letter string   `yaml:"letter"`
	Tiers  []iyTier `yaml:"tiers"`
}

type iyTier struct {
	Tier  string   `yaml:"tier"`
	Rules []iyRule `yaml:"rules"`
}

type iyRule struct {
	Pairs   [][]string `yaml:"pairs"`
	Bounded bool       `yaml:"bounded"`
}

type iyEntry struct {
	tier string
	rule iyRule
}

// IYReader streams i/y spelling rules, flattened into application order.
type IYReader struct {
	entries []iyEntry
	index   int
}

// NewIYReader decodes the YAML document in reader.
func NewIYReader(reader io.Reader) (*IYReader, error) {
	var letters []iyLetter
	if err := yaml.NewDecoder(reader).Decode(&letters); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding i/y rules: %w", err)
	}
	r := &IYReader{}
	for _, l := range letters {
		if l.Letter != "i" && l.Letter != "y" {
			return nil, fmt.Errorf("i/y rules for unexpected letter %q", l.Letter)
		}
		for _, t := range l.Tiers {
			for _, rule := range t.Rules {
				r.entries = append(r.entries, iyEntry{tier: l.Letter + "/" + t.Tier, rule: rule})
			}
		}
	}
	return r, nil
}

// Len returns the number of rules in the document.
func (r *IYReader) Len() int {
	return len(r.entries)
}

// Next returns the next rule as (tier, pairs, bounded), tier being
// "letter/tier", e.g. "y/major".
// It returns io.EOF when exhausted.
func (r *IYReader) Next() (string, [][2]string, bool, error) {
	if r.index >= len(r.entries) {
		return "", nil, false, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	pairs, err := decodePairs(e.rule.Pairs)
	if err != nil {
		return "", nil, false, fmt.Errorf("i/y rule %d (%s): %w", r.index, e.tier, err)
	}
	return e.tier, pairs, e.rule.Bounded, nil
}

func decodePairs(raw [][]string) ([][2]string, error) {
	pairs := make([][2]string, 0, len(raw))
	for _, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("expected [wrong, right] pair, got %d strings", len(p))
		}
		pairs = append(pairs, [2]string{p[0], p[1]})
	}
	return pairs, nil
}

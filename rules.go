package vietnamese

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
)

// PlacementReader yields accent placement rules one by one. A rule is a
// list of (wrong, right) pairs, usually one each for lower case, title case
// and upper case. It should return io.EOF when the stream is exhausted.
type PlacementReader interface {
	Next() (pairs [][2]string, err error)
}

// IYReader yields i/y spelling rules one by one, in the order they are to
// be applied. tier is one of IYTiers. A bounded rule only matches whole
// words. It should return io.EOF when the stream is exhausted.
type IYReader interface {
	Next() (tier string, pairs [][2]string, bounded bool, err error)
}

// IYTiers lists the i/y rule tiers in the order they are applied: first
// every i rule, then every y rule; within a letter, unconditional rewrites
// (only), then the dominant spelling (major), then exceptions to it (fix).
var IYTiers = []string{"i/only", "i/major", "i/fix", "y/only", "y/major", "y/fix"}

// ErrRuleOrder is returned by LoadRulebook if i/y rules arrive out of tier order.
var ErrRuleOrder = errors.New("i/y rule tiers out of order")

// substitution rewrites a set of case variants of one string.
type substitution struct {
	pairs    [][2]string
	patterns []*regexp.Regexp // for bounded substitutions, one per pair
}

// nonWord is a rune which cannot be part of a word.
const nonWord = `[^\p{L}\p{M}\p{N}_]`

func newSubstitution(pairs [][2]string, bounded bool) (substitution, error) {
	s := substitution{}
	for _, p := range pairs {
		if p[0] == "" {
			continue
		}
		s.pairs = append(s.pairs, [2]string{compose(p[0]), compose(p[1])})
	}
	if len(s.pairs) == 0 {
		return s, errors.New("rule without pairs")
	}
	if !bounded {
		return s, nil
	}
	for _, p := range s.pairs {
		re, err := regexp.Compile(`(^|` + nonWord + `)` + regexp.QuoteMeta(p[0]) + `(` + nonWord + `|$)`)
		if err != nil {
			return s, err
		}
		s.patterns = append(s.patterns, re)
	}
	return s, nil
}

func (s substitution) bounded() bool {
	return s.patterns != nil
}

// apply rewrites text, one case variant after the other. A bounded match
// consumes the separators around it, so of two matches sharing a single
// separator only the first is rewritten.
func (s substitution) apply(text string) string {
	for i, p := range s.pairs {
		if !strings.Contains(text, p[0]) {
			continue
		}
		if s.bounded() {
			repl := "${1}" + strings.ReplaceAll(p[1], "$", "$$") + "${2}"
			text = s.patterns[i].ReplaceAllString(text, repl)
		} else {
			text = strings.ReplaceAll(text, p[0], p[1])
		}
	}
	return text
}

type iyTier struct {
	name  string
	rules []substitution
}

// Rulebook holds the rules for FixAccent and FixIY. It is immutable once
// loaded and may be shared between goroutines.
type Rulebook struct {
	placements []substitution
	tiers      []iyTier
	Identifier string // identifies the rule book
}

// LoadRulebook compiles accent placement and i/y rules from streaming,
// format-agnostic sources. Either reader may be nil.
//
// File formats are parsed outside of this package; package ruleset reads
// the YAML format the default rules are shipped in.
func LoadRulebook(name string, placements PlacementReader, iy IYReader) (*Rulebook, error) {
	rb := &Rulebook{Identifier: fmt.Sprintf("rules: %s", name)}
	if placements != nil {
		for {
			pairs, err := placements.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			s, err := newSubstitution(pairs, false)
			if err != nil {
				return nil, fmt.Errorf("placement rule %d: %w", len(rb.placements)+1, err)
			}
			rb.placements = append(rb.placements, s)
		}
	}
	if iy != nil {
		if err := rb.loadIY(iy); err != nil {
			return nil, err
		}
	}
	bounded := 0
	for _, t := range rb.tiers {
		for _, r := range t.rules {
			if r.bounded() {
				bounded++
			}
		}
	}
	tracer().Infof("%s: %d placement rules, %d i/y tiers, %d bounded i/y rules",
		rb.Identifier, len(rb.placements), len(rb.tiers), bounded)
	return rb, nil
}

func (rb *Rulebook) loadIY(reader IYReader) error {
	current := -1
	for {
		tier, pairs, bounded, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		k := slices.Index(IYTiers, tier)
		if k < 0 {
			return fmt.Errorf("unknown i/y rule tier %q", tier)
		}
		if k < current {
			return fmt.Errorf("%w: %s after %s", ErrRuleOrder, tier, IYTiers[current])
		}
		if k > current {
			rb.tiers = append(rb.tiers, iyTier{name: tier})
			current = k
		}
		s, err := newSubstitution(pairs, bounded)
		if err != nil {
			return fmt.Errorf("i/y rule in tier %s: %w", tier, err)
		}
		t := &rb.tiers[len(rb.tiers)-1]
		t.rules = append(t.rules, s)
	}
}

// Tiers returns the names of the loaded i/y tiers in application order.
func (rb *Rulebook) Tiers() []string {
	names := make([]string, len(rb.tiers))
	for i, t := range rb.tiers {
		names[i] = t.name
	}
	return names
}

// FixAccent moves tone marks which sit on the wrong vowel of a diphthong,
// e.g. "Vịêt" => "Việt", "hoà" => "hòa". Rules are applied in order.
func (rb *Rulebook) FixAccent(text string) string {
	if text == "" {
		return text
	}
	text = compose(text)
	for _, s := range rb.placements {
		text = s.apply(text)
	}
	return text
}

// FixIY rewrites i/y spelling variants to the prevalent one, tier by tier.
func (rb *Rulebook) FixIY(text string) string {
	if text == "" {
		return text
	}
	text = compose(text)
	for _, t := range rb.tiers {
		for _, s := range t.rules {
			text = s.apply(text)
		}
	}
	return text
}

// FixAccent corrects tone mark placement using the default rule book.
func FixAccent(text string) string {
	return defaultRulebook().FixAccent(text)
}

// FixIY corrects i/y spelling using the default rule book.
func FixIY(text string) string {
	return defaultRulebook().FixIY(text)
}

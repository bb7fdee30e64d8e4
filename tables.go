package krutidev

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

//go:generate go run ./internal/generator

// Mapping is one substitution rule: a legacy pattern and the Unicode
// replacement for it. Patterns are matched literally, never as regular
// expressions.
type Mapping struct {
	From string
	To   string
}

// Table is an immutable, priority-ordered set of substitution rules.
//
// Priority is pattern length in runes, longest first, so that a conjunct
// like "vks" (ओ) is consumed before its prefix "vk" (आ) can claim the
// first two units. Patterns of equal length keep the order in which they
// were declared; that order is observable whenever one rule's replacement
// contains another rule's pattern and must therefore stay stable.
type Table struct {
	rules []Mapping
	index *trie.Trie
}

// CollisionError reports duplicate patterns found while building a Table.
// The original Kruti Dev tables ship with colliding quote entries, and a
// collision silently shadowing a rule corrupts output with no other
// symptom, so construction refuses them loudly.
type CollisionError struct {
	Patterns []string
}

func (e *CollisionError) Error() string {
	quoted := make([]string, len(e.Patterns))
	for i, p := range e.Patterns {
		quoted[i] = strconv.Quote(p)
	}
	return "mapping table: colliding patterns: " + strings.Join(quoted, ", ")
}

// NewTable builds a Table from a list of mappings.
//
// Every pattern must be non-empty and free of newlines (the streaming
// transformer cuts buffers at line ends and a pattern spanning a cut
// would convert differently from the in-memory path). Duplicate patterns
// yield a *CollisionError naming all offenders.
func NewTable(mappings []Mapping) (*Table, error) {
	t := &Table{
		rules: make([]Mapping, 0, len(mappings)),
		index: trie.New(),
	}
	var collisions []string
	for _, m := range mappings {
		if m.From == "" {
			return nil, errEmptyPattern
		}
		if strings.ContainsRune(m.From, '\n') {
			return nil, &PatternError{Pattern: m.From, Reason: "pattern contains newline"}
		}
		if _, dup := t.index.Find(m.From); dup {
			collisions = append(collisions, m.From)
			continue
		}
		t.index.Add(m.From, m.To)
		t.rules = append(t.rules, m)
	}
	if len(collisions) > 0 {
		tracer().Errorf("mapping table rejected, %d colliding patterns", len(collisions))
		return nil, &CollisionError{Patterns: collisions}
	}
	sort.SliceStable(t.rules, func(i, j int) bool {
		return utf8.RuneCountInString(t.rules[i].From) > utf8.RuneCountInString(t.rules[j].From)
	})
	return t, nil
}

// PatternError reports a single malformed pattern.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return "mapping table: pattern " + strconv.Quote(e.Pattern) + ": " + e.Reason
}

var errEmptyPattern = &PatternError{Reason: "empty pattern"}

// BuiltinMappings returns copies of the built-in Kruti Dev 010 mapping
// lists, in declaration order, for callers that extend or filter them
// before building a converter.
func BuiltinMappings() (multi, single []Mapping) {
	multi = make([]Mapping, len(multiUnitMappings))
	copy(multi, multiUnitMappings)
	single = make([]Mapping, len(singleUnitMappings))
	copy(single, singleUnitMappings)
	return multi, single
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the table's rules in application order, longest
// pattern first.
func (t *Table) Rules() []Mapping {
	rules := make([]Mapping, len(t.rules))
	copy(rules, t.rules)
	return rules
}

// Lookup returns the replacement for an exact pattern.
func (t *Table) Lookup(pattern string) (string, bool) {
	node, ok := t.index.Find(pattern)
	if !ok {
		return "", false
	}
	return node.Meta().(string), true
}

// Overlap records a pattern that is a proper prefix of another pattern in
// the same table. The longer pattern always wins the overlapping text
// region; Overlaps makes these precedence relations inspectable.
type Overlap struct {
	Outer string // the longer pattern
	Inner string // a proper prefix of Outer
}

// Overlaps reports every pair of patterns where one is a proper prefix of
// the other, sorted by Outer then Inner. The built-in multi-unit table
// has exactly four such pairs ([+k/[+, vks/vk, vkS/vk, =kk/=k).
func (t *Table) Overlaps() []Overlap {
	var overlaps []Overlap
	for _, m := range t.rules {
		for _, outer := range t.index.PrefixSearch(m.From) {
			if outer != m.From {
				overlaps = append(overlaps, Overlap{Outer: outer, Inner: m.From})
			}
		}
	}
	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].Outer != overlaps[j].Outer {
			return overlaps[i].Outer < overlaps[j].Outer
		}
		return overlaps[i].Inner < overlaps[j].Inner
	})
	return overlaps
}

// apply rewrites text by every rule in priority order. Each rule replaces
// all its literal occurrences over the whole buffer before the next rule
// runs, so a later rule may match text produced by an earlier one. That
// is the behavior the legacy tables were written against and tuning it
// away would change output for overlapping patterns.
func (t *Table) apply(text string) string {
	for _, m := range t.rules {
		text = strings.ReplaceAll(text, m.From, m.To)
	}
	return text
}

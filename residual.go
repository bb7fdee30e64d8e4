package krutidev

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/unicode/runenames"
)

// acceptedRanges lists the code-point blocks that may appear in converted
// output: printable ASCII, Devanagari (which contains danda and double
// danda), and Gurmukhi, a block the legacy fonts share glyph ranges with.
// Whitespace is accepted separately via unicode.IsSpace.
var acceptedRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0020, Hi: 0x007e, Stride: 1}, // printable ASCII
		{Lo: 0x0900, Hi: 0x097f, Stride: 1}, // Devanagari
		{Lo: 0x0a00, Hi: 0x0a7f, Stride: 1}, // Gurmukhi
	},
	LatinOffset: 1,
}

// Accepted reports whether a code point may appear in converted output
// without being listed as a residual.
func Accepted(r rune) bool {
	return unicode.Is(acceptedRanges, r) || unicode.IsSpace(r)
}

// Residual is one code point that survived conversion outside the
// accepted ranges, with its occurrence count and the rune offset of its
// first occurrence in the converted text.
type Residual struct {
	Rune  rune
	Count int
	First int
}

// Result is the outcome of one conversion call. Conversion never fails;
// whether residuals constitute an error is the caller's decision.
type Result struct {
	Text      string
	Residuals []Residual
}

// Clean reports whether the conversion left no residuals.
func (r Result) Clean() bool {
	return len(r.Residuals) == 0
}

// ResidualReport renders the residual list for diagnostic display, one
// line per code point with its Unicode character name:
//
//	U+00D9 'Ù' count=1 first=3 LATIN CAPITAL LETTER U WITH GRAVE
//
// The report is empty for clean results.
func (r Result) ResidualReport() string {
	if r.Clean() {
		return ""
	}
	var b strings.Builder
	for _, res := range r.Residuals {
		fmt.Fprintf(&b, "U+%04X %q count=%d first=%d %s\n",
			res.Rune, res.Rune, res.Count, res.First, runenames.Name(res.Rune))
	}
	return b.String()
}

// scanResiduals classifies every rune of the converted text against the
// accepted ranges. dangling, when non-negative, is the index of a
// trailing reorder marker; the marker is an accepted ASCII letter, but a
// marker without a unit to attach to is a conversion defect and is
// reported like any unmapped code point.
//
// The scan aggregates into a treemap keyed by code point, so the returned
// list is sorted by code point and deterministic.
func scanResiduals(runes []rune, dangling int) []Residual {
	var found *treemap.Map
	record := func(r rune, pos int) {
		if found == nil {
			found = treemap.NewWith(utils.RuneComparator)
		}
		if v, ok := found.Get(r); ok {
			v.(*Residual).Count++
			return
		}
		found.Put(r, &Residual{Rune: r, Count: 1, First: pos})
	}
	for i, r := range runes {
		if !Accepted(r) {
			record(r, i)
		}
	}
	if dangling >= 0 {
		record(reorderMarker, dangling)
	}
	if found == nil {
		return nil
	}
	residuals := make([]Residual, 0, found.Size())
	found.Each(func(_, v interface{}) {
		residuals = append(residuals, *v.(*Residual))
	})
	return residuals
}

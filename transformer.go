package krutidev

import (
	"bytes"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/transform"
)

// Transformer is the streaming variant of the converter. It implements
// golang.org/x/text/transform.Transformer, so it plugs into
// transform.NewReader, transform.NewWriter and transform.String.
//
// Substitution patterns never contain a newline (NewTable enforces this)
// and the reorder marker binds at most one following rune, so converting
// buffered input up to its last line break yields output byte-identical
// to a whole-text Convert. Input is buffered until a line break arrives
// or the stream ends; a stream without any line breaks is converted in
// one piece at EOF.
//
// Residuals accumulate across Transform calls, with first-occurrence
// offsets counted over the whole converted stream, and can be collected
// with Residuals once the stream is drained. Reset clears them.
type Transformer struct {
	conv    *Converter
	src     []byte // buffered input, no complete line inside
	out     []byte // converted output not yet copied to dst
	emitted int    // runes of converted output produced so far
	found   *treemap.Map
}

// Transformer returns a fresh streaming transformer over the converter's
// tables. Transformers are stateful and not safe for concurrent use;
// create one per stream.
func (c *Converter) Transformer() *Transformer {
	return &Transformer{conv: c}
}

var _ transform.Transformer = (*Transformer)(nil)

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t.src = append(t.src, src...)
	nSrc = len(src)
	if cut := bytes.LastIndexByte(t.src, '\n'); cut >= 0 {
		t.flush(t.src[:cut+1])
		n := copy(t.src, t.src[cut+1:])
		t.src = t.src[:n]
	}
	if atEOF && len(t.src) > 0 {
		t.flush(t.src)
		t.src = t.src[:0]
	}
	nDst = copy(dst, t.out)
	if nDst < len(t.out) {
		t.out = t.out[nDst:]
		return nDst, nSrc, transform.ErrShortDst
	}
	t.out = t.out[:0]
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer, discarding buffered input,
// pending output and accumulated residuals.
func (t *Transformer) Reset() {
	t.src = t.src[:0]
	t.out = t.out[:0]
	t.emitted = 0
	t.found = nil
}

// Residuals returns the residual code points seen so far, sorted by code
// point, with counts and first-occurrence rune offsets matching what a
// whole-text Convert of the same stream would report.
func (t *Transformer) Residuals() []Residual {
	if t.found == nil {
		return nil
	}
	residuals := make([]Residual, 0, t.found.Size())
	t.found.Each(func(_, v interface{}) {
		residuals = append(residuals, *v.(*Residual))
	})
	return residuals
}

// flush converts one segment and appends the result to the output
// buffer. Segments end at a line break, except for the final one.
func (t *Transformer) flush(segment []byte) {
	s := borrowScratch()
	defer s.release()
	runes, dangling := reorder(s.runes(t.conv.single.apply(t.conv.multi.apply(string(segment)))))
	for _, res := range scanResiduals(runes, dangling) {
		t.record(res)
	}
	for _, r := range runes {
		t.out = utf8.AppendRune(t.out, r)
	}
	t.emitted += len(runes)
}

func (t *Transformer) record(res Residual) {
	if t.found == nil {
		t.found = treemap.NewWith(utils.RuneComparator)
	}
	if v, ok := t.found.Get(res.Rune); ok {
		v.(*Residual).Count += res.Count
		return
	}
	res.First += t.emitted
	t.found.Put(res.Rune, &res)
}

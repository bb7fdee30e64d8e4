package krutidev

import (
	"context"
	"fmt"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
)

// The legacy encoding writes the short-i matra before the consonant it
// logically follows. Substitution leaves the marker untouched; the
// reordering pass swaps it behind the next unit and materializes the
// matra.
const (
	reorderMarker = 'f'      // legacy unit announcing a short-i matra
	matraShortI   = 'ि' // ि DEVANAGARI VOWEL SIGN I
)

// A Converter translates Kruti Dev encoded text into Unicode Devanagari.
// It is immutable after construction and safe for concurrent use; all
// calls share the same read-only tables.
type Converter struct {
	multi  *Table
	single *Table
}

type converterConfig struct {
	multi       []Mapping
	single      []Mapping
	asciiDigits bool
}

// Option configures NewConverter.
type Option func(*converterConfig)

// WithMappings replaces the built-in mapping lists. A nil slice keeps the
// built-in list for that table, so callers can extend just one of them.
// List order is preserved and breaks ties between patterns of equal
// length.
func WithMappings(multi, single []Mapping) Option {
	return func(cfg *converterConfig) {
		if multi != nil {
			cfg.multi = multi
		}
		if single != nil {
			cfg.single = single
		}
	}
}

// KeepASCIIDigits drops the ten digit rules (0→० … 9→९) so that numbers
// in mixed technical text survive conversion unchanged.
func KeepASCIIDigits() Option {
	return func(cfg *converterConfig) {
		cfg.asciiDigits = true
	}
}

// NewConverter builds a Converter. Without options it uses the built-in
// Kruti Dev 010 tables.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := &converterConfig{
		multi:  multiUnitMappings,
		single: singleUnitMappings,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	single := cfg.single
	if cfg.asciiDigits {
		filtered := make([]Mapping, 0, len(single))
		for _, m := range single {
			if len(m.From) == 1 && m.From[0] >= '0' && m.From[0] <= '9' {
				continue
			}
			filtered = append(filtered, m)
		}
		single = filtered
	}
	multiTab, err := NewTable(cfg.multi)
	if err != nil {
		return nil, fmt.Errorf("multi-unit table: %w", err)
	}
	singleTab, err := NewTable(single)
	if err != nil {
		return nil, fmt.Errorf("single-unit table: %w", err)
	}
	tracer().Infof("converter ready, %d multi-unit and %d single-unit rules",
		multiTab.Len(), singleTab.Len())
	return &Converter{multi: multiTab, single: singleTab}, nil
}

// Tables returns the converter's effective tables in application order.
func (c *Converter) Tables() (multi, single *Table) {
	return c.multi, c.single
}

var (
	defaultOnce sync.Once
	defaultConv *Converter
)

// Default returns the shared converter over the built-in tables.
func Default() *Converter {
	defaultOnce.Do(func() {
		c, err := NewConverter()
		if err != nil {
			panic(err) // built-in tables are generated and collision-free
		}
		defaultConv = c
	})
	return defaultConv
}

// Convert translates legacy text using the built-in tables. It is
// shorthand for Default().Convert(text).
func Convert(text string) Result {
	return Default().Convert(text)
}

// Convert rewrites legacy text into Unicode Devanagari. It never fails:
// units without a mapping pass through unchanged and are reported in
// Result.Residuals (see the package documentation).
func (c *Converter) Convert(text string) Result {
	s := borrowScratch()
	defer s.release()
	runes, dangling := reorder(s.runes(c.single.apply(c.multi.apply(text))))
	return Result{
		Text:      string(runes),
		Residuals: scanResiduals(runes, dangling),
	}
}

// reorder moves each short-i marker behind the unit following it and
// substitutes the matra, in a single forward scan. The unit that was
// moved is not re-examined, so a run of markers resolves strictly left to
// right. A trailing marker has no unit to attach to; it stays in place
// and its index is returned so the caller can flag it.
func reorder(runes []rune) ([]rune, int) {
	dangling := -1
	for i := 0; i < len(runes); i++ {
		if runes[i] != reorderMarker {
			continue
		}
		if i+1 == len(runes) {
			dangling = i
			break
		}
		runes[i] = runes[i+1]
		runes[i+1] = matraShortI
		i++
	}
	return runes, dangling
}

// --- Scratch buffer pool ----------------------------------------------

// Conversion needs one rune buffer per call. The buffers are short-lived
// and all the same shape, and streaming mode converts line by line, so we
// pool them.
type scratch struct {
	buf []rune
}

// runes decodes text into the reused buffer.
func (s *scratch) runes(text string) []rune {
	s.buf = s.buf[:0]
	for _, r := range text {
		s.buf = append(s.buf, r)
	}
	return s.buf
}

type conversionScratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *conversionScratchPool

func init() {
	globalScratchPool = &conversionScratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *scratch {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	return o.(*scratch)
}

// Puts the scratch buffer back into the pool, keeping its capacity.
func (s *scratch) release() {
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}

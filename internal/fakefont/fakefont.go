// Package fakefont provides an in-memory font for tests of the shaping engines.
//
// A Font maps code-points to glyph indices in the order they are added,
// starting at glyph 1. Every glyph has a default advance unless marked as
// zero-width.
package fakefont

import (
	"github.com/npillmayer/otshaping/ot"
)

// DefaultAdvance is the advance of glyphs not marked as zero-width.
const DefaultAdvance = 500

// Font is a map-backed font.
type Font struct {
	cmap      map[rune]ot.GlyphIndex
	zeroWidth map[ot.GlyphIndex]bool
	next      ot.GlyphIndex
}

// New creates a font mapping cps.
func New(cps ...rune) *Font {
	f := &Font{
		cmap:      make(map[rune]ot.GlyphIndex),
		zeroWidth: make(map[ot.GlyphIndex]bool),
		next:      1,
	}
	return f.With(cps...)
}

// With adds glyphs for cps. Code-points already mapped keep their glyph.
func (f *Font) With(cps ...rune) *Font {
	for _, cp := range cps {
		if _, ok := f.cmap[cp]; ok {
			continue
		}
		f.cmap[cp] = f.next
		f.next++
	}
	return f
}

// WithRange adds glyphs for all code-points from..to (inclusive).
func (f *Font) WithRange(from, to rune) *Font {
	for cp := from; cp <= to; cp++ {
		f.With(cp)
	}
	return f
}

// WithZeroWidth adds cps as zero-width glyphs.
func (f *Font) WithZeroWidth(cps ...rune) *Font {
	f.With(cps...)
	for _, cp := range cps {
		f.zeroWidth[f.cmap[cp]] = true
	}
	return f
}

// Without removes the mapping for cps.
func (f *Font) Without(cps ...rune) *Font {
	for _, cp := range cps {
		delete(f.cmap, cp)
	}
	return f
}

// GlyphIndex returns the glyph for cp.
func (f *Font) GlyphIndex(cp rune) (ot.GlyphIndex, bool) {
	gid, ok := f.cmap[cp]
	return gid, ok
}

// GlyphAdvance returns the advance of gid.
func (f *Font) GlyphAdvance(gid ot.GlyphIndex) int {
	if gid == ot.NOTDEF || f.zeroWidth[gid] {
		return 0
	}
	return DefaultAdvance
}

// Glyph returns the glyph for cp, or NOTDEF.
func (f *Font) Glyph(cp rune) ot.GlyphIndex {
	return f.cmap[cp]
}

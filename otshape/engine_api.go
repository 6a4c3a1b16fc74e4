package otshape

import (
	"github.com/npillmayer/otshaping/ot"
)

// Font is the glyph-resolution capability a shaper needs from a font.
//
// Package otquery provides implementations for x/image sfnt fonts and for
// go-text fonts.
type Font interface {
	// GlyphIndex returns the glyph for a code-point, and false if the font
	// does not map the code-point.
	GlyphIndex(cp rune) (ot.GlyphIndex, bool)
	// GlyphAdvance returns the horizontal advance of a glyph in font units.
	GlyphAdvance(gid ot.GlyphIndex) int
}

// TryGetGlyph resolves cp in font f. A nil font resolves nothing.
func TryGetGlyph(f Font, cp rune) (ot.GlyphIndex, bool) {
	if f == nil {
		return ot.NOTDEF, false
	}
	gid, ok := f.GlyphIndex(cp)
	if !ok || gid == ot.NOTDEF {
		return ot.NOTDEF, false
	}
	return gid, true
}

// IsZeroWidth reports whether cp maps to a glyph with zero advance in f.
// Code-points the font cannot resolve are not considered zero-width.
func IsZeroWidth(f Font, cp rune) bool {
	gid, ok := TryGetGlyph(f, cp)
	if !ok {
		return false
	}
	return f.GlyphAdvance(gid) == 0
}

// Glyph is a (code-point, glyph) pair used for structural edits of a collection.
type Glyph struct {
	Codepoint rune
	ID        ot.GlyphIndex
}

// GlyphShapingCollection is the index-addressed glyph sequence a shaper works on.
//
// Feature operations on an index outside [0, Len()) are ignored.
type GlyphShapingCollection interface {
	Len() int
	IsVerticalLayoutMode() bool
	GlyphShapingData(i int) *GlyphShapingData
	// AddShapingFeature records entry at glyph i, replacing the state of an
	// entry with the same tag.
	AddShapingFeature(i int, entry TagEntry)
	// EnableShapingFeature switches tag on at glyph i.
	EnableShapingFeature(i int, tag ot.Tag)
	// DisableShapingFeature switches tag off at glyph i.
	DisableShapingFeature(i int, tag ot.Tag)
}

// SubstitutionCollection is a collection whose glyph identities may still change.
// Shapers use it to compose and decompose glyphs before GSUB is applied.
type SubstitutionCollection interface {
	GlyphShapingCollection
	// Replace replaces glyph i by len(glyphs) new glyphs. The new records
	// inherit font, direction, cluster and features of the replaced one.
	Replace(i int, glyphs []Glyph)
	// ReplaceRange collapses count glyphs starting at i into a single glyph g.
	ReplaceRange(i, count int, g Glyph)
	// MoveGlyph moves glyph from to position to, shifting the glyphs in between.
	MoveGlyph(from, to int)
}

// Shaper assigns OpenType features to a span of a glyph collection.
//
// AssignFeatures is called once per script-homogeneous span. It may be called
// repeatedly on one shaper; StageFeatures accumulates over all calls.
type Shaper interface {
	Name() string
	AssignFeatures(c GlyphShapingCollection, index, count int)
	StageFeatures() []ot.Tag
}

package otquery

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
)

// GoText adapts a go-text font face to otshape.Font.
type GoText struct {
	face *font.Face
}

var _ otshape.Font = GoText{}

// ParseGoText parses a TrueType or OpenType font from memory into a go-text face.
func ParseGoText(data []byte) (GoText, error) {
	if len(data) == 0 {
		return GoText{}, ErrNoFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return GoText{}, fmt.Errorf("otquery: cannot parse font: %w", err)
	}
	return NewGoText(face), nil
}

// NewGoText wraps a go-text face.
func NewGoText(face *font.Face) GoText {
	return GoText{face: face}
}

// Face returns the wrapped face.
func (f GoText) Face() *font.Face {
	return f.face
}

// GlyphIndex returns the glyph for a code-point.
func (f GoText) GlyphIndex(cp rune) (ot.GlyphIndex, bool) {
	if f.face == nil {
		return ot.NOTDEF, false
	}
	gid, ok := f.face.NominalGlyph(cp)
	if !ok || gid == 0 || gid > 0xFFFF {
		return ot.NOTDEF, false
	}
	return ot.GlyphIndex(gid), true
}

// GlyphAdvance returns the horizontal advance of a glyph in font units.
func (f GoText) GlyphAdvance(gid ot.GlyphIndex) int {
	if f.face == nil {
		return 0
	}
	return int(f.face.HorizontalAdvance(font.GID(gid)))
}

// FontMetrics retrieves selected metrics of the font.
func (f GoText) FontMetrics() FontMetricsInfo {
	if f.face == nil {
		return FontMetricsInfo{}
	}
	metrics := FontMetricsInfo{UnitsPerEm: sfntUnits(f.face.Upem())}
	if ext, ok := f.face.FontHExtents(); ok {
		metrics.Ascent = sfntUnits(ext.Ascender)
		metrics.Descent = sfntUnits(ext.Descender)
		metrics.LineGap = sfntUnits(ext.LineGap)
	}
	return metrics
}

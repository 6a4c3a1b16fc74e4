package otquery

import (
	"fmt"

	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT adapts an x/image sfnt font to otshape.Font.
//
// Queries use an internal buffer, so an SFNT must not be used by more than
// one goroutine at a time.
type SFNT struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6 // chosen to make sfnt report font units
}

var _ otshape.Font = (*SFNT)(nil)

// ParseSFNT parses a TrueType or OpenType font from memory.
func ParseSFNT(data []byte) (*SFNT, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("otquery: cannot parse font: %w", err)
	}
	return NewSFNT(f), nil
}

// NewSFNT wraps an already parsed sfnt font.
func NewSFNT(f *sfnt.Font) *SFNT {
	return &SFNT{font: f, ppem: fixed.Int26_6(f.UnitsPerEm())}
}

// Name returns the full name of the font, or an empty string.
func (f *SFNT) Name() string {
	name, err := f.font.Name(&f.buf, sfnt.NameIDFull)
	if err != nil {
		tracer().Debugf("font has no full name: %v", err)
		return ""
	}
	return name
}

// GlyphIndex returns the glyph for a code-point.
func (f *SFNT) GlyphIndex(cp rune) (ot.GlyphIndex, bool) {
	gid, err := f.font.GlyphIndex(&f.buf, cp)
	if err != nil || gid == 0 {
		return ot.NOTDEF, false
	}
	return ot.GlyphIndex(gid), true
}

// GlyphAdvance returns the advance of a glyph in font units, or 0 for
// unknown glyphs.
func (f *SFNT) GlyphAdvance(gid ot.GlyphIndex) int {
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		tracer().Debugf("no advance for glyph %d: %v", gid, err)
		return 0
	}
	return int(adv)
}

// FontMetrics retrieves selected metrics of the font.
func (f *SFNT) FontMetrics() FontMetricsInfo {
	metrics := FontMetricsInfo{
		UnitsPerEm: f.font.UnitsPerEm(),
		NumGlyphs:  f.font.NumGlyphs(),
	}
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		tracer().Errorf("cannot read font metrics: %v", err)
		return metrics
	}
	metrics.Ascent = sfnt.Units(m.Ascent)
	metrics.Descent = -sfnt.Units(m.Descent)
	metrics.LineGap = sfnt.Units(m.Height - m.Ascent - m.Descent)
	return metrics
}

// GlyphMetrics retrieves metrics for a given glyph.
func (f *SFNT) GlyphMetrics(gid ot.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	bounds, adv, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		tracer().Debugf("no bounds for glyph %d: %v", gid, err)
		return metrics
	}
	metrics.Advance = sfnt.Units(adv)
	// sfnt bounds have the y-axis pointing down
	metrics.BBox = BoundingBox{
		MinX: sfnt.Units(bounds.Min.X),
		MinY: -sfnt.Units(bounds.Max.Y),
		MaxX: sfnt.Units(bounds.Max.X),
		MaxY: -sfnt.Units(bounds.Min.Y),
	}
	if !metrics.BBox.IsEmpty() {
		metrics.LSB = metrics.BBox.MinX
		metrics.RSB = metrics.Advance - metrics.BBox.MaxX
	}
	return metrics
}

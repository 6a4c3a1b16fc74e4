package otshape

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otshaping/ot"
	"golang.org/x/text/unicode/bidi"
)

// TagEntry records the state of one feature for one glyph.
type TagEntry struct {
	Tag     ot.Tag
	Enabled bool
}

func (e TagEntry) String() string {
	if e.Enabled {
		return "+" + e.Tag.String()
	}
	return "-" + e.Tag.String()
}

// GlyphShapingData is the per-glyph record of a glyph collection.
type GlyphShapingData struct {
	Codepoint rune           // source code-point
	GlyphID   ot.GlyphIndex  // resolved glyph, NOTDEF if unresolved
	Font      Font           // font of the owning text run
	Direction bidi.Direction // text direction
	Cluster   int            // code-point position of the source text, merged on edits
	Features  []TagEntry     // features recorded for this glyph
}

func (d *GlyphShapingData) featureIndex(tag ot.Tag) int {
	for i, e := range d.Features {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

func (d *GlyphShapingData) setFeature(tag ot.Tag, enabled bool) {
	if i := d.featureIndex(tag); i >= 0 {
		d.Features[i].Enabled = enabled
		return
	}
	d.Features = append(d.Features, TagEntry{Tag: tag, Enabled: enabled})
}

// HasFeature reports whether tag has been recorded for this glyph, enabled or not.
func (d *GlyphShapingData) HasFeature(tag ot.Tag) bool {
	return d.featureIndex(tag) >= 0
}

// IsFeatureEnabled reports whether tag is recorded and switched on.
func (d *GlyphShapingData) IsFeatureEnabled(tag ot.Tag) bool {
	i := d.featureIndex(tag)
	return i >= 0 && d.Features[i].Enabled
}

// EnabledFeatures returns the tags switched on for this glyph, in recording order.
func (d *GlyphShapingData) EnabledFeatures() []ot.Tag {
	tags := make([]ot.Tag, 0, len(d.Features))
	for _, e := range d.Features {
		if e.Enabled {
			tags = append(tags, e.Tag)
		}
	}
	return tags
}

// IsRightToLeft is a shortcut for checking the text direction.
func (d *GlyphShapingData) IsRightToLeft() bool {
	return d.Direction == bidi.RightToLeft
}

func (d *GlyphShapingData) clone() *GlyphShapingData {
	c := *d
	c.Features = append([]TagEntry(nil), d.Features...)
	return &c
}

func (d *GlyphShapingData) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "U+%04X->%d", d.Codepoint, d.GlyphID)
	for _, e := range d.Features {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}
	return sb.String()
}

package otshape

import (
	"github.com/npillmayer/otshaping/ot"
)

// KerningMode tells shapers whether kerning features should be applied.
type KerningMode uint8

const (
	// KerningStandard applies kerning and cursive positioning as the font defines it.
	KerningStandard KerningMode = iota
	// KerningNone suppresses 'kern', 'vkrn' and 'curs'.
	KerningNone
)

func (k KerningMode) String() string {
	if k == KerningNone {
		return "none"
	}
	return "standard"
}

// FeatureRange tells a shaper to turn a certain OpenType feature on or off for a
// run of glyphs.
//
// Start and End are glyph positions relative to the start of the shaped span.
// End == 0 denotes the complete span. A negative Start counts as 0.
type FeatureRange struct {
	Feature    ot.Tag // 4-letter feature tag
	On         bool   // turn it on or off?
	Start, End int    // position of glyphs to apply feature for
}

// IsGlobal reports whether f applies to a complete span.
func (f FeatureRange) IsGlobal() bool {
	return f.Start == 0 && f.End == 0
}

// Options collects caller-supplied shaping parameters.
type Options struct {
	Features []FeatureRange // user requested OpenType features
	Kerning  KerningMode    // kerning mode
}

// Requests reports whether the options switch on feature tag for a complete span.
func (o Options) Requests(tag ot.Tag) bool {
	for _, f := range o.Features {
		if f.Feature == tag && f.On && f.IsGlobal() {
			return true
		}
	}
	return false
}

/*
Package otshaping decides which OpenType layout features apply to which glyphs
of a text.

Before a GSUB/GPOS engine can run, a shaper has to work out, glyph by glyph,
which features the font's lookups are to be evaluated for. This depends on
the script of the text: Arabic letters take contextual forms depending on
their neighbours, Hangul syllables may have to be decomposed into jamo (or
jamo composed into syllables), and every script shares a set of common and
directional features.

This package is the entry point. CreateShaper selects the shaper for a
script, Itemize splits a text into runs of a single script, and ShapeText
puts both together for a complete text.

# Status

The module stops where GSUB/GPOS processing starts: it neither parses layout
tables nor positions glyphs.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshaping

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otshaping.shaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.shaper")
}

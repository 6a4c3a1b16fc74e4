/*
Package otshape defines the contract between script shapers and the glyph
runs they operate on.

A text run is handed to a shaper as a [GlyphShapingCollection]: an ordered,
index-addressed sequence of [GlyphShapingData] records, one per glyph. A
[Shaper] walks a script-homogeneous span of the collection and decides which
OpenType layout features have to be evaluated for which glyph, recording the
decision as [TagEntry] values on the glyph records. Shapers for scripts with
syllable composition (Hangul) may also edit the glyph sequence itself, which
requires a [SubstitutionCollection].

The shapers themselves live in sub-packages:
  - otcore: the default, script-independent feature assignment
  - otarabic: cursive joining for Arabic-family scripts
  - othangul: jamo composition and decomposition for Hangul

Features a shaper has touched are collected in first-seen order and reported
by [Shaper.StageFeatures]; this is the list a GSUB/GPOS engine downstream has
to evaluate. Feature assignment never fails. Missing glyphs, unknown
codepoints or out-of-range indices degrade to a no-op.

A collection is owned by one shaper invocation at a time; the package does
no locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the otshape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("otshaping.shaper")
}

/*
Package othangul provides the syllable shaper for the Hangul script.

Korean text may be encoded either as precomposed syllables (U+AC00 to U+D7A3)
or as sequences of conjoining jamo: a leading consonant (L), a vowel (V) and
an optional trailing consonant (T). Fonts differ in which of the two forms
they support. The shaper runs a small state machine over a span of glyphs
and converts between the forms, preferring precomposed glyphs if the font
has them. Jamo which remain decomposed get one of the features 'ljmo',
'vjmo' or 'tjmo' switched on.

Hangul tone marks (U+302E, U+302F) are moved in front of the syllable they
belong to. A tone mark without a syllable is paired with a dotted circle.

Structural edits are possible only on an otshape.SubstitutionCollection.
On other collections the shaper just switches on the jamo features.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package othangul

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otshaping.shaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.shaper")
}

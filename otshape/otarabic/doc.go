/*
Package otarabic provides the cursive-joining shaper for Arabic-family scripts.

Arabic, Syriac, N'Ko, Mongolian and related scripts select contextual glyph
forms depending on whether a letter joins to its neighbours. The shaper
classifies every glyph by its Unicode joining type and runs a joining state
machine over the span, enabling exactly one of the form features
'isol', 'init', 'medi', 'fina' (plus the Syriac variants 'med2', 'fin2',
'fin3') per joining glyph.

Transparent glyphs (most combining marks) are invisible to the state machine:
they neither receive a form feature nor interrupt a join.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otarabic

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otshaping.shaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.shaper")
}

/*
Package otcore provides the baseline shaper for package otshape.

The core shaper implements the script-independent part of OpenType feature
assignment: variation, direction, common, horizontal/vertical and user
requested features, plus a heuristic for numeric fractions. It is the
fallback for every script without a script-specific shaper, and the base
which the script-specific shapers embed.
*/
package otcore

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otshaping.shaper'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.shaper")
}

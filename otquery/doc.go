/*
Package otquery makes fonts usable for the shapers of package otshape.

The shapers need very little from a font: the glyph a code-point maps to, and
the advance of a glyph. This package adapts the two font implementations
the module works with to the otshape.Font interface:

  - SFNT wraps a font of golang.org/x/image/font/sfnt
  - GoText wraps a face of github.com/go-text/typesetting/font

Besides, both adapters report a few metrics for informational output of the
command line tools.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'otshaping.font'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.font")
}

// ErrNoFont is returned if font data is missing.
var ErrNoFont = errors.New("otquery: no font data")

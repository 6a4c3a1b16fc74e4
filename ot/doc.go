/*
Package ot provides the small value types shared by the shaping packages:
OpenType tags and glyph indices.

Package `ot` does not parse fonts. Font binaries are the business of
font-parsing packages such as golang.org/x/image/font/sfnt or
github.com/go-text/typesetting/font; package otquery adapts them to the
shaping engine. What remains here are the identifiers every layer agrees on:
a Tag names a feature (or script, or table), a GlyphIndex names a glyph
within a font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

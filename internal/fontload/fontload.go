// Package fontload loads fonts for the command line tools.
package fontload

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/otshaping/otquery"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'otshaping.font'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.font")
}

// DefaultFontname is the name of the built-in fallback font.
const DefaultFontname = "Go Regular"

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string // empty for built-in fonts
	Binary   []byte
	SFNT     *otquery.SFNT
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("fontload: %w", err)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	sf, err := otquery.ParseSFNT(fbytes)
	if err != nil {
		return nil, err
	}
	f := &ScalableFont{Binary: fbytes, SFNT: sf}
	f.Fontname = sf.Name()
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

// Default returns the built-in Go Regular font.
func Default() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil { // cannot happen for the embedded font
		panic(err)
	}
	f.Fontname = DefaultFontname
	return f
}

// FindFont locates a font by file path or by system font name.
// An empty name or the name of the default font select the built-in font.
func FindFont(name string) (*ScalableFont, error) {
	if name == "" || strings.EqualFold(name, DefaultFontname) {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return LoadOpenTypeFont(name)
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err != nil {
		return nil, fmt.Errorf("fontload: font %q not found: %w", name, errors.Join(otquery.ErrNoFont, err))
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return LoadOpenTypeFont(fpath)
}

// Backends which may resolve glyphs of a ScalableFont.
const (
	BackendSFNT   = "sfnt"   // golang.org/x/image/font/sfnt
	BackendGoText = "gotext" // github.com/go-text/typesetting/font
)

// Backend returns a glyph resolver for f. Backend "sfnt" (or empty) returns
// the SFNT view, "gotext" parses the font binary into a go-text face.
func (f *ScalableFont) Backend(name string) (otshape.Font, error) {
	switch strings.ToLower(name) {
	case "", BackendSFNT:
		return f.SFNT, nil
	case BackendGoText:
		gt, err := otquery.ParseGoText(f.Binary)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("using go-text face for %s", f.Fontname)
		return gt, nil
	}
	return nil, fmt.Errorf("fontload: unknown font backend %q", name)
}

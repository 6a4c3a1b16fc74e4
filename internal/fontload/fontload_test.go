package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otshaping/otquery"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaping.font")
	defer teardown()
	//
	f, err := FindFont("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFontname, f.Fontname)
	_, ok := f.SFNT.GlyphIndex('A')
	assert.True(t, ok)
	f, err = FindFont("go regular")
	require.NoError(t, err)
	assert.Empty(t, f.Filepath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	f, err := FindFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	assert.NotEmpty(t, f.Fontname)
}

func TestMissingFont(t *testing.T) {
	_, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "none.ttf"))
	assert.Error(t, err)
	_, err = FindFont("No-Such-Font-Family-4711")
	assert.ErrorIs(t, err, otquery.ErrNoFont)
	_, err = ParseOpenTypeFont(nil)
	assert.ErrorIs(t, err, otquery.ErrNoFont)
}

func TestBackends(t *testing.T) {
	f := Default()
	sf, err := f.Backend("")
	require.NoError(t, err)
	gt, err := f.Backend(BackendGoText)
	require.NoError(t, err)
	assert.IsType(t, otquery.GoText{}, gt)
	for _, cp := range "Aa1/" {
		want, ok := sf.GlyphIndex(cp)
		require.True(t, ok, "sfnt glyph for %q", cp)
		got, ok := gt.GlyphIndex(cp)
		require.True(t, ok, "go-text glyph for %q", cp)
		assert.Equal(t, want, got)
		assert.Equal(t, sf.GlyphAdvance(want), gt.GlyphAdvance(got))
	}
	_, err = f.Backend("freetype")
	assert.Error(t, err)
}

package cliutil

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/internal/fakefont"
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatureList(t *testing.T) {
	features, err := ParseFeatureList("liga=1, kern=0 +rlig,-calt,smcp[2:5],frac[3:]")
	require.NoError(t, err)
	assert.Equal(t, []otshape.FeatureRange{
		{Feature: ot.T("liga"), On: true},
		{Feature: ot.T("kern"), On: false},
		{Feature: ot.T("rlig"), On: true},
		{Feature: ot.T("calt"), On: false},
		{Feature: ot.T("smcp"), On: true, Start: 2, End: 5},
		{Feature: ot.T("frac"), On: true, Start: 3},
	}, features)
	//
	features, err = ParseFeatureList("-")
	assert.NoError(t, err)
	assert.Nil(t, features)
	for _, bad := range []string{"lig", "liga=x", "smcp[2:1]", "smcp[2", "smcp[-1:]"} {
		_, err = ParseFeatureList(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestParseCodepoints(t *testing.T) {
	runes, err := ParseCodepoints("U+0627,0x644 1100")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x0627, 0x0644, 0x1100}, runes)
	_, err = ParseCodepoints("U+XYZ")
	assert.Error(t, err)
	_, err = ParseCodepoints("110000")
	assert.Error(t, err)
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript("Arab")
	require.NoError(t, err)
	assert.Equal(t, language.Arabic, script)
	script, err = ParseScript("auto")
	require.NoError(t, err)
	assert.Zero(t, script)
}

func TestGlyphTable(t *testing.T) {
	font := fakefont.New('a', 'b')
	res := otshaping.ShapeText(font, "ab", otshape.Options{})
	data := GlyphTable(res)
	require.Len(t, data, 3)
	assert.Equal(t, "#", data[0][0])
	row := data[1]
	assert.Equal(t, "U+0061", row[1])
	assert.Equal(t, "LATIN SMALL LETTER A", row[2])
	assert.Equal(t, "default", row[6])
	assert.Contains(t, row[7], "liga")
}

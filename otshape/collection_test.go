package otshape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/otshaping/internal/fakefont"
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func newRun(t *testing.T, s string) (*otshape.GlyphSubstitutionCollection, *fakefont.Font) {
	t.Helper()
	font := fakefont.New([]rune(s)...)
	run := otshape.NewSubstitutionCollection(font, bidi.LeftToRight, false)
	run.AddString(s)
	require.Equal(t, len([]rune(s)), run.Len())
	return run, font
}

func TestAddTextResolvesGlyphs(t *testing.T) {
	font := fakefont.New('a', 'b')
	run := otshape.NewSubstitutionCollection(font, bidi.RightToLeft, false)
	run.AddString("abc")
	assert.Equal(t, []ot.GlyphIndex{font.Glyph('a'), font.Glyph('b'), ot.NOTDEF}, run.Glyphs())
	assert.True(t, run.GlyphShapingData(0).IsRightToLeft())
	assert.Equal(t, 2, run.GlyphShapingData(2).Cluster)
	assert.Nil(t, run.GlyphShapingData(3), "out of range access yields nil")
	assert.Nil(t, run.GlyphShapingData(-1))
}

func TestFeatureEntriesConverge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaping.shaper")
	defer teardown()
	//
	run, _ := newRun(t, "ab")
	liga := ot.T("liga")
	run.AddShapingFeature(0, otshape.TagEntry{Tag: liga, Enabled: false})
	run.AddShapingFeature(0, otshape.TagEntry{Tag: liga, Enabled: true})
	run.EnableShapingFeature(0, liga)
	d := run.GlyphShapingData(0)
	require.Len(t, d.Features, 1, "recording a tag twice must not duplicate it")
	assert.True(t, d.IsFeatureEnabled(liga))
	run.DisableShapingFeature(0, liga)
	assert.False(t, d.IsFeatureEnabled(liga))
	assert.True(t, d.HasFeature(liga))
	//
	run.DisableShapingFeature(1, ot.T("calt")) // records a disabled entry
	assert.True(t, run.GlyphShapingData(1).HasFeature(ot.T("calt")))
	assert.Empty(t, run.GlyphShapingData(1).EnabledFeatures())
	run.EnableShapingFeature(7, liga) // out of range is a no-op
}

func TestReplaceInheritsRecordData(t *testing.T) {
	run, _ := newRun(t, "xyz")
	run.EnableShapingFeature(1, ot.T("ccmp"))
	run.Replace(1, []otshape.Glyph{{Codepoint: 'p', ID: 10}, {Codepoint: 'q', ID: 11}, {Codepoint: 'r', ID: 12}})
	require.Equal(t, 5, run.Len())
	if diff := cmp.Diff([]rune("xpqrz"), run.Codepoints()); diff != "" {
		t.Fatalf("code-points after replace (-want +got):\n%s", diff)
	}
	for i := 1; i <= 3; i++ {
		d := run.GlyphShapingData(i)
		assert.Equal(t, 1, d.Cluster, "inserted glyphs keep the cluster of the replaced glyph")
		assert.True(t, d.IsFeatureEnabled(ot.T("ccmp")))
	}
	run.EnableShapingFeature(2, ot.T("vjmo"))
	assert.False(t, run.GlyphShapingData(1).HasFeature(ot.T("vjmo")), "records must not share feature storage")
}

func TestReplaceRangeCollapses(t *testing.T) {
	run, _ := newRun(t, "abcd")
	run.ReplaceRange(1, 2, otshape.Glyph{Codepoint: 'X', ID: 99})
	if diff := cmp.Diff([]rune("aXd"), run.Codepoints()); diff != "" {
		t.Fatalf("code-points after collapse (-want +got):\n%s", diff)
	}
	assert.Equal(t, ot.GlyphIndex(99), run.GlyphShapingData(1).GlyphID)
	assert.Equal(t, 1, run.GlyphShapingData(1).Cluster)
	run.ReplaceRange(2, 5, otshape.Glyph{Codepoint: 'Y', ID: 98}) // clipped at the end
	assert.Equal(t, []rune("aXY"), run.Codepoints())
	run.ReplaceRange(5, 1, otshape.Glyph{Codepoint: 'Z'})
	assert.Equal(t, 3, run.Len())
}

func TestMoveGlyph(t *testing.T) {
	run, _ := newRun(t, "abcde")
	run.MoveGlyph(3, 0)
	assert.Equal(t, []rune("dabce"), run.Codepoints())
	run.MoveGlyph(0, 4)
	assert.Equal(t, []rune("abced"), run.Codepoints())
	run.MoveGlyph(2, 9)
	assert.Equal(t, []rune("abced"), run.Codepoints(), "out of range moves are ignored")
}

func TestPositioningCollectionFreezesGlyphs(t *testing.T) {
	font := fakefont.New('a').WithZeroWidth('\u0301')
	run := otshape.NewSubstitutionCollection(font, bidi.LeftToRight, true)
	run.AddString("a\u0301")
	run.EnableShapingFeature(0, ot.T("liga"))
	pos := otshape.NewPositioningCollection(run)
	require.Equal(t, 2, pos.Len())
	assert.True(t, pos.IsVerticalLayoutMode())
	assert.Empty(t, pos.GlyphShapingData(0).Features)
	assert.Equal(t, fakefont.DefaultAdvance, pos.Advance(0))
	assert.Equal(t, 0, pos.Advance(1))
	_, isSubst := otshape.GlyphShapingCollection(pos).(otshape.SubstitutionCollection)
	assert.False(t, isSubst, "positioning collections must not allow structural edits")
}

func TestZeroWidthQueries(t *testing.T) {
	font := fakefont.New('a').WithZeroWidth('\u302E')
	assert.True(t, otshape.IsZeroWidth(font, '\u302E'))
	assert.False(t, otshape.IsZeroWidth(font, 'a'))
	assert.False(t, otshape.IsZeroWidth(font, 'b'), "unmapped code-points are not zero-width")
	_, ok := otshape.TryGetGlyph(nil, 'a')
	assert.False(t, ok)
}

func TestAddGlyphKeepsCallerGlyph(t *testing.T) {
	font := fakefont.New('a')
	run := otshape.NewSubstitutionCollection(font, bidi.RightToLeft, false)
	run.AddGlyph(otshape.Glyph{Codepoint: 'a', ID: 42}, 7)
	d := run.GlyphShapingData(0)
	assert.Equal(t, ot.GlyphIndex(42), d.GlyphID)
	assert.Equal(t, 7, d.Cluster)
	assert.True(t, d.IsRightToLeft())
	assert.Same(t, otshape.Font(font), d.Font)
}

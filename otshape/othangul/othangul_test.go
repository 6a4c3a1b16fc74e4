package othangul

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
	"golang.org/x/text/unicode/norm"
)

const (
	han  = '\uD55C' // LVT
	ha   = '\uD558' // LV
	hieu = '\u1112' // L
	a    = '\u1161' // V
	nieu = '\u11AB' // T
	tone = '\u302E'
)

func run(font otshape.Font, text ...rune) *otshape.GlyphSubstitutionCollection {
	c := otshape.NewSubstitutionCollection(font, bidi.LeftToRight, false)
	for i, cp := range text {
		c.AddText(cp, i)
	}
	return c
}

func shape(c otshape.GlyphShapingCollection) *Shaper {
	s := New(otshape.Options{})
	s.AssignFeatures(c, 0, c.Len())
	return s
}

func assertCodepoints(t *testing.T, want []rune, c *otshape.GlyphSubstitutionCollection) {
	t.Helper()
	if diff := cmp.Diff(want, c.Codepoints()); diff != "" {
		t.Errorf("code-points mismatch (-want +got):\n%s", diff)
	}
}

func TestSyllableClasses(t *testing.T) {
	for _, tc := range []struct {
		cp   rune
		want SyllableClass
	}{
		{han, LVT}, {ha, LV}, {'\uAC00', LV}, {'\uD7A3', LVT},
		{hieu, L}, {'\uA960', L}, {a, V}, {'\u1160', V}, {'\uD7B0', V},
		{nieu, T}, {'\uD7FB', T}, {tone, M}, {'\u302F', M},
		{'a', Other}, {'\u3131', Other}, // compatibility jamo do not conjoin
	} {
		assert.Equal(t, tc.want, ClassOf(tc.cp), "class of U+%04X", tc.cp)
	}
}

func TestJamoArithmeticMatchesNFD(t *testing.T) {
	for _, s := range []rune{han, ha, '\uAC00', '\uD7A3', '\uB1B0'} {
		l, v, tr := decompose(s)
		want := []rune(norm.NFD.String(string(s)))
		got := []rune{l, v}
		if tr != 0 {
			got = append(got, tr)
		}
		assert.Equal(t, want, got, "decomposition of U+%04X", s)
		back, ok := compose(l, v, tr)
		require.True(t, ok)
		assert.Equal(t, s, back)
	}
	_, ok := compose('\u1113', a, 0) // old jamo do not compose
	assert.False(t, ok)
}

func TestDecomposeUnsupportedSyllable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaping.shaper")
	defer teardown()
	//
	font := fakefont.New(hieu, a, nieu)
	c := run(font, han)
	shape(c)
	assertCodepoints(t, []rune{hieu, a, nieu}, c)
	for i, tag := range jamoFeatures {
		g := c.GlyphShapingData(i)
		assert.Equal(t, font.Glyph(g.Codepoint), g.GlyphID)
		assert.True(t, g.IsFeatureEnabled(tag), "glyph %d should have %s", i, tag)
		assert.False(t, g.IsFeatureEnabled(ot.FeatCalt))
		assert.Equal(t, 0, g.Cluster)
	}
}

func TestSupportedSyllableStays(t *testing.T) {
	font := fakefont.New(han, hieu, a, nieu)
	c := run(font, han)
	s := shape(c)
	assertCodepoints(t, []rune{han}, c)
	g := c.GlyphShapingData(0)
	for _, tag := range jamoFeatures {
		assert.True(t, g.HasFeature(tag))
		assert.False(t, g.IsFeatureEnabled(tag))
	}
	assert.True(t, g.HasFeature(ot.FeatCalt))
	assert.False(t, g.IsFeatureEnabled(ot.FeatCalt), "calt must be switched off for Hangul")
	assert.Equal(t, "hangul", s.Name())
	assert.Equal(t, []ot.Tag{ot.FeatLjmo, ot.FeatVjmo, ot.FeatTjmo, ot.FeatRvrn}, s.StageFeatures()[:4])
}

func TestDecomposeNeedsJamo(t *testing.T) {
	font := fakefont.New(hieu, a) // no trailing jamo
	c := run(font, han)
	shape(c)
	assertCodepoints(t, []rune{han}, c)
}

func TestComposeJamo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaping.shaper")
	defer teardown()
	//
	t.Run("LVT only", func(t *testing.T) {
		font := fakefont.New(han, hieu, a, nieu)
		c := run(font, hieu, a, nieu, 'x')
		shape(c)
		assertCodepoints(t, []rune{han, 'x'}, c)
		assert.Equal(t, font.Glyph(han), c.GlyphShapingData(0).GlyphID)
	})
	t.Run("LV then LVT", func(t *testing.T) {
		font := fakefont.New(ha, han, hieu, a, nieu)
		c := run(font, hieu, a, nieu)
		shape(c)
		assertCodepoints(t, []rune{han}, c)
	})
	t.Run("LV", func(t *testing.T) {
		font := fakefont.New(ha, hieu, a)
		c := run(font, 'x', hieu, a)
		shape(c)
		assertCodepoints(t, []rune{'x', ha}, c)
		assert.Equal(t, 1, c.GlyphShapingData(1).Cluster)
	})
	t.Run("no precomposed glyph", func(t *testing.T) {
		font := fakefont.New(hieu, a, nieu)
		c := run(font, hieu, a, nieu)
		shape(c)
		assertCodepoints(t, []rune{hieu, a, nieu}, c)
		for i, tag := range jamoFeatures {
			assert.True(t, c.GlyphShapingData(i).IsFeatureEnabled(tag))
		}
	})
}

func TestTrailingJamoSplitsSyllable(t *testing.T) {
	font := fakefont.New(ha, hieu, a, nieu) // no glyph for LVT
	c := run(font, ha, nieu, 'x')
	shape(c)
	assertCodepoints(t, []rune{hieu, a, nieu, 'x'}, c)
	for i, tag := range jamoFeatures {
		assert.True(t, c.GlyphShapingData(i).IsFeatureEnabled(tag), "glyph %d should have %s", i, tag)
	}
	assert.False(t, c.GlyphShapingData(3).IsFeatureEnabled(ot.FeatTjmo))
}

func TestModernSyllablesDecompose(t *testing.T) {
	font := fakefont.New().
		WithRange(lBase, lBase+lCount-1).
		WithRange(vBase, vBase+vCount-1).
		WithRange(tBase+1, tBase+tCount-1)
	for _, s := range []rune{'\uAC00', '\uAC01', '\uB1B0', '\uD7A3', han, ha} {
		c := run(font, s)
		shape(c)
		assertCodepoints(t, []rune(norm.NFD.String(string(s))), c)
	}
}

func TestRoundTrip(t *testing.T) {
	jamoFont := fakefont.New(hieu, a, nieu)
	c := run(jamoFont, han, ha)
	shape(c)
	jamo := c.Codepoints()
	require.Len(t, jamo, 5)
	//
	fullFont := fakefont.New(han, ha, hieu, a, nieu)
	c = run(fullFont, jamo...)
	shape(c)
	assertCodepoints(t, []rune{han, ha}, c)
}

func TestToneMarkPlacement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshaping.shaper")
	defer teardown()
	//
	for _, tc := range []struct {
		name string
		font *fakefont.Font
		text []rune
		want []rune
	}{
		{"precomposed", fakefont.New(han, tone), []rune{'x', han, tone},
			[]rune{'x', tone, han}},
		{"decomposed LVT", fakefont.New(hieu, a, nieu, tone), []rune{han, tone},
			[]rune{tone, hieu, a, nieu}},
		{"L+V", fakefont.New(hieu, a, tone), []rune{hieu, a, tone},
			[]rune{tone, hieu, a}},
		{"zero width", fakefont.New(han).WithZeroWidth(tone), []rune{han, tone},
			[]rune{han, tone}},
		{"tone mark not in font", fakefont.New(han, tone).Without(tone), []rune{han, tone},
			[]rune{han, tone}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := run(tc.font, tc.text...)
			shape(c)
			assertCodepoints(t, tc.want, c)
		})
	}
}

func TestOrphanToneMark(t *testing.T) {
	const circle = '\u25CC'
	for _, tc := range []struct {
		name string
		font *fakefont.Font
		text []rune
		want []rune
	}{
		{"spacing", fakefont.New(tone, circle), []rune{tone}, []rune{circle, tone}},
		{"zero width", fakefont.New(circle).WithZeroWidth(tone), []rune{tone}, []rune{tone, circle}},
		{"no dotted circle", fakefont.New(tone), []rune{tone}, []rune{tone}},
		{"after other", fakefont.New('x', tone, circle), []rune{'x', tone, 'x'}, []rune{'x', circle, tone, 'x'}},
		{"second tone", fakefont.New(ha, tone, circle), []rune{ha, tone, tone}, []rune{tone, ha, circle, tone}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := run(tc.font, tc.text...)
			shape(c)
			assertCodepoints(t, tc.want, c)
		})
	}
}

func TestSpanIsRespected(t *testing.T) {
	font := fakefont.New(hieu, a, nieu)
	c := run(font, han, han, han)
	s := New(otshape.Options{})
	s.AssignFeatures(c, 1, 1)
	assertCodepoints(t, []rune{han, hieu, a, nieu, han}, c)
	assert.Empty(t, c.GlyphShapingData(0).Features)
	assert.Empty(t, c.GlyphShapingData(4).Features)
}

func TestPositioningCollection(t *testing.T) {
	font := fakefont.New(han, ha, hieu, a, nieu)
	sc := run(font, han, ha, hieu, a, nieu)
	pc := otshape.NewPositioningCollection(sc)
	s := shape(pc)
	require.Equal(t, 5, pc.Len(), "positioning must not edit glyphs")
	want := [][]ot.Tag{
		{ot.FeatLjmo, ot.FeatVjmo, ot.FeatTjmo},
		{ot.FeatLjmo, ot.FeatVjmo},
		{ot.FeatLjmo},
		{ot.FeatVjmo},
		{ot.FeatTjmo},
	}
	for i, tags := range want {
		g := pc.GlyphShapingData(i)
		for _, tag := range jamoFeatures {
			assert.Equal(t, contains(tags, tag), g.IsFeatureEnabled(tag), "%s at glyph %d", tag, i)
		}
	}
	assert.Contains(t, s.StageFeatures(), ot.FeatCalt)
}

func TestAssignFeaturesConverges(t *testing.T) {
	font := fakefont.New(han, tone)
	c := run(font, han, 'x')
	s := New(otshape.Options{})
	s.AssignFeatures(c, 0, c.Len())
	first := c.GlyphShapingData(0).EnabledFeatures()
	stage := s.StageFeatures()
	s.AssignFeatures(c, 0, c.Len())
	assert.Equal(t, first, c.GlyphShapingData(0).EnabledFeatures())
	assert.Equal(t, stage, s.StageFeatures())
}

func contains(tags []ot.Tag, tag ot.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

package othangul

import (
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/otshaping/otshape/otcore"
)

type action uint8

const (
	actNone action = iota
	actDecompose
	actCompose
	actToneMark
	actInvalid
)

type transition struct {
	action action
	next   int
}

// Rows are states, columns are syllable classes X, L, V, T, LV, LVT, M.
var stateTable = [4][7]transition{
	// 0: start
	{{actNone, 0}, {actNone, 1}, {actNone, 0}, {actNone, 0}, {actDecompose, 2}, {actDecompose, 3}, {actInvalid, 0}},
	// 1: <L>
	{{actNone, 0}, {actNone, 1}, {actCompose, 2}, {actNone, 0}, {actDecompose, 2}, {actDecompose, 3}, {actInvalid, 0}},
	// 2: <L,V> or <LV>
	{{actNone, 0}, {actNone, 1}, {actNone, 0}, {actCompose, 3}, {actDecompose, 2}, {actDecompose, 3}, {actToneMark, 0}},
	// 3: <L,V,T> or <LVT>
	{{actNone, 0}, {actNone, 1}, {actNone, 0}, {actNone, 0}, {actDecompose, 2}, {actDecompose, 3}, {actToneMark, 0}},
}

var jamoFeatures = [...]ot.Tag{ot.FeatLjmo, ot.FeatVjmo, ot.FeatTjmo}

// Shaper is the syllable shaper for Hangul.
type Shaper struct {
	*otcore.Shaper
}

var _ otshape.Shaper = (*Shaper)(nil)

// New returns a new Hangul shaper for a set of caller options.
func New(opts otshape.Options) *Shaper {
	return &Shaper{Shaper: otcore.New(opts)}
}

// Name returns the stable shaper name.
func (s *Shaper) Name() string {
	return "hangul"
}

// AssignFeatures assigns features to count glyphs of c, starting at index.
//
// If c is an otshape.SubstitutionCollection, syllables are composed or
// decomposed depending on the glyphs the font provides, and the number of
// glyphs in c may change.
func (s *Shaper) AssignFeatures(c otshape.GlyphShapingCollection, index, count int) {
	if index < 0 || count <= 0 || index >= c.Len() {
		return
	}
	count = min(count, c.Len()-index)
	for _, tag := range jamoFeatures {
		s.AddFeature(c, index, count, tag, false)
	}
	s.Shaper.AssignFeatures(c, index, count)
	for i := index; i < index+count; i++ {
		c.DisableShapingFeature(i, ot.FeatCalt)
	}
	if sc, ok := c.(otshape.SubstitutionCollection); ok {
		s.substitute(sc, index, index+count)
		return
	}
	s.enableJamoFeatures(c, index, count)
}

// enableJamoFeatures switches on the jamo features of glyphs whose identity is
// final.
func (s *Shaper) enableJamoFeatures(c otshape.GlyphShapingCollection, index, count int) {
	for i := index; i < index+count; i++ {
		switch ClassOf(c.GlyphShapingData(i).Codepoint) {
		case L:
			s.EnableFeature(c, i, ot.FeatLjmo)
		case V:
			s.EnableFeature(c, i, ot.FeatVjmo)
		case T:
			s.EnableFeature(c, i, ot.FeatTjmo)
		case LV:
			s.EnableFeature(c, i, ot.FeatLjmo)
			s.EnableFeature(c, i, ot.FeatVjmo)
		case LVT:
			for _, tag := range jamoFeatures {
				s.EnableFeature(c, i, tag)
			}
		}
	}
}

// substitute runs the syllable state machine over glyphs start..end-1.
// Edits move the cursor and the end bound by the number of glyphs inserted or
// removed.
func (s *Shaper) substitute(sc otshape.SubstitutionCollection, start, end int) {
	state := 0
	for i := start; i < end; i++ {
		class := ClassOf(sc.GlyphShapingData(i).Codepoint)
		t := stateTable[state][class]
		tracer().Debugf("hangul: state %d, glyph %d is %s, action %d", state, i, class, t.action)
		var delta int
		switch t.action {
		case actDecompose:
			delta = s.decompose(sc, i, false)
			i += delta
		case actCompose:
			i, delta = s.compose(sc, start, i)
		case actToneMark:
			s.moveToneMark(sc, start, i)
		case actInvalid:
			if s.insertDottedCircle(sc, i) {
				delta = 1
				i++
			}
		}
		end += delta
		state = t.next
	}
}

// decompose replaces the precomposed syllable at i by its jamo, if the font
// cannot display the syllable or if force is set. It returns the number of
// glyphs inserted.
func (s *Shaper) decompose(sc otshape.SubstitutionCollection, i int, force bool) int {
	d := sc.GlyphShapingData(i)
	if !force {
		if _, ok := otshape.TryGetGlyph(d.Font, d.Codepoint); ok {
			return 0
		}
	}
	l, v, t := decompose(d.Codepoint)
	jamo := []rune{l, v}
	if t != 0 {
		jamo = append(jamo, t)
	}
	glyphs := make([]otshape.Glyph, len(jamo))
	for k, cp := range jamo {
		gid, ok := otshape.TryGetGlyph(d.Font, cp)
		if !ok {
			return 0
		}
		glyphs[k] = otshape.Glyph{Codepoint: cp, ID: gid}
	}
	tracer().Debugf("hangul: decompose U+%04X into %d jamo", d.Codepoint, len(glyphs))
	sc.Replace(i, glyphs)
	for k := range glyphs {
		s.EnableFeature(sc, i+k, jamoFeatures[k])
	}
	return len(glyphs) - 1
}

// compose tries to combine the jamo ending at glyph i into a precomposed
// syllable. It returns the new cursor position and the change in the number
// of glyphs.
func (s *Shaper) compose(sc otshape.SubstitutionCollection, start, i int) (int, int) {
	if i <= start {
		return i, 0
	}
	cp := sc.GlyphShapingData(i).Codepoint
	prev := sc.GlyphShapingData(i - 1).Codepoint
	prevClass := ClassOf(prev)
	if prevClass == LV && ClassOf(cp) == T {
		return s.composeTrailing(sc, i)
	}
	var span []int // positions of l, v and, optionally, t
	switch {
	case ClassOf(cp) == V && prevClass == L:
		span = []int{i - 1, i}
	case ClassOf(cp) == T && prevClass == V && i-2 >= start &&
		ClassOf(sc.GlyphShapingData(i-2).Codepoint) == L:
		span = []int{i - 2, i - 1, i}
	default:
		return i, 0
	}
	jamo := [3]rune{}
	for k, pos := range span {
		jamo[k] = sc.GlyphShapingData(pos).Codepoint
	}
	first := span[0]
	font := sc.GlyphShapingData(first).Font
	if syllable, ok := compose(jamo[0], jamo[1], jamo[2]); ok {
		if gid, ok := otshape.TryGetGlyph(font, syllable); ok {
			tracer().Debugf("hangul: compose %d jamo into U+%04X", len(span), syllable)
			sc.ReplaceRange(first, len(span), otshape.Glyph{Codepoint: syllable, ID: gid})
			return first, 1 - len(span)
		}
	}
	for k, pos := range span {
		s.EnableFeature(sc, pos, jamoFeatures[k])
	}
	return i, 0
}

// composeTrailing tries to combine an LV syllable at i-1 with the trailing
// jamo at i. If that fails, the LV syllable is decomposed, so that all three
// jamo can be rendered with the jamo features.
func (s *Shaper) composeTrailing(sc otshape.SubstitutionCollection, i int) (int, int) {
	lv := sc.GlyphShapingData(i - 1)
	t := sc.GlyphShapingData(i).Codepoint
	if isCombiningT(t) {
		syllable := lv.Codepoint + (t - tBase)
		if gid, ok := otshape.TryGetGlyph(lv.Font, syllable); ok {
			tracer().Debugf("hangul: compose U+%04X + U+%04X into U+%04X", lv.Codepoint, t, syllable)
			sc.ReplaceRange(i-1, 2, otshape.Glyph{Codepoint: syllable, ID: gid})
			return i - 1, -1
		}
	}
	s.EnableFeature(sc, i, ot.FeatTjmo)
	inserted := s.decompose(sc, i-1, true)
	return i + inserted, inserted
}

// syllableLength returns the number of glyphs of the syllable ending at glyph
// i-1, not reaching before start.
func syllableLength(sc otshape.SubstitutionCollection, start, i int) int {
	n, j := 0, i-1
	classAt := func(j int) SyllableClass {
		if j < start {
			return Other
		}
		return ClassOf(sc.GlyphShapingData(j).Codepoint)
	}
	if classAt(j) == T {
		n, j = n+1, j-1
	}
	switch classAt(j) {
	case LV, LVT:
		n++
	case V:
		n, j = n+1, j-1
		if classAt(j) == L {
			n++
		}
	}
	return n
}

// moveToneMark moves a spacing tone mark at i in front of its syllable.
// Zero-width tone marks and tone marks missing from the font stay where they are.
func (s *Shaper) moveToneMark(sc otshape.SubstitutionCollection, start, i int) {
	d := sc.GlyphShapingData(i)
	if d.GlyphID == ot.NOTDEF || otshape.IsZeroWidth(d.Font, d.Codepoint) {
		return
	}
	n := syllableLength(sc, start, i)
	if n == 0 || i-n < start {
		return
	}
	tracer().Debugf("hangul: move tone mark from %d to %d", i, i-n)
	sc.MoveGlyph(i, i-n)
}

// insertDottedCircle pairs an orphan tone mark at i with a dotted circle,
// if the font has one. It reports whether a glyph has been inserted.
func (s *Shaper) insertDottedCircle(sc otshape.SubstitutionCollection, i int) bool {
	d := sc.GlyphShapingData(i)
	gid, ok := otshape.TryGetGlyph(d.Font, dottedCircle)
	if !ok {
		return false
	}
	circle := otshape.Glyph{Codepoint: dottedCircle, ID: gid}
	tone := otshape.Glyph{Codepoint: d.Codepoint, ID: d.GlyphID}
	glyphs := []otshape.Glyph{tone, circle}
	if !otshape.IsZeroWidth(d.Font, d.Codepoint) {
		glyphs = []otshape.Glyph{circle, tone}
	}
	tracer().Debugf("hangul: dotted circle for orphan tone mark at %d", i)
	sc.Replace(i, glyphs)
	return true
}

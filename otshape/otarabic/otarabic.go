package otarabic

import (
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/otshaping/otshape/otcore"
)

// action is the contextual form a joining glyph gets.
type action uint8

const (
	actIsol action = iota
	actFina
	actFin2
	actFin3
	actMedi
	actMed2
	actInit
	actNone
)

var actionFeatures = [...]ot.Tag{
	actIsol: ot.FeatIsol,
	actFina: ot.FeatFina,
	actFin2: ot.FeatFin2,
	actFin3: ot.FeatFin3,
	actMedi: ot.FeatMedi,
	actMed2: ot.FeatMed2,
	actInit: ot.FeatInit,
}

func (a action) String() string {
	if a == actNone {
		return "none"
	}
	return actionFeatures[a].String()
}

// transition of the joining state machine: prev is the action to apply to the
// previous joining glyph, curr the action for the current one.
type transition struct {
	prev, curr action
	next       int
}

// Rows are states, columns are joining classes U, L, R, D, Alaph, DalathRish.
var stateTable = [7][numClasses]transition{
	// 0: start of span, or after a non-joining glyph
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actNone, actIsol, 1}, {actNone, actIsol, 2}, {actNone, actIsol, 1}, {actNone, actIsol, 6}},
	// 1: after R
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actNone, actIsol, 1}, {actNone, actIsol, 2}, {actNone, actFin2, 5}, {actNone, actIsol, 6}},
	// 2: after D or L, isolated so far
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actInit, actFina, 1}, {actInit, actFina, 3}, {actInit, actFina, 4}, {actInit, actFina, 6}},
	// 3: after D, joined to the right
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actMedi, actFina, 1}, {actMedi, actFina, 3}, {actMedi, actFina, 4}, {actMedi, actFina, 6}},
	// 4: after Alaph, following a joining glyph
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actMed2, actIsol, 1}, {actMed2, actIsol, 2}, {actMed2, actFin2, 5}, {actMed2, actIsol, 6}},
	// 5: after Alaph in final position
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actIsol, actIsol, 1}, {actIsol, actIsol, 2}, {actIsol, actFin2, 5}, {actIsol, actIsol, 6}},
	// 6: after DalathRish
	{{actNone, actNone, 0}, {actNone, actIsol, 2}, {actNone, actIsol, 1}, {actNone, actIsol, 2}, {actNone, actFin3, 5}, {actNone, actIsol, 6}},
}

// Features registered by the Arabic shaper before the default ones, with their
// initial state.
var arabicFeatures = [...]otshape.TagEntry{
	{Tag: ot.FeatCcmp, Enabled: true},
	{Tag: ot.FeatLocl, Enabled: true},
	{Tag: ot.FeatIsol, Enabled: false},
	{Tag: ot.FeatFina, Enabled: false},
	{Tag: ot.FeatFin2, Enabled: false},
	{Tag: ot.FeatFin3, Enabled: false},
	{Tag: ot.FeatMedi, Enabled: false},
	{Tag: ot.FeatMed2, Enabled: false},
	{Tag: ot.FeatInit, Enabled: false},
	{Tag: ot.FeatMset, Enabled: true},
}

// Shaper is the joining shaper for Arabic-family scripts.
type Shaper struct {
	*otcore.Shaper
}

var _ otshape.Shaper = (*Shaper)(nil)

// New returns a new Arabic shaper for a set of caller options.
func New(opts otshape.Options) *Shaper {
	return &Shaper{Shaper: otcore.New(opts)}
}

// Name returns the stable shaper name.
func (s *Shaper) Name() string {
	return "arabic"
}

// AssignFeatures registers the joining form features for count glyphs of c,
// starting at index, then enables the contextual form of every joining glyph.
func (s *Shaper) AssignFeatures(c otshape.GlyphShapingCollection, index, count int) {
	if index < 0 || count <= 0 || index >= c.Len() {
		return
	}
	count = min(count, c.Len()-index)
	for _, f := range arabicFeatures {
		s.AddFeature(c, index, count, f.Tag, f.Enabled)
	}
	s.Shaper.AssignFeatures(c, index, count)
	actions := joiningActions(c, index, count)
	for i, a := range actions {
		if a != actNone {
			s.EnableFeature(c, index+i, actionFeatures[a])
		}
	}
}

// joiningActions runs the joining state machine over a span and returns the
// form action for each glyph of the span.
func joiningActions(c otshape.GlyphShapingCollection, index, count int) []action {
	actions := make([]action, count)
	state, prev := 0, -1
	for i := 0; i < count; i++ {
		cp := c.GlyphShapingData(index + i).Codepoint
		class := JoiningClassOf(cp)
		if class == Transparent {
			actions[i] = actNone
			continue
		}
		t := stateTable[state][class]
		if t.prev != actNone && prev >= 0 {
			actions[prev] = t.prev
		}
		actions[i] = t.curr
		tracer().Debugf("joining U+%04X class=%s state %d->%d, %s", cp, class, state, t.next, t.curr)
		prev, state = i, t.next
	}
	return actions
}

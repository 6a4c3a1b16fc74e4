package otcore

import (
	"unicode"

	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
)

var commonFeatures = [...]ot.Tag{
	ot.FeatCcmp, ot.FeatLocl, ot.FeatRlig, ot.FeatMark, ot.FeatMkmk,
}

var horizontalFeatures = [...]ot.Tag{
	ot.FeatCalt, ot.FeatClig, ot.FeatLiga, ot.FeatRclt,
}

// Features which are dropped if kerning is switched off.
var kerningFeatures = [...]ot.Tag{
	ot.FeatCurs, ot.FeatKern,
}

const (
	fractionSlash = '\u2044'
	solidus       = '/'
)

// Shaper is the default OpenType shaper.
//
// Script-specific shapers embed a *Shaper and call its AssignFeatures before
// adding their own features.
type Shaper struct {
	opts  otshape.Options
	stage *otshape.StageFeatures
}

var _ otshape.Shaper = (*Shaper)(nil)

// New returns a new core shaper for a set of caller options.
func New(opts otshape.Options) *Shaper {
	return &Shaper{
		opts:  opts,
		stage: otshape.NewStageFeatures(),
	}
}

// Name returns the stable shaper name.
func (s *Shaper) Name() string {
	return "default"
}

// Options returns the caller options the shaper has been created with.
func (s *Shaper) Options() otshape.Options {
	return s.opts
}

// StageFeatures returns the features touched so far, in first-seen order.
func (s *Shaper) StageFeatures() []ot.Tag {
	return s.stage.Tags()
}

// AssignFeatures assigns the script-independent features to count glyphs of c,
// starting at index.
func (s *Shaper) AssignFeatures(c otshape.GlyphShapingCollection, index, count int) {
	index, count = clip(c, index, count)
	if count == 0 {
		return
	}
	end := index + count
	s.AddFeature(c, index, count, ot.FeatRvrn, true)
	for i := index; i < end; i++ {
		if c.GlyphShapingData(i).IsRightToLeft() {
			s.AddFeature(c, i, 1, ot.FeatRtla, true)
			s.AddFeature(c, i, 1, ot.FeatRtlm, true)
		} else {
			s.AddFeature(c, i, 1, ot.FeatLtra, true)
			s.AddFeature(c, i, 1, ot.FeatLtrm, true)
		}
	}
	for _, tag := range commonFeatures {
		s.AddFeature(c, index, count, tag, true)
	}
	if !c.IsVerticalLayoutMode() {
		for _, tag := range horizontalFeatures {
			s.AddFeature(c, index, count, tag, true)
		}
		if s.opts.Kerning != otshape.KerningNone {
			for _, tag := range kerningFeatures {
				s.AddFeature(c, index, count, tag, true)
			}
		}
	} else {
		s.AddFeature(c, index, count, ot.FeatVert, true)
	}
	consumed := s.assignFractions(c, index, count)
	for _, f := range s.opts.Features {
		if consumed[f.Feature] && f.IsGlobal() {
			continue
		}
		start := max(f.Start, 0)
		from, n := index+start, count-start
		if f.End > 0 {
			n = f.End - start
		}
		if from, n = clip(c, from, min(n, end-from)); n == 0 {
			continue
		}
		s.AddFeature(c, from, n, f.Feature, f.On)
	}
}

// assignFractions enables 'numr', 'dnom' and 'frac' around fraction slashes if
// the caller asked for fractions. It returns the set of requests it has served.
func (s *Shaper) assignFractions(c otshape.GlyphShapingCollection, index, count int) map[ot.Tag]bool {
	hasFrac := s.opts.Requests(ot.FeatFrac)
	hasNumrDnom := s.opts.Requests(ot.FeatNumr) && s.opts.Requests(ot.FeatDnom)
	if !hasFrac && !hasNumrDnom {
		return nil
	}
	end := index + count
	for i := index; i < end; i++ {
		cp := c.GlyphShapingData(i).Codepoint
		if cp != fractionSlash && cp != solidus {
			continue
		}
		start, finish := i, i+1
		for start > index && isDigit(c, start-1) {
			s.AddFeature(c, start-1, 1, ot.FeatNumr, true)
			s.AddFeature(c, start-1, 1, ot.FeatFrac, true)
			start--
		}
		for finish < end && isDigit(c, finish) {
			s.AddFeature(c, finish, 1, ot.FeatDnom, true)
			s.AddFeature(c, finish, 1, ot.FeatFrac, true)
			finish++
		}
		s.AddFeature(c, i, 1, ot.FeatFrac, true)
		tracer().Debugf("fraction at %d..%d", start, finish-1)
		i = finish - 1
	}
	return map[ot.Tag]bool{ot.FeatFrac: true, ot.FeatNumr: true, ot.FeatDnom: true}
}

// AddFeature records tag with state enabled for count glyphs starting at index,
// and notes tag as a feature of the current stage.
// With kerning switched off, requests for 'kern' and 'vkrn' are dropped.
func (s *Shaper) AddFeature(c otshape.GlyphShapingCollection, index, count int, tag ot.Tag, enabled bool) {
	if s.opts.Kerning == otshape.KerningNone && (tag == ot.FeatKern || tag == ot.FeatVkrn) {
		return
	}
	index, count = clip(c, index, count)
	for i := index; i < index+count; i++ {
		c.AddShapingFeature(i, otshape.TagEntry{Tag: tag, Enabled: enabled})
	}
	s.stage.Add(tag)
}

// EnableFeature switches on tag for glyph i and notes it as a stage feature.
func (s *Shaper) EnableFeature(c otshape.GlyphShapingCollection, i int, tag ot.Tag) {
	c.EnableShapingFeature(i, tag)
	s.stage.Add(tag)
}

func isDigit(c otshape.GlyphShapingCollection, i int) bool {
	return unicode.IsDigit(c.GlyphShapingData(i).Codepoint)
}

// clip restricts [index, index+count) to the bounds of c.
func clip(c otshape.GlyphShapingCollection, index, count int) (int, int) {
	if index < 0 {
		count += index
		index = 0
	}
	if rest := c.Len() - index; count > rest {
		count = rest
	}
	if count < 0 {
		count = 0
	}
	return index, count
}

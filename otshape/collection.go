package otshape

import (
	"github.com/npillmayer/otshaping/ot"
	"golang.org/x/text/unicode/bidi"
)

// glyphRun is the record arena shared by the concrete collections.
type glyphRun struct {
	records  []*GlyphShapingData
	vertical bool
}

// Len returns the glyph length of the run.
func (gr *glyphRun) Len() int {
	if gr == nil {
		return 0
	}
	return len(gr.records)
}

// IsVerticalLayoutMode reports whether the run is laid out top-to-bottom.
func (gr *glyphRun) IsVerticalLayoutMode() bool {
	return gr.vertical
}

// GlyphShapingData returns the record at i, or nil if i is out of range.
func (gr *glyphRun) GlyphShapingData(i int) *GlyphShapingData {
	if !gr.inRange(i) {
		return nil
	}
	return gr.records[i]
}

// AddShapingFeature records entry for glyph i.
func (gr *glyphRun) AddShapingFeature(i int, entry TagEntry) {
	if gr.inRange(i) {
		gr.records[i].setFeature(entry.Tag, entry.Enabled)
	}
}

// EnableShapingFeature switches tag on for glyph i.
func (gr *glyphRun) EnableShapingFeature(i int, tag ot.Tag) {
	if gr.inRange(i) {
		gr.records[i].setFeature(tag, true)
	}
}

// DisableShapingFeature switches tag off for glyph i.
func (gr *glyphRun) DisableShapingFeature(i int, tag ot.Tag) {
	if gr.inRange(i) {
		gr.records[i].setFeature(tag, false)
	}
}

// Codepoints returns the code-points of the run in glyph order.
func (gr *glyphRun) Codepoints() []rune {
	cps := make([]rune, len(gr.records))
	for i, r := range gr.records {
		cps[i] = r.Codepoint
	}
	return cps
}

// Glyphs returns the glyph indices of the run in glyph order.
func (gr *glyphRun) Glyphs() []ot.GlyphIndex {
	gids := make([]ot.GlyphIndex, len(gr.records))
	for i, r := range gr.records {
		gids[i] = r.GlyphID
	}
	return gids
}

func (gr *glyphRun) inRange(i int) bool {
	return gr != nil && i >= 0 && i < len(gr.records)
}

// --- Substitution ----------------------------------------------------------

// GlyphSubstitutionCollection is a glyph run prepared for GSUB. Glyph identities
// may still change, so shapers are allowed to replace and move glyphs.
type GlyphSubstitutionCollection struct {
	glyphRun
	font      Font
	direction bidi.Direction
}

var _ SubstitutionCollection = (*GlyphSubstitutionCollection)(nil)

// NewSubstitutionCollection creates an empty run for a font. Glyphs appended
// later default to direction dir.
func NewSubstitutionCollection(font Font, dir bidi.Direction, vertical bool) *GlyphSubstitutionCollection {
	return &GlyphSubstitutionCollection{
		glyphRun:  glyphRun{vertical: vertical},
		font:      font,
		direction: dir,
	}
}

// Font returns the font of the run.
func (sc *GlyphSubstitutionCollection) Font() Font {
	return sc.font
}

// AddText appends a code-point, resolving its glyph with the run's font.
// Code-points without a glyph are appended with NOTDEF.
func (sc *GlyphSubstitutionCollection) AddText(cp rune, cluster int) {
	gid, _ := TryGetGlyph(sc.font, cp)
	sc.records = append(sc.records, &GlyphShapingData{
		Codepoint: cp,
		GlyphID:   gid,
		Font:      sc.font,
		Direction: sc.direction,
		Cluster:   cluster,
	})
}

// AddGlyph appends a glyph which has already been resolved by the caller.
func (sc *GlyphSubstitutionCollection) AddGlyph(g Glyph, cluster int) {
	sc.records = append(sc.records, &GlyphShapingData{
		Codepoint: g.Codepoint,
		GlyphID:   g.ID,
		Font:      sc.font,
		Direction: sc.direction,
		Cluster:   cluster,
	})
}

// AddString appends all code-points of s, with clusters counted from the current length.
func (sc *GlyphSubstitutionCollection) AddString(s string) {
	for _, r := range s {
		sc.AddText(r, sc.Len())
	}
}

// SetDirection sets the text direction of count glyphs starting at index.
func (sc *GlyphSubstitutionCollection) SetDirection(index, count int, dir bidi.Direction) {
	for i := index; i < index+count; i++ {
		if sc.inRange(i) {
			sc.records[i].Direction = dir
		}
	}
}

// Replace replaces glyph i by glyphs.
func (sc *GlyphSubstitutionCollection) Replace(i int, glyphs []Glyph) {
	if !sc.inRange(i) || len(glyphs) == 0 {
		return
	}
	orig := sc.records[i]
	repl := make([]*GlyphShapingData, len(glyphs))
	for k, g := range glyphs {
		rec := orig.clone()
		rec.Codepoint, rec.GlyphID = g.Codepoint, g.ID
		repl[k] = rec
	}
	sc.applyEdit(editSpan{from: i, to: i + 1}, repl)
	tracer().Debugf("replaced glyph %d by %d glyphs", i, len(glyphs))
}

// ReplaceRange collapses count glyphs starting at i into g. The remaining
// record keeps the smallest cluster of the collapsed glyphs.
func (sc *GlyphSubstitutionCollection) ReplaceRange(i, count int, g Glyph) {
	if !sc.inRange(i) || count <= 0 {
		return
	}
	end := min(i+count, sc.Len())
	rec := sc.records[i].clone()
	for _, r := range sc.records[i+1 : end] {
		rec.Cluster = min(rec.Cluster, r.Cluster)
	}
	rec.Codepoint, rec.GlyphID = g.Codepoint, g.ID
	sc.applyEdit(editSpan{from: i, to: end}, []*GlyphShapingData{rec})
	tracer().Debugf("collapsed glyphs %d..%d into U+%04X", i, end-1, g.Codepoint)
}

// MoveGlyph moves glyph from to position to.
func (sc *GlyphSubstitutionCollection) MoveGlyph(from, to int) {
	if !sc.inRange(from) || !sc.inRange(to) || from == to {
		return
	}
	rec := sc.records[from]
	if from < to {
		copy(sc.records[from:to], sc.records[from+1:to+1])
	} else {
		copy(sc.records[to+1:from+1], sc.records[to:from])
	}
	sc.records[to] = rec
}

// editSpan replaces records [from, to) by a new sequence.
type editSpan struct {
	from, to int
}

func (sc *GlyphSubstitutionCollection) applyEdit(edit editSpan, repl []*GlyphShapingData) {
	if edit.from < 0 || edit.to < edit.from || edit.to > len(sc.records) {
		panic("GlyphSubstitutionCollection.applyEdit: invalid edit span")
	}
	out := make([]*GlyphShapingData, 0, len(sc.records)-(edit.to-edit.from)+len(repl))
	out = append(out, sc.records[:edit.from]...)
	out = append(out, repl...)
	out = append(out, sc.records[edit.to:]...)
	sc.records = out
}

// --- Positioning -----------------------------------------------------------

// GlyphPositioningCollection is a glyph run prepared for GPOS. Glyph identities
// have been finalized by a preceding substitution pass, so shapers may only
// toggle features.
type GlyphPositioningCollection struct {
	glyphRun
}

var _ GlyphShapingCollection = (*GlyphPositioningCollection)(nil)

// NewPositioningCollection freezes the glyphs of a substitution run. Feature
// entries of the substitution stage are not carried over.
func NewPositioningCollection(sc *GlyphSubstitutionCollection) *GlyphPositioningCollection {
	pc := &GlyphPositioningCollection{glyphRun: glyphRun{vertical: sc.vertical}}
	pc.records = make([]*GlyphShapingData, len(sc.records))
	for i, r := range sc.records {
		rec := *r
		rec.Features = nil
		pc.records[i] = &rec
	}
	return pc
}

// Advance returns the horizontal advance of glyph i in font units.
func (pc *GlyphPositioningCollection) Advance(i int) int {
	if !pc.inRange(i) || pc.records[i].Font == nil {
		return 0
	}
	return pc.records[i].Font.GlyphAdvance(pc.records[i].GlyphID)
}

package otshaping

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/otshaping/otshape/otarabic"
	"github.com/npillmayer/otshaping/otshape/otcore"
	"github.com/npillmayer/otshaping/otshape/othangul"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// CreateShaper returns the shaper for a script. Scripts without a dedicated
// shaper get the default one.
func CreateShaper(script language.Script, opts otshape.Options) otshape.Shaper {
	switch script {
	case language.Arabic, language.Mongolian, language.Syriac, language.Nko,
		language.Phags_Pa, language.Mandaic, language.Manichaean, language.Psalter_Pahlavi:
		return otarabic.New(opts)
	case language.Hangul:
		return othangul.New(opts)
	}
	return otcore.New(opts)
}

// ScriptSpan is a run of text in a single script, [Start, End) in runes.
type ScriptSpan struct {
	Script     language.Script
	Start, End int
}

// Len returns the number of runes of the span.
func (s ScriptSpan) Len() int {
	return s.End - s.Start
}

func isNeutral(script language.Script) bool {
	return script == language.Common || script == language.Inherited || script == language.Unknown
}

// Itemize splits text into runs of a single script. Runes of the Common and
// Inherited scripts are attached to the span they occur in, or to the
// following span at the start of the text.
func Itemize(text []rune) []ScriptSpan {
	var spans []ScriptSpan
	for i, r := range text {
		script := language.LookupScript(r)
		if len(spans) == 0 {
			spans = append(spans, ScriptSpan{Script: script, Start: i, End: i + 1})
			continue
		}
		last := &spans[len(spans)-1]
		switch {
		case isNeutral(script) || script == last.Script:
			last.End++
		case isNeutral(last.Script):
			last.Script = script
			last.End++
		default:
			spans = append(spans, ScriptSpan{Script: script, Start: i, End: i + 1})
		}
	}
	return spans
}

// Result is the outcome of ShapeText.
type Result struct {
	Glyphs   *otshape.GlyphSubstitutionCollection
	Spans    []ScriptSpan // spans in glyph positions, after shaping
	Features []ot.Tag     // features to evaluate, in first-seen order
	Shapers  []string     // names of the shapers used, per span
}

// ShapeText assigns OpenType features to the glyphs of text.
//
// The text is normalized to NFC and itemized by script; every span is shaped
// by the shaper for its script. Spans containing strong right-to-left
// characters are set right-to-left. Glyph clusters are code-point positions
// in the original text. Feature ranges in opts are relative to
// each span. Shaping may change the number of glyphs, so the spans of the
// result refer to glyph positions.
func ShapeText(font otshape.Font, text string, opts otshape.Options) Result {
	runes, clusters := normalize(text)
	return shapeSpans(font, runes, clusters, Itemize(runes), opts)
}

// ShapeScript is like ShapeText, but shapes all of text as a single span in
// the given script.
func ShapeScript(font otshape.Font, text string, script language.Script, opts otshape.Options) Result {
	runes, clusters := normalize(text)
	var spans []ScriptSpan
	if len(runes) > 0 {
		spans = []ScriptSpan{{Script: script, Start: 0, End: len(runes)}}
	}
	return shapeSpans(font, runes, clusters, spans, opts)
}

// normalize returns the NFC form of text together with the cluster of every
// rune, i.e. its code-point position in text. Runes of a normalization segment
// which has been changed all get the position of the segment start.
func normalize(text string) ([]rune, []int) {
	var iter norm.Iter
	iter.InitString(norm.NFC, text)
	runes := make([]rune, 0, len(text))
	clusters := make([]int, 0, len(text))
	pos := 0
	for !iter.Done() {
		start := iter.Pos()
		out := string(iter.Next())
		in := text[start:iter.Pos()]
		for k, r := range []rune(out) {
			runes = append(runes, r)
			if in == out {
				clusters = append(clusters, pos+k)
			} else {
				clusters = append(clusters, pos)
			}
		}
		pos += utf8.RuneCountInString(in)
	}
	return runes, clusters
}

func shapeSpans(font otshape.Font, runes []rune, clusters []int, spans []ScriptSpan, opts otshape.Options) Result {
	glyphs := otshape.NewSubstitutionCollection(font, bidi.LeftToRight, false)
	for i, r := range runes {
		glyphs.AddText(r, clusters[i])
	}
	result := Result{Glyphs: glyphs}
	stage := otshape.NewStageFeatures()
	offset := 0
	for _, span := range spans {
		start := span.Start + offset
		if isRightToLeft(runes[span.Start:span.End]) {
			glyphs.SetDirection(start, span.Len(), bidi.RightToLeft)
		}
		shaper := CreateShaper(span.Script, opts)
		before := glyphs.Len()
		shaper.AssignFeatures(glyphs, start, span.Len())
		delta := glyphs.Len() - before
		tracer().Debugf("%s shaper for %s span %d..%d, %d glyphs inserted",
			shaper.Name(), span.Script, span.Start, span.End, delta)
		offset += delta
		for _, tag := range shaper.StageFeatures() {
			stage.Add(tag)
		}
		result.Spans = append(result.Spans, ScriptSpan{
			Script: span.Script,
			Start:  start,
			End:    start + span.Len() + delta,
		})
		result.Shapers = append(result.Shapers, shaper.Name())
	}
	result.Features = stage.Tags()
	return result
}

func isRightToLeft(text []rune) bool {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		if c := props.Class(); c == bidi.R || c == bidi.AL {
			return true
		}
	}
	return false
}

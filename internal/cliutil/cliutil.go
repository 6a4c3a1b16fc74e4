// Package cliutil holds input parsing and output formatting shared by the
// command line tools.
package cliutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"golang.org/x/text/unicode/runenames"
)

// ParseFeatureList parses a list of feature settings like
// "liga=1,kern=0,+rlig,-calt,smcp[2:5]". The bracketed suffix restricts a
// feature to a glyph range of the shaped span. An empty list or "-" yields no
// features.
func ParseFeatureList(spec string) ([]otshape.FeatureRange, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "-" {
		return nil, nil
	}
	parts := SplitCSVSpace(spec)
	out := make([]otshape.FeatureRange, 0, len(parts))
	for _, p := range parts {
		f, err := parseFeatureItem(p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func parseFeatureItem(item string) (otshape.FeatureRange, error) {
	var noFeature otshape.FeatureRange
	if item = strings.TrimSpace(item); item == "" {
		return noFeature, errors.New("empty feature entry")
	}
	f := otshape.FeatureRange{On: true}
	if rest, ok := strings.CutPrefix(item, "+"); ok {
		item = rest
	} else if rest, ok := strings.CutPrefix(item, "-"); ok {
		item, f.On = rest, false
	}
	if head, rng, ok := strings.Cut(item, "["); ok {
		rng, ok = strings.CutSuffix(rng, "]")
		if !ok {
			return noFeature, fmt.Errorf("unterminated range in feature %q", item)
		}
		start, end, _ := strings.Cut(rng, ":")
		var err error
		if f.Start, err = atoiOrZero(start); err != nil {
			return noFeature, fmt.Errorf("invalid range start in feature %q: %w", item, err)
		}
		if f.End, err = atoiOrZero(end); err != nil {
			return noFeature, fmt.Errorf("invalid range end in feature %q: %w", item, err)
		}
		if f.End != 0 && f.End <= f.Start {
			return noFeature, fmt.Errorf("empty range in feature %q", item)
		}
		item = head
	}
	tagPart := item
	if t, value, hasEqual := strings.Cut(item, "="); hasEqual {
		n, err := strconv.Atoi(value)
		if err != nil {
			return noFeature, fmt.Errorf("invalid feature value in %q: %w", item, err)
		}
		tagPart, f.On = t, n != 0
	}
	tagPart = strings.TrimSpace(tagPart)
	if len(tagPart) != 4 {
		return noFeature, fmt.Errorf("feature tag %q is not 4 characters", tagPart)
	}
	f.Feature = ot.T(tagPart)
	return f, nil
}

func atoiOrZero(s string) (int, error) {
	if s = strings.TrimSpace(s); s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && n < 0 {
		err = errors.New("negative position")
	}
	return n, err
}

// ParseCodepoints parses a list of code-points like "U+0627,0x644 1100".
func ParseCodepoints(spec string) ([]rune, error) {
	parts := SplitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

// SplitCSVSpace splits at commas and white space.
func SplitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseScript parses an ISO 15924 script tag like "Arab". "auto" or an empty
// string yield 0, i.e. script detection.
func ParseScript(s string) (language.Script, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return 0, nil
	}
	script, err := language.ParseScript(s)
	if err != nil {
		return 0, fmt.Errorf("invalid script %q: %w", s, err)
	}
	return script, nil
}

// GlyphTable formats the glyphs of a shaping result as table data, header
// row first, suitable for pterm.DefaultTable.
func GlyphTable(res otshaping.Result) [][]string {
	data := [][]string{
		{"#", "Code-point", "Name", "Glyph", "Cluster", "Dir", "Shaper", "Features"},
	}
	for i := 0; i < res.Glyphs.Len(); i++ {
		g := res.Glyphs.GlyphShapingData(i)
		dir := "LTR"
		if g.IsRightToLeft() {
			dir = "RTL"
		}
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("U+%04X", g.Codepoint),
			runenames.Name(g.Codepoint),
			strconv.Itoa(int(g.GlyphID)),
			strconv.Itoa(g.Cluster),
			dir,
			shaperAt(res, i),
			FormatTags(g.EnabledFeatures()),
		})
	}
	return data
}

func shaperAt(res otshaping.Result, i int) string {
	for k, span := range res.Spans {
		if i >= span.Start && i < span.End {
			return res.Shapers[k]
		}
	}
	return ""
}

// FormatTags joins tags with commas.
func FormatTags(tags []ot.Tag) string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = t.String()
	}
	return strings.Join(s, ",")
}

package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/internal/cliutil"
	"github.com/npillmayer/otshaping/internal/fontload"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runShapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbose(flags)
	font := mustLoadFont(flagString(flags, "font"))
	backend, err := font.Backend(flagString(flags, "backend"))
	if err != nil {
		fatalf("%v", err)
	}
	script, err := cliutil.ParseScript(flagString(flags, "script"))
	if err != nil {
		fatalf("%v", err)
	}
	opts, err := parseOptions(flagString(flags, "features"), flagString(flags, "kerning"))
	if err != nil {
		fatalf("%v", err)
	}
	input, err := parseShapeInput(args["text"].Value, flagString(flags, "codepoints"))
	if err != nil {
		fatalf("%v", err)
	}
	if input == "" {
		fatalf("nothing to shape")
	}
	var res otshaping.Result
	if script == 0 {
		res = otshaping.ShapeText(backend, input, opts)
	} else {
		res = otshaping.ShapeScript(backend, input, script, opts)
	}
	tracer().Infof("shaped %d glyphs with font %s", res.Glyphs.Len(), font.Fontname)
	pterm.DefaultTable.WithHasHeader().WithData(cliutil.GlyphTable(res)).Render()
	pterm.Info.Printf("stage features: %s\n", cliutil.FormatTags(res.Features))
}

func parseOptions(features, kerning string) (otshape.Options, error) {
	var opts otshape.Options
	var err error
	if opts.Features, err = cliutil.ParseFeatureList(features); err != nil {
		return opts, err
	}
	switch k := strings.ToLower(kerning); k {
	case "", "standard":
		opts.Kerning = otshape.KerningStandard
	case "none":
		opts.Kerning = otshape.KerningNone
	default:
		return opts, fmt.Errorf("invalid kerning mode %q", k)
	}
	return opts, nil
}

func parseShapeInput(text, codepoints string) (string, error) {
	if cp := strings.TrimSpace(codepoints); cp != "" {
		runes, err := cliutil.ParseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	// commando joins variadic arguments with commas
	return strings.ReplaceAll(text, ",", " "), nil
}

func mustLoadFont(name string) *fontload.ScalableFont {
	f, err := fontload.FindFont(name)
	if err != nil {
		fatalf("%v", err)
	}
	return f
}

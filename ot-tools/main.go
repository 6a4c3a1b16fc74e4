/*
Command ot-tools is a command line tool for OpenType feature assignment.

Usage:

	ot-tools shape [--font F] [--script S] [--features L] [--kerning K] [--backend B] [text...]
	ot-tools font  [--font F] [text...]
	ot-tools scripts [text...]

Fonts are given as file paths or as system font names; without a font the
built-in Go Regular font is used.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'otshaping.cli'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.cli")
}

func main() {
	initTracing()
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for testing script-aware OpenType feature assignment.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("shape").
		SetDescription("Assign OpenType features to text and print the glyph run.").
		SetShortDescription("shape text").
		AddArgument("text...", "text to shape", "").
		AddFlag("font,F", "font file path or system font name", commando.String, "-").
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Arab, Hang) or auto", commando.String, "auto").
		AddFlag("features,f", "feature list (e.g. liga=1,kern=0,+rlig,-calt,smcp[0:3])", commando.String, "-").
		AddFlag("kerning,k", "kerning mode: standard|none", commando.String, "standard").
		AddFlag("backend,b", "glyph lookup backend: sfnt|gotext", commando.String, "sfnt").
		AddFlag("codepoints,c", "codepoints instead of text (e.g. U+1112,U+1161)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runShapeCommand)

	commando.
		Register("font").
		SetDescription("Print metrics of a font and the glyphs it provides for a text.").
		SetShortDescription("font diagnostics").
		AddArgument("text...", "optional text to look up glyphs for", "").
		AddFlag("font,F", "font file path or system font name", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.
		Register("scripts").
		SetDescription("Split text into script runs and print the shaper selected for each.").
		SetShortDescription("script itemization").
		AddArgument("text...", "text to itemize", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runScriptsCommand)

	commando.Parse(nil)
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.otshaping.cli":    "Info",
		"trace.otshaping.shaper": "Error",
		"trace.otshaping.font":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "ot-tools: error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// setVerbose switches the shaping traces to debug level.
func setVerbose(flags map[string]commando.FlagValue) {
	verbose := flags["verbose"]
	if v, err := verbose.GetBool(); err == nil && v {
		tracing.Select("otshaping.shaper").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("otshaping.font").SetTraceLevel(tracing.LevelDebug)
		tracer().SetTraceLevel(tracing.LevelDebug)
	}
}

func flagString(flags map[string]commando.FlagValue, name string) string {
	flag := flags[name]
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s == "-" {
		return ""
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Printf(format+"\n", args...)
	os.Exit(1)
}

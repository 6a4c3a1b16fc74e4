package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (bool, error) {
	help(op.arg)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(strings.TrimSpace(topic)) {
	case "features", "feature":
		pterm.Info.Println("Features")
		pterm.Println(`
	features:<list> sets the features requested for shaping, replacing the
	previous list. Entries are separated by commas:
	+-------------+-----------------------------------------+
	| liga, +liga | switch feature on for complete spans    |
	| -liga       | switch feature off                      |
	| liga=0      | switch feature off (1 = on)             |
	| smcp[2:5]   | switch feature on for glyphs 2 to 4     |
	+-------------+-----------------------------------------+
	Positions are relative to the start of each script span.
	'features:-' clears the list.
	`)
	case "script", "scripts":
		pterm.Info.Println("Scripts")
		pterm.Println(`
	script:<tag> forces all text to be shaped in one script, e.g. script:Arab.
	script:auto splits text into script spans and selects a shaper per span.
	scripts <text> prints the spans and shapers for a text.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	font:<name>        load a font by file path or system font name
	script:<tag>       force a script (ISO 15924) or 'auto'
	features:<list>    request features, see 'help features'
	kerning:<mode>     'standard' or 'none'
	shape <text>       shape text and print the glyph run
	scripts <text>     print script spans of text
	print              print the result of the last shape command again
	quit               leave (or <ctrl>D)
	`)
	}
}

/*
Command otcli is an interactive shell for experiments with OpenType feature
assignment.

Commands are entered one per line, e.g.

	font:NotoSansArabic-Regular.ttf
	features:+smcp,-liga
	shape ab بيت
	print

Enter "help" for a list of commands.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/internal/fontload"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otshaping.cli'
func tracer() tracing.Trace {
	return tracing.Select("otshaping.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.otshaping.cli":    "Info",
		"trace.otshaping.shaper": "Error",
		"trace.otshaping.font":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)                // will set the correct level later
	pterm.Info.Println("Welcome to the OpenType shaping CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	level, err := parseTraceLevel(*tlevel)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	tracer().SetTraceLevel(level)
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", s)
}

// Intp is our interpreter object
type Intp struct {
	font   *fontload.ScalableFont
	repl   *readline.Instance
	script language.Script // 0 for script detection
	opts   otshape.Options
	last   *otshaping.Result
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	script := "auto"
	if intp.script != 0 {
		script = fmt.Sprint(intp.script)
	}
	return fmt.Sprintf("( font=%s script=%s kerning=%s features=%d )",
		intp.font.Fontname, script, intp.opts.Kerning, len(intp.opts.Features))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command of the REPL.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	FONT
	SCRIPT
	FEATURES
	KERNING
	SHAPE
	SCRIPTS
	PRINT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"font":     FONT,
	"script":   SCRIPT,
	"features": FEATURES,
	"kerning":  KERNING,
	"shape":    SHAPE,
	"scripts":  SCRIPTS,
	"print":    PRINT,
}

var errNoCommand = errors.New("empty command")

// parseCommand splits a line into an operation and its argument.
// The argument follows a colon or a space, e.g. "font:Arial" or "shape some text".
// Everything after the command word belongs to the argument.
func parseCommand(line string) (Op, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Op{}, errNoCommand
	}
	word, arg := line, ""
	if i := strings.IndexAny(line, ": "); i >= 0 {
		word, arg = line[:i], line[i+1:]
	}
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Op{code: HELP}, fmt.Errorf("unknown command %q, try 'help'", word)
	}
	tracer().Debugf("parsed command: %s(%q)", word, arg)
	return Op{code: code, arg: arg}, nil
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:     quitOp,
	HELP:     helpOp,
	FONT:     fontOp,
	SCRIPT:   scriptOp,
	FEATURES: featuresOp,
	KERNING:  kerningOp,
	SHAPE:    shapeOp,
	SCRIPTS:  scriptsOp,
	PRINT:    printOp,
}

func (intp *Intp) execute(op Op) (stop bool, err error) {
	f, ok := commandFn[op.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", op.code)
	}
	return f(intp, &op)
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	return true, nil
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	f, err := fontload.FindFont(fontname)
	if err != nil {
		return err
	}
	intp.font, intp.last = f, nil
	tracer().Infof("loaded font = %s", f.Fontname)
	return nil
}

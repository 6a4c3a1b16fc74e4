package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/internal/cliutil"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/pterm/pterm"
)

func fontOp(intp *Intp, op *Op) (bool, error) {
	return false, intp.loadFont(strings.TrimSpace(op.arg))
}

func scriptOp(intp *Intp, op *Op) (bool, error) {
	script, err := cliutil.ParseScript(op.arg)
	if err != nil {
		return false, err
	}
	intp.script = script
	return false, nil
}

func featuresOp(intp *Intp, op *Op) (bool, error) {
	features, err := cliutil.ParseFeatureList(op.arg)
	if err != nil {
		return false, err
	}
	intp.opts.Features = features
	return false, nil
}

func kerningOp(intp *Intp, op *Op) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(op.arg)) {
	case "standard", "on":
		intp.opts.Kerning = otshape.KerningStandard
	case "none", "off":
		intp.opts.Kerning = otshape.KerningNone
	default:
		return false, fmt.Errorf("invalid kerning mode %q", op.arg)
	}
	return false, nil
}

func shapeOp(intp *Intp, op *Op) (bool, error) {
	if intp.font == nil {
		return false, errors.New("no font loaded")
	}
	if op.arg == "" {
		return false, errors.New("nothing to shape")
	}
	var res otshaping.Result
	if intp.script == 0 {
		res = otshaping.ShapeText(intp.font.SFNT, op.arg, intp.opts)
	} else {
		res = otshaping.ShapeScript(intp.font.SFNT, op.arg, intp.script, intp.opts)
	}
	intp.last = &res
	printResult(res)
	return false, nil
}

func scriptsOp(intp *Intp, op *Op) (bool, error) {
	text := []rune(op.arg)
	data := [][]string{{"Start", "End", "Script", "Shaper"}}
	for _, span := range otshaping.Itemize(text) {
		shaper := otshaping.CreateShaper(span.Script, intp.opts)
		data = append(data, []string{
			fmt.Sprint(span.Start), fmt.Sprint(span.End), fmt.Sprint(span.Script), shaper.Name(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func printOp(intp *Intp, op *Op) (bool, error) {
	if intp.last == nil {
		return false, errors.New("nothing shaped yet")
	}
	printResult(*intp.last)
	return false, nil
}

func printResult(res otshaping.Result) {
	pterm.DefaultTable.WithHasHeader().WithData(cliutil.GlyphTable(res)).Render()
	pterm.Printf("stage features: %s\n", cliutil.FormatTags(res.Features))
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/otshaping"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runScriptsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbose(flags)
	text := []rune(strings.ReplaceAll(args["text"].Value, ",", " "))
	spans := otshaping.Itemize(text)
	if len(spans) == 0 {
		pterm.Warning.Println("no text given")
		return
	}
	data := [][]string{{"Start", "End", "Script", "Shaper", "Text"}}
	for _, span := range spans {
		shaper := otshaping.CreateShaper(span.Script, otshape.Options{})
		data = append(data, []string{
			strconv.Itoa(span.Start),
			strconv.Itoa(span.End),
			fmt.Sprint(span.Script),
			shaper.Name(),
			string(text[span.Start:span.End]),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

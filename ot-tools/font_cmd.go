package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/otshaping/otshape"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbose(flags)
	f := mustLoadFont(flagString(flags, "font"))
	m := f.SFNT.FontMetrics()
	pterm.Info.Printf("font %s\n", f.Fontname)
	info := [][]string{
		{"Path", f.Filepath},
		{"Units per em", strconv.Itoa(int(m.UnitsPerEm))},
		{"Ascent", strconv.Itoa(int(m.Ascent))},
		{"Descent", strconv.Itoa(int(m.Descent))},
		{"Line gap", strconv.Itoa(int(m.LineGap))},
		{"Glyphs", strconv.Itoa(m.NumGlyphs)},
	}
	pterm.DefaultTable.WithData(info).Render()
	text := strings.ReplaceAll(args["text"].Value, ",", " ")
	if text == "" {
		return
	}
	data := [][]string{{"Code-point", "Name", "Glyph", "Advance", "BBox"}}
	for _, cp := range text {
		gid, ok := otshape.TryGetGlyph(f.SFNT, cp)
		row := []string{fmt.Sprintf("U+%04X", cp), runenames.Name(cp), "-", "-", "-"}
		if ok {
			gm := f.SFNT.GlyphMetrics(gid)
			row[2] = strconv.Itoa(int(gid))
			row[3] = strconv.Itoa(f.SFNT.GlyphAdvance(gid))
			row[4] = fmt.Sprintf("(%d,%d)-(%d,%d)", gm.BBox.MinX, gm.BBox.MinY, gm.BBox.MaxX, gm.BBox.MaxY)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

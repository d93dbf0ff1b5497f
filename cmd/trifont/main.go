// Command trifont triangulates fonts and polygons, and draws the results.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/osuushi/trifont"
	"github.com/osuushi/trifont/fontsrc"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("trifont", "Triangulate font glyphs into meshes.")

	verbose  = app.Flag("verbose", "Log pipeline detail to stderr.").Short('v').Bool()
	workers  = app.Flag("workers", "Glyphs to triangulate at once.").Envar("TRIFONT_WORKERS").Default(fmt.Sprint(runtime.GOMAXPROCS(0))).Int()
	outliner = app.Flag("outliner", "Library that decodes glyph outlines.").Envar("TRIFONT_OUTLINER").Default(fontsrc.OutlinerSFNT.String()).Enum(fontsrc.OutlinerNames()...)

	readCmd  = app.Command("read", "Triangulate every glyph of a font and report timing.")
	readFont = readCmd.Arg("font", "TrueType or OpenType file.").Required().ExistingFile()
	readRuns = readCmd.Flag("runs", "Times to read the font.").Default("1").Int()

	drawCmd    = app.Command("draw", "Render the mesh of one glyph to a PNG.")
	drawFont   = drawCmd.Arg("font", "TrueType or OpenType file.").Required().ExistingFile()
	drawChar   = drawCmd.Arg("char", "Character to draw.").Required().String()
	drawOutput = drawCmd.Flag("output", "PNG file to write.").Short('o').Default("glyph.png").String()
	drawSize   = drawCmd.Flag("size", "Image size in pixels.").Default("512").Int()
	drawImgcat = drawCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()

	polygonsCmd = app.Command("polygons", "Triangulate polygons read from stdin, one \"x y\" point per line, with a blank line between polygons.")

	svgCmd    = app.Command("svg", "Triangulate the <polygon> elements of an SVG file.")
	svgFile   = svgCmd.Arg("file", "SVG file.").Required().ExistingFile()
	svgOutput = svgCmd.Flag("output", "Also render the mesh to this PNG file.").Short('o').String()
	svgInput  = svgCmd.Flag("input", "Render the input polygons instead of the mesh.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trifont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	switch command {
	case readCmd.FullCommand():
		err = runRead(*readFont, *readRuns, os.Stdout)
	case drawCmd.FullCommand():
		err = runDraw(*drawFont, *drawChar, *drawOutput, *drawSize, *drawImgcat)
	case polygonsCmd.FullCommand():
		err = runPolygons(os.Stdin, os.Stdout)
	case svgCmd.FullCommand():
		err = runSVG(*svgFile, *svgOutput, *svgInput, os.Stdout)
	}
	app.FatalIfError(err, "%s", command)
}

func readOptions() []trifont.Option {
	o, err := fontsrc.ParseOutliner(*outliner)
	app.FatalIfError(err, "outliner")
	return []trifont.Option{
		trifont.WithWorkers(*workers),
		trifont.WithOutliner(o),
	}
}

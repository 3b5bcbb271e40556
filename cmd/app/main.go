package main

import (
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/0x0FACED/go-delaunay/pkg/precision"
)

var (
	app   = kingpin.New("delaunay", "Incremental Delaunay triangulation: demo server and file converter.")
	debug = app.Flag("debug", "Log every insertion.").Short('d').Bool()
	scale = app.Flag("scale", "Snap coordinates to a grid of 1/scale units. Zero keeps full precision.").
		Default("0").Envar("DELAUNAY_SCALE").Float64()

	serveCmd = app.Command("serve", "Serve the interactive page.").Default()
	addr     = serveCmd.Flag("addr", "Listen address.").Default(":8080").Envar("DELAUNAY_ADDR").String()

	buildCmd    = app.Command("build", "Triangulate a point file and write the results.")
	input       = buildCmd.Arg("input", "Points as text (x y [z] per line) or SVG circles.").Required().ExistingFile()
	pngOut      = buildCmd.Flag("png", "Write a PNG rendering.").PlaceHolder("FILE").String()
	svgOut      = buildCmd.Flag("svg", "Write an SVG rendering.").PlaceHolder("FILE").String()
	htmlOut     = buildCmd.Flag("html", "Write an echarts page.").PlaceHolder("FILE").String()
	geojsonOut  = buildCmd.Flag("geojson", "Write the triangles as GeoJSON.").PlaceHolder("FILE").String()
	edgesOut    = buildCmd.Flag("edges", "Write the edges as GeoJSON.").PlaceHolder("FILE").String()
	voronoiOut  = buildCmd.Flag("voronoi-geojson", "Write the clipped Voronoi cells as GeoJSON.").PlaceHolder("FILE").String()
	withVoronoi = buildCmd.Flag("voronoi", "Overlay Voronoi cells on the renderings.").Bool()
	width       = buildCmd.Flag("width", "Image width in pixels.").Default("1000").Int()
	height      = buildCmd.Flag("height", "Image height in pixels.").Default("1000").Int()
	showImage   = buildCmd.Flag("imgcat", "Print the PNG to an iTerm2 terminal.").Bool()
)

func logLevel() zapcore.Level {
	if *debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func precisionModel() (precision.Model, error) {
	if *scale == 0 {
		return precision.Floating{}, nil
	}
	return precision.NewFixed(*scale)
}

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case serveCmd.FullCommand():
		app.FatalIfError(serve(*addr), "serve")
	case buildCmd.FullCommand():
		app.FatalIfError(build(), "build")
	}
}

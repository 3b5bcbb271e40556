package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/export"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointio"
	"github.com/0x0FACED/go-delaunay/pkg/render"
)

func readPoints(path string) (vs []geom.Vertex, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return pointio.ReadSVG(f)
	}
	return pointio.ReadText(f)
}

// writeFile creates path and hands it to write. Close errors are reported
// along with write errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return errors.Wrapf(write(f), "write %s", path)
}

func writeJSON(v interface{}) func(io.Writer) error {
	return func(w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	}
}

func build() error {
	log := logger.New(logger.Config{Level: logLevel(), Tee: os.Stderr})
	defer log.Sync()

	vs, err := readPoints(*input)
	if err != nil {
		return errors.Wrap(err, "read points")
	}
	if len(vs) == 0 {
		return errors.Errorf("%s holds no points", *input)
	}

	model, err := precisionModel()
	if err != nil {
		return err
	}
	for i, v := range vs {
		vs[i] = geom.VZ(model.MakePrecise(v.X), model.MakePrecise(v.Y), v.Z)
	}

	s, err := delaunay.New(pointio.Bounds(vs), model, delaunay.Options{Logger: log})
	if err != nil {
		return err
	}
	if err := s.InsertVertices(vs); err != nil {
		return err
	}
	log.Info("[app] triangulation built", zap.String("input", *input),
		zap.Int("vertices", len(s.Vertices())), zap.Int("triangles", s.TriangleCount()))

	st := render.DefaultStyle()
	st.Width, st.Height = *width, *height
	st.Voronoi = *withVoronoi

	var errs error
	if *pngOut != "" {
		errs = multierr.Append(errs, writeFile(*pngOut, func(w io.Writer) error {
			return render.PNG(w, s, st)
		}))
		if *showImage {
			errs = multierr.Append(errs, errors.Wrapf(imgcat.CatFile(*pngOut, os.Stdout), "imgcat %s", *pngOut))
		}
	}
	if *svgOut != "" {
		errs = multierr.Append(errs, writeFile(*svgOut, func(w io.Writer) error {
			return render.SVG(w, s, st)
		}))
	}
	if *htmlOut != "" {
		errs = multierr.Append(errs, writeFile(*htmlOut, func(w io.Writer) error {
			return render.Chart(s, filepath.Base(*input), *withVoronoi).Render(w)
		}))
	}
	if *geojsonOut != "" {
		errs = multierr.Append(errs, writeFile(*geojsonOut, writeJSON(export.Triangles(s))))
	}
	if *edgesOut != "" {
		errs = multierr.Append(errs, writeFile(*edgesOut, writeJSON(export.Edges(s))))
	}
	if *voronoiOut != "" {
		errs = multierr.Append(errs, writeFile(*voronoiOut, writeJSON(export.VoronoiCells(s, s.Bounds()))))
	}

	for _, err := range multierr.Errors(errs) {
		log.Error("[app] output failed", zap.Error(err))
	}
	return errs
}

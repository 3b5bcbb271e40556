// Package pointio reads vertex sets from plain text and SVG documents.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// ReadText reads one vertex per line as "x y" or "x y z". Fields may be
// separated by spaces, tabs or commas. Blank lines and lines starting with
// '#' are skipped.
func ReadText(r io.Reader) ([]geom.Vertex, error) {
	var vs []geom.Vertex
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("pointio: line %d: want 2 or 3 coordinates, got %d", line, len(fields))
		}
		var c [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "pointio: line %d", line)
			}
			c[i] = v
		}
		vs = append(vs, geom.VZ(c[0], c[1], c[2]))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "pointio: read")
	}
	return vs, nil
}

// ReadSVG returns the centers of every <circle> element. The y axis is kept
// as in the document.
func ReadSVG(r io.Reader) ([]geom.Vertex, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "pointio: parse svg")
	}

	circles := root.FindAll("circle")
	vs := make([]geom.Vertex, 0, len(circles))
	for i, c := range circles {
		x, err := attr(c, "cx")
		if err != nil {
			return nil, errors.WithMessagef(err, "pointio: circle %d", i)
		}
		y, err := attr(c, "cy")
		if err != nil {
			return nil, errors.WithMessagef(err, "pointio: circle %d", i)
		}
		vs = append(vs, geom.V(x, y))
	}
	return vs, nil
}

func attr(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		// missing coordinates default to zero in SVG
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "attribute %s", name)
	}
	return v, nil
}

// Bounds is the smallest rectangle holding vs.
func Bounds(vs []geom.Vertex) r2.Rect {
	return geom.Bounds(vs)
}

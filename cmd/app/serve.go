package main

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/internal/dbg"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/static"
)

// Генерируем случайные точки
func generateRandVertices(n int, width, height int) []geom.Vertex {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	vs := make([]geom.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = geom.V(float64(rnd.Intn(width)), float64(rnd.Intn(height)))
	}
	return vs
}

// Точки по регулярной сетке
func generateGridVertices(n int, width, height int) []geom.Vertex {
	vs := make([]geom.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(vs) < n; i++ {
		for j := 0; j < cols && len(vs) < n; j++ {
			vs = append(vs, geom.V(xStep/2+float64(j)*xStep, yStep/2+float64(i)*yStep))
		}
	}

	return vs
}

type pageParams struct {
	width, height int
	points        int
	random        bool
	voronoi       bool
}

func formInt(r *http.Request, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil || v < lo || v > hi {
		return def
	}
	return v
}

func parseParams(r *http.Request) pageParams {
	p := pageParams{width: 1000, height: 1000, points: 12, voronoi: true}
	if r.Method != http.MethodPost {
		return p
	}
	if err := r.ParseForm(); err != nil {
		return p
	}
	p.width = formInt(r, "width", p.width, 100, 5000)
	p.height = formInt(r, "height", p.height, 100, 5000)
	p.points = formInt(r, "points", p.points, 1, 2000)
	p.random = r.FormValue("random") == "true"
	p.voronoi = r.FormValue("voronoi") == "true"
	return p
}

// http обработчик страницы с триангуляцией и формой для ввода данных
func triangulationHandler(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)

	var vs []geom.Vertex
	if p.random {
		vs = generateRandVertices(p.points, p.width, p.height)
	} else {
		vs = generateGridVertices(p.points, p.width, p.height)
	}

	log := logger.New(logger.Config{Level: logLevel()})
	defer log.ClearLogs()
	defer dbg.Forget()

	model, err := precisionModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for i := range vs {
		vs[i] = geom.V(model.MakePrecise(vs[i].X), model.MakePrecise(vs[i].Y))
	}

	bbox := r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(p.width)},
		Y: r1.Interval{Lo: 0, Hi: float64(p.height)},
	}
	s, err := delaunay.New(bbox, model, delaunay.Options{Logger: log})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	if err := s.InsertVertices(vs); err != nil {
		log.Error("[app] triangulation failed", zap.Error(err))
	} else {
		log.Info("[app] triangulation built",
			zap.Int("triangles", s.TriangleCount()),
			zap.Int("edges", len(s.PrimaryEdges(false))),
			zap.Duration("took", time.Since(start)))
	}

	scatter := render.Chart(s, "Триангуляция Делоне", p.voronoi)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		log.Error("[app] chart render failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

func serve(addr string) error {
	http.HandleFunc("/", triangulationHandler)
	fmt.Printf("Сервер запущен на http://localhost%s\n", addr)
	return http.ListenAndServe(addr, nil)
}

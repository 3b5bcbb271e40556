package render

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func newLine(name string, data []opts.LineData, width float32, color string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: width,
			Color: color,
		}),
	)
	return line
}

// Chart builds a scatter of the vertices with one line series per edge laid
// over it, and optionally the Voronoi cells clipped to the bounding box.
func Chart(s *delaunay.Subdivision, title string, withVoronoi bool) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	vertices := s.Vertices()
	points := make([]opts.ScatterData, 0, len(vertices))
	for _, v := range vertices {
		points = append(points, opts.ScatterData{
			Value: []float64{v.X, v.Y},
		})
	}
	scatter.AddSeries("Vertices", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, e := range s.PrimaryEdges(false) {
		org, dest := s.Segment(e)
		scatter.Overlap(newLine("Edges", []opts.LineData{
			{Value: []float64{org.X, org.Y}},
			{Value: []float64{dest.X, dest.Y}},
		}, 2, "#5470c6"))
	}

	if withVoronoi {
		for _, cell := range voronoiCells(s) {
			data := make([]opts.LineData, 0, len(cell)+1)
			for _, p := range cell {
				data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
			}
			data = append(data, data[0])
			scatter.Overlap(newLine("Voronoi", data, 1, "orange"))
		}
	}

	return scatter
}

package render

import (
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/uwbmeasure/src/applog"
)

// ScatterSpec is a point cloud with dashed crosshair lines at the mean.
type ScatterSpec struct {
	Title  string
	XLabel string
	YLabel string
	Xs     []float64
	Ys     []float64
	MeanX  float64
	MeanY  float64
	Size   Size
}

// pointStyle renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// ScatterChart renders spec; on failure it logs and returns a blank image of the requested size.
func ScatterChart(spec ScatterSpec) image.Image {
	size := spec.Size.Clamp()
	if len(spec.Xs) == 0 || len(spec.Xs) != len(spec.Ys) {
		applog.Warnf("[render] scatter chart %q has %d/%d coordinates; showing blank", spec.Title, len(spec.Xs), len(spec.Ys))
		return Blank(size.Width, size.Height)
	}
	minX, maxX := minMax(append([]float64{spec.MeanX}, spec.Xs...))
	minY, maxY := minMax(append([]float64{spec.MeanY}, spec.Ys...))
	xMin, xMax, xStep := valueRange(minX, maxX, 8)
	yMin, yMax, yStep := valueRange(minY, maxY, 6)

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Position",
			XValues: spec.Xs,
			YValues: spec.Ys,
			Style:   pointStyle(drawing.ColorFromHex("1f77b4")),
		},
	}
	if !math.IsNaN(spec.MeanY) {
		series = append(series, chart.ContinuousSeries{
			Name:    "Mittelwert Y",
			XValues: []float64{xMin, xMax},
			YValues: []float64{spec.MeanY, spec.MeanY},
			Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1.5, StrokeDashArray: dashed},
		})
	}
	if !math.IsNaN(spec.MeanX) {
		series = append(series, chart.ContinuousSeries{
			Name:    "Mittelwert X",
			XValues: []float64{spec.MeanX, spec.MeanX},
			YValues: []float64{yMin, yMax},
			Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1.5, StrokeDashArray: dashed},
		})
	}
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: valueTicks(xMin, xMax, xStep),
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: valueTicks(yMin, yMax, yStep),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return renderChart(&ch, size)
}

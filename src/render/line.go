package render

import (
	"bytes"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/uwbmeasure/src/applog"
)

var dashed = []float64{5.0, 5.0}

// LineSpec is a single-series line chart over sample index with a mean reference line.
type LineSpec struct {
	Title     string
	XLabel    string
	YLabel    string
	Values    []float64
	Mean      float64
	MeanLabel string
	Size      Size
}

// LineChart renders spec; on failure it logs and returns a blank image of the requested size.
func LineChart(spec LineSpec) image.Image {
	size := spec.Size.Clamp()
	n := len(spec.Values)
	if n == 0 {
		applog.Warnf("[render] line chart %q has no samples; showing blank", spec.Title)
		return Blank(size.Width, size.Height)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := spec.Values
	if n == 1 {
		// go-chart needs two points for a non-zero x range
		xs = []float64{0, 1}
		ys = []float64{ys[0], ys[0]}
	}
	minY, maxY := minMax(ys)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    spec.YLabel,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: drawing.ColorFromHex("1f77b4"), StrokeWidth: 1.5},
		},
	}
	if !math.IsNaN(spec.Mean) {
		name := spec.MeanLabel
		if name == "" {
			name = "Mittelwert"
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: []float64{xs[0], xs[len(xs)-1]},
			YValues: []float64{spec.Mean, spec.Mean},
			Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 1.5, StrokeDashArray: dashed},
		})
		minY = math.Min(minY, spec.Mean)
		maxY = math.Max(maxY, spec.Mean)
	}
	yMin, yMax, yStep := valueRange(minY, maxY, 6)
	last := len(xs) - 1
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(last)},
			Ticks: indexTicks(last, 10),
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

// renderChart draws ch as PNG and decodes it back into an image.
func renderChart(ch *chart.Chart, size Size) image.Image {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		applog.Warnf("[render] chart %q render error: %v; showing blank", ch.Title, err)
		return Blank(size.Width, size.Height)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		applog.Warnf("[render] chart %q decode error: %v; showing blank", ch.Title, err)
		return Blank(size.Width, size.Height)
	}
	return img
}

// minMax ignores NaN; returns NaN, NaN when nothing is finite.
func minMax(vals []float64) (float64, float64) {
	min := math.MaxFloat64
	max := -math.MaxFloat64
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == math.MaxFloat64 {
		return math.NaN(), math.NaN()
	}
	return min, max
}
